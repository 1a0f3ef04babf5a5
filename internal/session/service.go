package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/Arun445/iperfer/internal/rate"
)

func New(conn net.Conn) *Session {
	return &Session{
		ID:   uuid.NewString(),
		Conn: conn,
		Peer: conn.RemoteAddr().String(),
	}
}

// Send writes all of data or returns an error.
func (session *Session) Send(data []byte) error {
	for len(data) > 0 {
		written, err := session.Conn.Write(data)
		if err != nil {
			return err
		}
		if written == 0 {
			return io.ErrShortWrite
		}
		data = data[written:]
	}
	return nil
}

// Stream writes ChunkSize filler chunks until duration has elapsed, sends the
// sentinel and blocks for one read of the acknowledgment, which is returned.
func (session *Session) Stream(duration time.Duration) (string, error) {
	chunk := bytes.Repeat([]byte{'0'}, ChunkSize)

	session.StartedAt = time.Now()
	for {
		session.Elapsed = time.Since(session.StartedAt)
		if session.Elapsed >= duration {
			break
		}
		if err := session.Send(chunk); err != nil {
			return "", fmt.Errorf("send chunk: %w", err)
		}
		session.Bytes += ChunkSize
	}

	if err := session.Send([]byte(Sentinel)); err != nil {
		return "", fmt.Errorf("send sentinel: %w", err)
	}

	buffer := make([]byte, ChunkSize)
	bytesRead, err := session.Conn.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read acknowledgment: %w", err)
	}

	session.Finished = true
	return string(buffer[:bytesRead]), nil
}

// Drain reads until the sentinel appears anywhere in the stream, the peer
// closes, or a read fails. A read error is kept in ReadErr rather than
// returned so the caller can still report what arrived.
func (session *Session) Drain() {
	sentinel := []byte(Sentinel)
	buffer := make([]byte, ChunkSize)
	// tail keeps the last len(Sentinel)-1 bytes so a split sentinel is still found.
	tail := make([]byte, 0, len(sentinel)-1)
	window := make([]byte, 0, cap(tail)+ChunkSize)

	session.StartedAt = time.Now()
	defer func() {
		session.Elapsed = time.Since(session.StartedAt)
	}()

	for {
		bytesRead, err := session.Conn.Read(buffer)
		if bytesRead > 0 {
			window = append(append(window[:0], tail...), buffer[:bytesRead]...)
			if index := bytes.Index(window, sentinel); index >= 0 {
				session.Bytes += int64(index - len(tail))
				session.Finished = true
				return
			}
			session.Bytes += int64(bytesRead)

			keep := min(len(window), len(sentinel)-1)
			tail = append(tail[:0], window[len(window)-keep:]...)
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				session.ReadErr = err
				log.Printf("Session %s read error: %v", session.ID, err)
			}
			return
		}
	}
}

// Acknowledge sends AckMessage and half-closes the write side when the
// connection supports it.
func (session *Session) Acknowledge() error {
	if err := session.Send([]byte(AckMessage)); err != nil {
		return fmt.Errorf("send acknowledgment: %w", err)
	}

	if conn, ok := session.Conn.(interface{ CloseWrite() error }); ok {
		if err := conn.CloseWrite(); err != nil {
			log.Printf("Session %s shutdown error: %v", session.ID, err)
		}
	}
	return nil
}

func (session *Session) Measure() rate.Measurement {
	return rate.Measure(session.Bytes, session.Elapsed)
}
