package session

import (
	"net"
	"time"
)

const (
	ChunkSize  = 1000
	Sentinel   = "FIN"
	AckMessage = "'FIN' received, shutting down connection"
)

type Session struct {
	ID        string
	Conn      net.Conn
	Peer      string
	StartedAt time.Time
	// Bytes counts data bytes only; sentinel bytes are never included.
	Bytes    int64
	Elapsed  time.Duration
	Finished bool
	// ReadErr holds the read error that ended a drain early, if any.
	ReadErr error
}
