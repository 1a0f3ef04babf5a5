package server

import (
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/Arun445/iperfer/internal/config"
	"github.com/Arun445/iperfer/internal/rate"
	"github.com/Arun445/iperfer/internal/session"
)

func NewServer(serverConfig *config.ServerConfig) *Server {
	return &Server{
		config: serverConfig,
	}
}

func (server *Server) Listen() error {
	if err := server.config.Validate(); err != nil {
		return err
	}

	listener, err := net.Listen("tcp", server.config.Address())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", server.config.Address(), err)
	}
	server.listener = listener

	log.Printf("Server started on port %d", server.config.Port)
	return nil
}

var ErrNotListening = errors.New("server is not listening")

// Addr returns nil until Listen has succeeded.
func (server *Server) Addr() net.Addr {
	if server.listener == nil {
		return nil
	}
	return server.listener.Addr()
}

// Serve accepts exactly one connection and stops listening before draining it.
func (server *Server) Serve() (rate.Measurement, error) {
	if server.listener == nil {
		return rate.Measurement{}, ErrNotListening
	}

	conn, err := server.listener.Accept()
	if closeErr := server.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
		log.Printf("Server listener close error: %v", closeErr)
	}
	if err != nil {
		return rate.Measurement{}, fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()

	session := session.New(conn)
	log.Printf("Session registered: %s (%s)", session.ID, session.Peer)

	session.Drain()
	if !session.Finished && session.ReadErr == nil {
		log.Printf("Session %s: peer closed before sentinel", session.ID)
	}

	if err := session.Acknowledge(); err != nil {
		return rate.Measurement{}, err
	}

	log.Printf("Session unregistered: %s", session.ID)
	return session.Measure(), nil
}

func (server *Server) Run() (rate.Measurement, error) {
	if err := server.Listen(); err != nil {
		return rate.Measurement{}, err
	}
	return server.Serve()
}
