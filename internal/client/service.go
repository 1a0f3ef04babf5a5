package client

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/Arun445/iperfer/internal/config"
	"github.com/Arun445/iperfer/internal/rate"
	"github.com/Arun445/iperfer/internal/session"
)

func NewClient(clientConfig *config.ClientConfig) *Client {
	return &Client{
		config: clientConfig,
	}
}

// Run connects once, streams for the configured duration and waits for the
// server's acknowledgment. Any failure aborts without a measurement.
func (client *Client) Run() (rate.Measurement, error) {
	if err := client.config.Validate(); err != nil {
		return rate.Measurement{}, err
	}

	address := client.config.Address()
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return rate.Measurement{}, fmt.Errorf("dial %s: %w", address, err)
	}
	defer conn.Close()

	session := session.New(conn)
	log.Printf("Session registered: %s (%s)", session.ID, session.Peer)

	ack, err := session.Stream(time.Duration(client.config.Duration) * time.Second)
	if err != nil {
		return rate.Measurement{}, err
	}
	log.Printf("Session %s: %s", session.ID, ack)

	log.Printf("Session unregistered: %s", session.ID)
	return session.Measure(), nil
}
