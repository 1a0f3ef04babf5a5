package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	MinPort = 1024
	MaxPort = 65535

	defaultPort     = 15000
	defaultHost     = "localhost"
	defaultDuration = 10
)

var (
	ErrPortRange = errors.New("port number must be in the range of [1024, 65535]")
	ErrDuration  = errors.New("time must be greater than 0")
	ErrHost      = errors.New("host must not be empty")
)

type ServerConfig struct {
	Port int
}

type ClientConfig struct {
	Host     string
	Port     int
	Duration int // seconds
}

func Server() *ServerConfig {
	return &ServerConfig{
		Port: envInt("APP_PORT", defaultPort),
	}
}

func Client() *ClientConfig {
	host := os.Getenv("APP_HOST")
	if host == "" {
		host = defaultHost
	}

	return &ClientConfig{
		Host:     host,
		Port:     envInt("APP_PORT", defaultPort),
		Duration: envInt("APP_DURATION", defaultDuration),
	}
}

func (c *ServerConfig) Validate() error {
	return validatePort(c.Port)
}

func (c *ServerConfig) Address() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c *ClientConfig) Validate() error {
	if c.Host == "" {
		return ErrHost
	}
	if err := validatePort(c.Port); err != nil {
		return err
	}
	if c.Duration < 1 {
		return fmt.Errorf("%w: got %d", ErrDuration, c.Duration)
	}
	return nil
}

func (c *ClientConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func validatePort(port int) error {
	if port < MinPort || port > MaxPort {
		return fmt.Errorf("%w: got %d", ErrPortRange, port)
	}
	return nil
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
