package server

import (
	"net"

	"github.com/Arun445/iperfer/internal/config"
)

type Server struct {
	config   *config.ServerConfig
	listener net.Listener
}
