package client

import "github.com/Arun445/iperfer/internal/config"

type Client struct {
	config *config.ClientConfig
}
