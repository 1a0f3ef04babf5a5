package config

import (
	"errors"
	"testing"
)

func TestServer_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")

	cfg := Server()
	if cfg.Port != defaultPort {
		t.Errorf("Expected port %d, got %d", defaultPort, cfg.Port)
	}
	if cfg.Address() != ":15000" {
		t.Errorf("Expected address ':15000', got %s", cfg.Address())
	}
}

func TestServer_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "20000")

	cfg := Server()
	if cfg.Port != 20000 {
		t.Errorf("Expected port 20000, got %d", cfg.Port)
	}
}

func TestClient_FromEnv(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "16000")
	t.Setenv("APP_DURATION", "3")

	cfg := Client()
	if cfg.Host != "127.0.0.1" || cfg.Port != 16000 || cfg.Duration != 3 {
		t.Errorf("Unexpected client config: %+v", cfg)
	}
	if cfg.Address() != "127.0.0.1:16000" {
		t.Errorf("Expected address '127.0.0.1:16000', got %s", cfg.Address())
	}
}

func TestClient_BadEnvFallsBack(t *testing.T) {
	t.Setenv("APP_HOST", "")
	t.Setenv("APP_PORT", "not-a-port")
	t.Setenv("APP_DURATION", "ten")

	cfg := Client()
	if cfg.Host != defaultHost {
		t.Errorf("Expected host %s, got %s", defaultHost, cfg.Host)
	}
	if cfg.Port != defaultPort {
		t.Errorf("Expected port %d, got %d", defaultPort, cfg.Port)
	}
	if cfg.Duration != defaultDuration {
		t.Errorf("Expected duration %d, got %d", defaultDuration, cfg.Duration)
	}
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		port    int
		wantErr bool
	}{
		{port: 1023, wantErr: true},
		{port: 1024, wantErr: false},
		{port: 15000, wantErr: false},
		{port: 65535, wantErr: false},
		{port: 65536, wantErr: true},
		{port: 0, wantErr: true},
		{port: -1, wantErr: true},
	}

	for _, tt := range tests {
		err := (&ServerConfig{Port: tt.port}).Validate()
		if tt.wantErr && !errors.Is(err, ErrPortRange) {
			t.Errorf("Port %d: expected ErrPortRange, got %v", tt.port, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Port %d: unexpected error %v", tt.port, err)
		}
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config ClientConfig
		want   error
	}{
		{name: "valid", config: ClientConfig{Host: "localhost", Port: 15000, Duration: 1}},
		{name: "low port", config: ClientConfig{Host: "localhost", Port: 80, Duration: 1}, want: ErrPortRange},
		{name: "high port", config: ClientConfig{Host: "localhost", Port: 70000, Duration: 1}, want: ErrPortRange},
		{name: "zero duration", config: ClientConfig{Host: "localhost", Port: 15000, Duration: 0}, want: ErrDuration},
		{name: "negative duration", config: ClientConfig{Host: "localhost", Port: 15000, Duration: -5}, want: ErrDuration},
		{name: "empty host", config: ClientConfig{Port: 15000, Duration: 1}, want: ErrHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}
