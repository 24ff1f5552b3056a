// Package network streams rendered frames to read-only websocket spectators
package network

import (
	"time"

	"github.com/lixenwraith/raycaster/parameter"
)

// Config holds spectator server settings
type Config struct {
	// Addr to listen on, ":0" picks a free port
	Addr string

	// Every sends one frame out of every N presented
	Every int

	// ClientBuffer is the per-client outbound queue depth
	ClientBuffer int

	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		Every:           parameter.StreamEvery,
		ClientBuffer:    parameter.StreamClientBuffer,
		WriteTimeout:    parameter.StreamWriteTimeout,
		ShutdownTimeout: parameter.StreamShutdownTimeout,
	}
}
