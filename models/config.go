package models

import (
	"fmt"
	"time"
)

// Shared configuration blocks embedded by the service config.

type TLSCerts struct {
	KeyFile    string `yaml:"key_file"`
	CertFile   string `yaml:"cert_file"`
	CACertFile string `yaml:"ca_file"`
}

type HealthConfig struct {
	Port         int           `yaml:"port"`
	EmitInterval time.Duration `yaml:"emit_interval"`
}

func (c *HealthConfig) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("Configuration error: health port must be positive")
	}
	return nil
}

// RateLimitConfig caps requests per key per minute; a MaxAmount of zero
// disables rate limiting.
type RateLimitConfig struct {
	MaxAmount     int           `yaml:"max_amount"`
	ValidDuration time.Duration `yaml:"valid_duration"`
}
