// Package config handles application configuration management.
package config

import (
	"errors"
	"fmt"

	"github.com/asteroid-belt/tailhash/internal/hash"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration.
type Config struct {
	// Algorithm is a guard, not a selector: the hash package always uses
	// SHA-256 and Validate rejects any other value.
	Algorithm string

	// TailLength is how many trailing hex characters of the digest are printed.
	TailLength int
}

// Load returns the validated built-in configuration. tailhash reads no
// environment variables and no config file.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes an output the hash
// package can produce.
func (c *Config) Validate() error {
	if c.Algorithm != AlgorithmSHA256 {
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidConfig, c.Algorithm)
	}
	if c.TailLength <= 0 || c.TailLength > hash.DigestHexLength {
		return fmt.Errorf("%w: tail length %d out of range 1..%d",
			ErrInvalidConfig, c.TailLength, hash.DigestHexLength)
	}
	return nil
}
