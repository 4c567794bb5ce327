package config

import "github.com/asteroid-belt/tailhash/internal/hash"

// AlgorithmSHA256 is the only digest algorithm tailhash produces.
const AlgorithmSHA256 = "sha256"

// DefaultConfig returns a Config with the fixed output settings.
func DefaultConfig() *Config {
	return &Config{
		Algorithm:  AlgorithmSHA256,
		TailLength: hash.TailLength,
	}
}
