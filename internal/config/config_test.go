package config

import (
	"testing"

	"github.com/asteroid-belt/tailhash/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "sha256", cfg.Algorithm)
	assert.Equal(t, 10, cfg.TailLength)
}

func TestLoad(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_IgnoresEnvironment(t *testing.T) {
	t.Setenv("TAILHASH_TAIL_LENGTH", "4")
	t.Setenv("TAILHASH_ALGORITHM", "md5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, AlgorithmSHA256, cfg.Algorithm)
	assert.Equal(t, hash.TailLength, cfg.TailLength)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *DefaultConfig(), false},
		{"full digest", Config{Algorithm: AlgorithmSHA256, TailLength: hash.DigestHexLength}, false},
		{"single char", Config{Algorithm: AlgorithmSHA256, TailLength: 1}, false},
		{"zero tail", Config{Algorithm: AlgorithmSHA256, TailLength: 0}, true},
		{"negative tail", Config{Algorithm: AlgorithmSHA256, TailLength: -3}, true},
		{"tail past digest", Config{Algorithm: AlgorithmSHA256, TailLength: hash.DigestHexLength + 1}, true},
		{"unknown algorithm", Config{Algorithm: "md5", TailLength: 10}, true},
		{"empty algorithm", Config{TailLength: 10}, true},
		{"algorithm is case sensitive", Config{Algorithm: "SHA256", TailLength: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
