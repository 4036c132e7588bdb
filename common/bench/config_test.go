package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"workers", func(c *Config) { c.Workers = 0 }},
		{"tasks", func(c *Config) { c.Tasks = -1 }},
		{"rounds", func(c *Config) { c.Rounds = 0 }},
		{"appends", func(c *Config) { c.Appends = -1 }},
		{"payload", func(c *Config) { c.PayloadSize = -1 }},
		{"fail every", func(c *Config) { c.FailEvery = -3 }},
		{"format", func(c *Config) { c.Format = "xml" }},
		{"encoding", func(c *Config) { c.Encoding = "EBCDIC" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := DefaultConfig()
			tt.mutate(conf)
			assert.ErrorIs(t, conf.Validate(), ErrInvalidConfig)
		})
	}
}
