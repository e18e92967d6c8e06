package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSimConfig_MatchesClassicConstants(t *testing.T) {
	cfg := DefaultSimConfig()
	assert.Equal(t, int64(100), cfg.Horizon)
	assert.Equal(t, int64(3), cfg.Quantum)
	assert.NoError(t, cfg.Validate())
}

func TestSimConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*SimConfig)
		want string
	}{
		{"zero horizon", func(c *SimConfig) { c.Horizon = 0 }, "horizon"},
		{"negative quantum", func(c *SimConfig) { c.Quantum = -1 }, "quantum"},
		{"bad trace level", func(c *SimConfig) { c.TraceLevel = "verbose" }, "trace level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSimConfig()
			tt.mod(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
