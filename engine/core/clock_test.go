package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_ElapsedIsFramesTimesStep(t *testing.T) {
	c := NewClock()
	prev := c.Elapsed()
	assert.Zero(t, prev)

	for i := 1; i <= 10000; i++ {
		c.Advance()
		e := c.Elapsed()
		assert.GreaterOrEqual(t, e, prev)
		prev = e
	}
	assert.Equal(t, uint64(10000), c.Frames())
	assert.InDelta(t, 10000.0/60.0, c.Elapsed(), 1e-9)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 960, cfg.Width)
	assert.Equal(t, 544, cfg.Height)
	assert.True(t, cfg.VSync)
}
