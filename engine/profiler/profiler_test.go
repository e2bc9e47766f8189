package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickGatedByInterval(t *testing.T) {
	p := NewProfiler()

	// Well inside the default one second interval: nothing logged yet.
	for range 10 {
		assert.False(t, p.Tick())
	}
}

func TestTickLogsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.updateInterval = 0

	require.True(t, p.Tick(), "a zero interval logs on every tick")

	// Counters reset after a report.
	assert.Equal(t, 0, p.passCount)
}

func TestTickResetsWindow(t *testing.T) {
	p := NewProfiler()
	p.updateInterval = time.Hour

	before := p.lastTime
	for range 5 {
		p.Tick()
	}

	assert.Equal(t, before, p.lastTime, "window start unchanged until a report fires")
	assert.Equal(t, 5, p.passCount)
}
