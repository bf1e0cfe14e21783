package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonPercent_FractionScales(t *testing.T) {
	assert.InDelta(t, 56.7, CanonPercent(0.567), 1e-12)
	assert.InDelta(t, 100.0, CanonPercent(1.0), 1e-12)
	assert.InDelta(t, 0.0, CanonPercent(0.0), 1e-12)
}

func TestCanonPercent_PercentagePassesThrough(t *testing.T) {
	assert.Equal(t, 56.7, CanonPercent(56.7))
	assert.Equal(t, 1.01, CanonPercent(1.01))
}

func TestCanonPercent_IdempotentAboveOne(t *testing.T) {
	for _, v := range []float64{1.5, 42.0, 56.7, 99.9} {
		assert.Equal(t, CanonPercent(v), CanonPercent(CanonPercent(v)))
	}
}
