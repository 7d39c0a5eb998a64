package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiningRate(t *testing.T) {
	assert.Equal(t, 0.1, MiningRate(0))
	assert.InDelta(t, 0.105, MiningRate(1), 1e-12)
	assert.InDelta(t, 0.15, MiningRate(10), 1e-12)
}

func TestEarnings(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, Earnings(start, start, 0.1), "zero elapsed time yields zero")
	assert.Equal(t, 0.0, Earnings(start, start.Add(-time.Hour), 0.1), "clock skew yields zero, not negative")
	assert.InDelta(t, 0.2, Earnings(start, start.Add(2*time.Hour), 0.1), 1e-12)
	assert.InDelta(t, 0.05, Earnings(start, start.Add(30*time.Minute), 0.1), 1e-12)
}

func TestEarningsMonotonic(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	prev := 0.0
	for i := 0; i < 48; i++ {
		asOf := start.Add(time.Duration(i) * 30 * time.Minute)
		earned := Earnings(start, asOf, 0.105)
		if earned < prev {
			t.Fatalf("earnings decreased at %v: %v < %v", asOf, earned, prev)
		}
		prev = earned
	}
}
