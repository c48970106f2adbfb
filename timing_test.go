package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElapsed(t *testing.T) {
	assert.Equal(t, time.Duration(0), elapsed(1000, 1000))
	assert.Equal(t, 500*time.Nanosecond, elapsed(1000, 1500))
	assert.Equal(t, time.Second, elapsed(0, nsPerSecond))
}

func TestMonotonicNow_NeverDecreases(t *testing.T) {
	prev := monotonicNow()
	for i := 0; i < 1000; i++ {
		cur := monotonicNow()
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestMonotonicNow_Advances(t *testing.T) {
	t0 := monotonicNow()
	time.Sleep(10 * time.Millisecond)
	t1 := monotonicNow()

	d := elapsed(t0, t1)
	assert.GreaterOrEqual(t, d, 10*time.Millisecond)
	assert.Less(t, d, 10*time.Second) // sanity: same order of magnitude
}

func TestTimingTolerance(t *testing.T) {
	tol, err := timingTolerance()
	require.NoError(t, err)

	// Half of max(resolution, call overhead): non-negative and far below
	// anything a disk read would take.
	assert.GreaterOrEqual(t, tol, time.Duration(0))
	assert.Less(t, tol, time.Second)
}
