//go:build !linux

package main

import "time"

var timeBase = time.Now()

// monotonicNow returns a nanosecond timestamp from Go's monotonic clock.
// Not immune to frequency adjustments like CLOCK_MONOTONIC_RAW, but the
// closest thing portably available.
func monotonicNow() uint64 {
	return uint64(time.Since(timeBase))
}

// clockResolution reports 1ns; the runtime's monotonic reading has
// nanosecond granularity and the measured call overhead in timingTolerance
// dominates in practice.
func clockResolution() (uint64, error) {
	return 1, nil
}
