package main

import "time"

// elapsed returns the time between two monotonicNow samples. t1 must not
// precede t0; ordering is the caller's invariant and is not checked here.
func elapsed(t0, t1 uint64) time.Duration {
	return time.Duration(t1 - t0)
}

// timingTolerance estimates the uncertainty of a single elapsed-time
// measurement: half of whichever is larger, the clock's reported resolution
// or the measured overhead of two back-to-back clock samples. It is reported
// to the user as a +/- bound, never subtracted from results.
func timingTolerance() (time.Duration, error) {
	res, err := clockResolution()
	if err != nil {
		return 0, err
	}

	t0 := monotonicNow()
	t1 := monotonicNow()
	overhead := t1 - t0

	if res > overhead {
		return time.Duration(res / 2), nil
	}
	return time.Duration(overhead / 2), nil
}
