//go:build linux

package main

import "golang.org/x/sys/unix"

// CLOCK_MONOTONIC_RAW is immune to the incremental adjustments made by
// adjtime and NTP. Very old kernels lack it; they get the plain monotonic
// clock instead.
var monotonicClockID = int32(unix.CLOCK_MONOTONIC_RAW)

func init() {
	var ts unix.Timespec
	if err := unix.ClockGettime(monotonicClockID, &ts); err != nil {
		monotonicClockID = unix.CLOCK_MONOTONIC
	}
}

// monotonicNow returns a nanosecond timestamp relative to an unspecified
// starting point. Only differences between two samples are meaningful.
func monotonicNow() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(monotonicClockID, &ts); err != nil {
		// The clock was verified usable at startup.
		panic(sysError("clock_gettime", err))
	}
	return uint64(ts.Sec)*1e9 + uint64(ts.Nsec)
}

// clockResolution returns the resolution of the monotonic clock in
// nanoseconds. This is a lower bound on any measurement's precision.
func clockResolution() (uint64, error) {
	var res unix.Timespec
	if err := unix.ClockGetres(monotonicClockID, &res); err != nil {
		return 0, sysError("clock_getres", err)
	}
	return uint64(res.Sec)*1e9 + uint64(res.Nsec), nil
}
