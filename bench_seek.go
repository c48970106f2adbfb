package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"
)

const (
	// Starting number of random reads when autodetecting the seek count.
	defaultNumSeeks = 200

	// Minimum cumulative time to spend in the seek test before the
	// autodetect loop is satisfied.
	minAutoSeekTime = 1 * time.Second

	// Ceiling for the autodetected seek count.
	maxAutoSeeks = 25600
)

// seekTrialFunc runs one seek trial of the given count and returns the wall
// time of the whole trial.
type seekTrialFunc func(numSeeks uint64) (time.Duration, error)

// seekResult is the outcome of the random-access seek test.
type seekResult struct {
	SeekTime    time.Duration // average per-seek time, reading subtracted
	NumSeeks    uint64
	TotalTime   time.Duration
	ReadingTime time.Duration // estimated portion spent reading block data
}

// seekTrial reads numSeeks single blocks at uniformly random block indices.
// The whole loop is timed as one measurement; per-iteration timestamps
// would add their own overhead to every sample.
func seekTrial(dev io.ReaderAt, info DeviceInfo, rng *rand.Rand, numSeeks uint64) (time.Duration, error) {
	buf := alignedBuffer(uint64(info.BlockSize), info.Alignment)

	fmt.Printf("Performing %d random reads, please wait a few seconds...\n", numSeeks)

	t0 := monotonicNow()
	for i := uint64(0); i < numSeeks; i++ {
		// Uint64 spans the full 64-bit range, so reducing it modulo the
		// block count does not collapse toward low block numbers the way
		// a narrow generator would.
		blockIdx := rng.Uint64() % info.NumBlocks
		if _, err := dev.ReadAt(buf, int64(blockIdx*uint64(info.BlockSize))); err != nil {
			return 0, sysError("read", err)
		}
	}
	t1 := monotonicNow()

	return elapsed(t0, t1), nil
}

// seekTimeFromTotals isolates per-seek cost from the measured wall time by
// subtracting the estimated time spent reading the blocks themselves. The
// estimate can overshoot the measurement (caching effects, noise); the
// result floors at zero rather than underflowing.
func seekTimeFromTotals(totalTime, blockReadTime time.Duration, numSeeks uint64) time.Duration {
	readingTime := blockReadTime * time.Duration(numSeeks)
	if totalTime <= readingTime {
		return 0
	}
	return (totalTime - readingTime) / time.Duration(numSeeks)
}

// measureSeekTime finds the device's average seek time. With an explicit
// numSeeks a single trial decides. Otherwise trial counts double from the
// default until the cumulative elapsed time crosses the minimum threshold
// or the next count would pass the ceiling, mirroring the sequential
// test's accumulation strategy.
func measureSeekTime(trial seekTrialFunc, blockReadTime time.Duration, numSeeks uint64) (seekResult, error) {
	if numSeeks != 0 {
		total, err := trial(numSeeks)
		if err != nil {
			return seekResult{}, err
		}
		return seekResult{
			SeekTime:    seekTimeFromTotals(total, blockReadTime, numSeeks),
			NumSeeks:    numSeeks,
			TotalTime:   total,
			ReadingTime: blockReadTime * time.Duration(numSeeks),
		}, nil
	}

	var totalSeeks uint64
	var totalTime time.Duration
	for count := uint64(defaultNumSeeks); totalTime < minAutoSeekTime && count <= maxAutoSeeks; count *= 2 {
		dur, err := trial(count)
		if err != nil {
			return seekResult{}, err
		}
		totalSeeks += count
		totalTime += dur
	}

	return seekResult{
		SeekTime:    seekTimeFromTotals(totalTime, blockReadTime, totalSeeks),
		NumSeeks:    totalSeeks,
		TotalTime:   totalTime,
		ReadingTime: blockReadTime * time.Duration(totalSeeks),
	}, nil
}
