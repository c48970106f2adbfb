package main

import (
	"io"
	"math/rand"
	"time"
)

// runBenchmarks runs the sequential and the random-access test against an
// already probed device, in that order, and assembles the results. The seek
// test depends on the per-block read time from the sequential test to
// subtract in-block read cost, so ordering is strict.
func runBenchmarks(dev io.ReaderAt, path string, info DeviceInfo, opts Options) (*Results, error) {
	seq, err := measureBlockReadTime(func(readSize uint64) (uint64, time.Duration, error) {
		return seqReadTrial(dev, info, readSize)
	}, info.BlockSize, opts.ReadSize)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seek, err := measureSeekTime(func(numSeeks uint64) (time.Duration, error) {
		return seekTrial(dev, info, rng, numSeeks)
	}, seq.BlockReadTime, opts.NumSeeks)
	if err != nil {
		return nil, err
	}

	tolerance, err := timingTolerance()
	if err != nil {
		return nil, err
	}

	return &Results{
		Path:            path,
		Dev:             info,
		SeqReadBytes:    seq.TotalBytes,
		SeqReadTime:     seq.TotalTime,
		BlockReadTime:   seq.BlockReadTime,
		NumSeeks:        seek.NumSeeks,
		SeekTotalTime:   seek.TotalTime,
		SeekReadingTime: seek.ReadingTime,
		SeekTime:        seek.SeekTime,
		TimingTolerance: tolerance,
	}, nil
}
