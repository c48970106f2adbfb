package main

import (
	"fmt"
	"io"
	"time"
)

const (
	// Starting read size for a sequential trial when autodetecting.
	defaultSeqReadBytes = 64 * 1024 * 1024

	// Minimum cumulative time to spend reading sequentially before the
	// autodetect loop is satisfied.
	minAutoSeqReadTime = 2 * time.Second

	// Ceiling for the autodetected read size.
	maxAutoSeqReadBytes = 1024 * 1024 * 1024
)

// seqTrialFunc runs one sequential trial at the given read size and returns
// the bytes read and the wall time spent reading.
type seqTrialFunc func(readSize uint64) (uint64, time.Duration, error)

// seqResult is the outcome of the sequential read test.
type seqResult struct {
	BlockReadTime time.Duration // average time to read one physical block
	TotalBytes    uint64
	TotalTime     time.Duration
}

// seqReadTrial performs one sequential trial against dev: two reads of the
// aligned size, one at the logical start of the device and one ending
// exactly at its last byte. Large transfers amortize syscall and
// head-positioning overhead over many blocks.
func seqReadTrial(dev io.ReaderAt, info DeviceInfo, readSize uint64) (uint64, time.Duration, error) {
	alignedSize := alignCeil(readSize, info.Alignment)
	if alignedSize > info.SizeBytes {
		// Degenerate case: device smaller than the requested trial size.
		alignedSize = info.SizeBytes
	}

	fmt.Printf("Reading %s to determine sequential read time, please wait...\n",
		humanizeSize(alignedSize*2))

	buf := alignedBuffer(alignedSize, info.Alignment)

	t0 := monotonicNow()
	if _, err := dev.ReadAt(buf, 0); err != nil {
		return 0, 0, sysError("read", err)
	}
	if _, err := dev.ReadAt(buf, int64(info.SizeBytes-alignedSize)); err != nil {
		return 0, 0, sysError("read", err)
	}
	t1 := monotonicNow()

	return alignedSize * 2, elapsed(t0, t1), nil
}

// blockTimeFromTotals derives the average time to read one physical block.
// A trial shorter than one block would divide by zero; one block is the
// floor. A zero measured duration stays zero and is reported as
// immeasurable by the presentation layer.
func blockTimeFromTotals(totalBytes uint64, totalTime time.Duration, blockSize uint32) time.Duration {
	blocks := totalBytes / uint64(blockSize)
	if blocks == 0 {
		blocks = 1
	}
	return totalTime / time.Duration(blocks)
}

// measureBlockReadTime finds the average time to read one physical block.
// With an explicit readSize a single trial decides. Otherwise trial sizes
// double from the default until the cumulative elapsed time crosses the
// minimum threshold or the next candidate would pass the ceiling; deriving
// the result from the cumulative totals smooths out the variance of any
// single short trial.
func measureBlockReadTime(trial seqTrialFunc, blockSize uint32, readSize uint64) (seqResult, error) {
	if readSize != 0 {
		bytes, dur, err := trial(readSize)
		if err != nil {
			return seqResult{}, err
		}
		return seqResult{
			BlockReadTime: blockTimeFromTotals(bytes, dur, blockSize),
			TotalBytes:    bytes,
			TotalTime:     dur,
		}, nil
	}

	var totalBytes uint64
	var totalTime time.Duration
	for size := uint64(defaultSeqReadBytes); totalTime < minAutoSeqReadTime && size <= maxAutoSeqReadBytes; size *= 2 {
		bytes, dur, err := trial(size)
		if err != nil {
			return seqResult{}, err
		}
		totalBytes += bytes
		totalTime += dur
	}

	return seqResult{
		BlockReadTime: blockTimeFromTotals(totalBytes, totalTime, blockSize),
		TotalBytes:    totalBytes,
		TotalTime:     totalTime,
	}, nil
}
