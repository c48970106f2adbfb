package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDevice is an in-memory stand-in for a block device. Every read
// succeeds instantly and is recorded.
type recordingDevice struct {
	offsets []int64
	lengths []int
}

func (d *recordingDevice) ReadAt(p []byte, off int64) (int, error) {
	d.offsets = append(d.offsets, off)
	d.lengths = append(d.lengths, len(p))
	return len(p), nil
}

func testDeviceInfo(sizeBytes uint64, blockSize uint32) DeviceInfo {
	return DeviceInfo{
		SizeBytes: sizeBytes,
		BlockSize: blockSize,
		NumBlocks: sizeBytes / uint64(blockSize),
		Alignment: uint64(blockSize),
	}
}

func TestSeqReadTrial_ReadsStartAndEnd(t *testing.T) {
	dev := &recordingDevice{}
	info := testDeviceInfo(1<<30, 512)

	bytes, _, err := seqReadTrial(dev, info, 1<<20)
	require.NoError(t, err)

	assert.Equal(t, uint64(2<<20), bytes)
	require.Len(t, dev.offsets, 2)
	assert.Equal(t, int64(0), dev.offsets[0])
	assert.Equal(t, int64(1<<30-1<<20), dev.offsets[1])
	assert.Equal(t, 1<<20, dev.lengths[0])
	assert.Equal(t, 1<<20, dev.lengths[1])
}

func TestSeqReadTrial_RoundsUpToAlignment(t *testing.T) {
	dev := &recordingDevice{}
	info := testDeviceInfo(1<<30, 512)

	bytes, _, err := seqReadTrial(dev, info, 1000)
	require.NoError(t, err)

	// 1000 rounds up to 1024, read twice.
	assert.Equal(t, uint64(2048), bytes)
	assert.Equal(t, 1024, dev.lengths[0])
}

func TestSeqReadTrial_ClampsToDeviceSize(t *testing.T) {
	dev := &recordingDevice{}
	info := testDeviceInfo(1<<20, 512) // 1 MiB device

	bytes, _, err := seqReadTrial(dev, info, 64<<20)
	require.NoError(t, err)

	assert.Equal(t, uint64(2<<20), bytes)
	require.Len(t, dev.offsets, 2)
	assert.Equal(t, int64(0), dev.offsets[0])
	assert.Equal(t, int64(0), dev.offsets[1]) // end read starts at offset 0 too
}

func TestBlockTimeFromTotals(t *testing.T) {
	assert.Equal(t, 10*time.Nanosecond,
		blockTimeFromTotals(1024, 20*time.Nanosecond, 512))

	// Trial smaller than one block: floor at one block, no division by zero.
	assert.Equal(t, 20*time.Nanosecond,
		blockTimeFromTotals(100, 20*time.Nanosecond, 512))

	// Zero elapsed time stays zero; the report treats it as immeasurable.
	assert.Equal(t, time.Duration(0), blockTimeFromTotals(1024, 0, 512))
}

func TestMeasureBlockReadTime_ExplicitSizeRunsOneTrial(t *testing.T) {
	calls := 0
	trial := func(readSize uint64) (uint64, time.Duration, error) {
		calls++
		assert.Equal(t, uint64(1<<20), readSize)
		return 2 << 20, 100 * time.Millisecond, nil
	}

	res, err := measureBlockReadTime(trial, 512, 1<<20)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(2<<20), res.TotalBytes)
	assert.Equal(t, 100*time.Millisecond, res.TotalTime)
	assert.Equal(t, blockTimeFromTotals(2<<20, 100*time.Millisecond, 512), res.BlockReadTime)
}

func TestMeasureBlockReadTime_AdaptiveStopsAtThreshold(t *testing.T) {
	// Each trial takes 600ms: sizes 64, 128, 256 and 512 MiB run before
	// the cumulative 2.4s crosses the 2s threshold.
	var sizes []uint64
	trial := func(readSize uint64) (uint64, time.Duration, error) {
		sizes = append(sizes, readSize)
		return readSize, 600 * time.Millisecond, nil
	}

	res, err := measureBlockReadTime(trial, 512, 0)
	require.NoError(t, err)

	assert.Equal(t, []uint64{64 << 20, 128 << 20, 256 << 20, 512 << 20}, sizes)
	assert.Equal(t, uint64(960<<20), res.TotalBytes)
	assert.Equal(t, 2400*time.Millisecond, res.TotalTime)
	assert.GreaterOrEqual(t, res.TotalTime, minAutoSeqReadTime)

	// Per-block time comes from the cumulative totals, not the last trial.
	assert.Equal(t, blockTimeFromTotals(960<<20, 2400*time.Millisecond, 512), res.BlockReadTime)
}

func TestMeasureBlockReadTime_AdaptiveStopsAtCeiling(t *testing.T) {
	// Trials finish almost instantly; the size ceiling terminates the loop.
	var sizes []uint64
	trial := func(readSize uint64) (uint64, time.Duration, error) {
		sizes = append(sizes, readSize)
		return readSize, time.Millisecond, nil
	}

	res, err := measureBlockReadTime(trial, 512, 0)
	require.NoError(t, err)

	assert.Equal(t, []uint64{64 << 20, 128 << 20, 256 << 20, 512 << 20, 1024 << 20}, sizes)
	assert.Less(t, res.TotalTime, minAutoSeqReadTime)
	assert.Equal(t, uint64(1984<<20), res.TotalBytes)

	// Termination invariant: either the threshold was met or the ceiling
	// was reached, never neither.
	lastCandidate := sizes[len(sizes)-1] * 2
	assert.True(t, res.TotalTime >= minAutoSeqReadTime || lastCandidate > maxAutoSeqReadBytes)
}
