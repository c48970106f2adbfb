package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBenchmarks_ExplicitSizeAndCount(t *testing.T) {
	// 1 GiB device, 512-byte blocks, explicit 1 MiB read size and 10
	// seeks: exactly one sequential trial of 2 MiB and one seek trial of
	// 10 single-block reads.
	dev := &recordingDevice{}
	info := testDeviceInfo(1<<30, 512)

	res, err := runBenchmarks(dev, "/dev/fake", info, Options{NumSeeks: 10, ReadSize: 1 << 20})
	require.NoError(t, err)

	assert.Equal(t, uint64(2*1024*1024), res.SeqReadBytes)
	assert.Equal(t, uint64(10), res.NumSeeks)
	assert.Equal(t, "/dev/fake", res.Path)
	assert.Equal(t, info, res.Dev)

	// 2 sequential reads followed by 10 block reads.
	require.Len(t, dev.offsets, 12)
	assert.Equal(t, int64(0), dev.offsets[0])
	assert.Equal(t, int64(1<<30-1<<20), dev.offsets[1])
	for i := 2; i < 12; i++ {
		assert.Equal(t, 512, dev.lengths[i])
		assert.GreaterOrEqual(t, dev.offsets[i], int64(0))
		assert.Less(t, dev.offsets[i], int64(info.SizeBytes))
		assert.Zero(t, dev.offsets[i]%512)
	}

	assert.GreaterOrEqual(t, res.TimingTolerance, time.Duration(0))
}

type failingDevice struct {
	err error
}

func (d *failingDevice) ReadAt(p []byte, off int64) (int, error) {
	return 0, d.err
}

func TestRunBenchmarks_ReadErrorAborts(t *testing.T) {
	readErr := errors.New("input/output error")
	dev := &failingDevice{err: readErr}
	info := testDeviceInfo(1<<30, 512)

	_, err := runBenchmarks(dev, "/dev/fake", info, Options{NumSeeks: 10, ReadSize: 1 << 20})
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
}

func TestFinishProbe(t *testing.T) {
	info, err := finishProbe(1<<30, 512, 512)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<30), info.SizeBytes)
	assert.Equal(t, uint32(512), info.BlockSize)
	assert.Equal(t, uint64(1<<30/512), info.NumBlocks)
	assert.Equal(t, uint64(512), info.Alignment)
}

func TestFinishProbe_AlignmentFallsBackToBlockSize(t *testing.T) {
	info, err := finishProbe(1<<30, 4096, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), info.Alignment)
}

func TestFinishProbe_AlignmentRoundedToPowerOfTwo(t *testing.T) {
	info, err := finishProbe(1<<30, 512, 1536)
	require.NoError(t, err)
	assert.Equal(t, uint64(2048), info.Alignment)
}

func TestFinishProbe_DeviceSmallerThanBlock(t *testing.T) {
	_, err := finishProbe(256, 512, 512)
	require.Error(t, err)

	var cfgErr *configError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFinishProbe_ZeroBlockSize(t *testing.T) {
	_, err := finishProbe(1<<30, 0, 0)
	require.Error(t, err)

	var cfgErr *configError
	assert.ErrorAs(t, err, &cfgErr)
}
