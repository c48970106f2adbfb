package main

import "time"

// DeviceInfo describes the probed geometry of a block device.
// Immutable after probing.
type DeviceInfo struct {
	SizeBytes uint64 // total device size in bytes
	BlockSize uint32 // physical block size reported by the device
	NumBlocks uint64 // SizeBytes / BlockSize
	Alignment uint64 // required I/O buffer alignment, always a power of two
}

// Results holds everything measured during a benchmark run. All values are
// raw durations and byte counts; humanization happens at print time and is
// never stored here.
type Results struct {
	Path string
	Dev  DeviceInfo

	// Sequential read test.
	SeqReadBytes  uint64
	SeqReadTime   time.Duration
	BlockReadTime time.Duration // average time to read one physical block

	// Random-access seek test.
	NumSeeks        uint64
	SeekTotalTime   time.Duration // wall time of the whole seek test
	SeekReadingTime time.Duration // estimated portion spent reading block data
	SeekTime        time.Duration // average per-seek time, reading subtracted

	// Lower bound on the precision of any single time measurement.
	TimingTolerance time.Duration
}

// Options are the already-validated knobs from the command line. Zero
// values mean autodetect.
type Options struct {
	NumSeeks uint64 // explicit seek count, 0 = autodetect
	ReadSize uint64 // explicit sequential read size in bytes, 0 = autodetect
}
