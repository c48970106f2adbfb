package main

// finishProbe validates the raw geometry coming out of the platform probe
// and builds the DeviceInfo.
//
// A device smaller than its own reported block size is a corrupt or
// unsupported configuration, not something to retry. A raw alignment of
// zero means the OS had no recommendation; the physical block size is the
// safe choice then. Whatever alignment ends up chosen is rounded up to a
// power of two, which the aligned allocator requires.
func finishProbe(sizeBytes uint64, blockSize uint32, rawAlign uint64) (DeviceInfo, error) {
	if blockSize == 0 {
		return DeviceInfo{}, configErrorf("device reports a physical block size of zero")
	}
	if sizeBytes < uint64(blockSize) {
		return DeviceInfo{}, configErrorf("block size (%d) is greater than device itself (%d)",
			blockSize, sizeBytes)
	}

	if rawAlign == 0 {
		rawAlign = uint64(blockSize)
	}
	align, err := smallestPow2ThatHolds(rawAlign)
	if err != nil {
		return DeviceInfo{}, err
	}

	return DeviceInfo{
		SizeBytes: sizeBytes,
		BlockSize: blockSize,
		NumBlocks: sizeBytes / uint64(blockSize),
		Alignment: align,
	}, nil
}
