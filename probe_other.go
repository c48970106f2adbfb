//go:build !linux && !darwin

package main

import "os"

func probeDevice(f *os.File) (DeviceInfo, error) {
	return DeviceInfo{}, configErrorf("block device probing is not supported on this platform")
}
