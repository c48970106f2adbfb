//go:build darwin

package main

import (
	"os"
	"syscall"
	"unsafe"
)

// Disk ioctls from <sys/disk.h>.
const (
	dkiocGetBlockSize         = 0x40046418 // DKIOCGETBLOCKSIZE, _IOR('d', 24, uint32)
	dkiocGetBlockCount        = 0x40086419 // DKIOCGETBLOCKCOUNT, _IOR('d', 25, uint64)
	dkiocGetPhysicalBlockSize = 0x4004644d // DKIOCGETPHYSICALBLOCKSIZE, _IOR('d', 77, uint32)
)

// probeDevice queries a block device's geometry. Device size is logical
// block size times block count; macOS has no alignment hint interface, so
// the probe reports none and finishProbe falls back to the block size.
func probeDevice(f *os.File) (DeviceInfo, error) {
	fd := f.Fd()

	var logical uint32
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, dkiocGetBlockSize,
		uintptr(unsafe.Pointer(&logical))); errno != 0 {
		return DeviceInfo{}, sysError("ioctl(DKIOCGETBLOCKSIZE)", errno)
	}

	var count uint64
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, dkiocGetBlockCount,
		uintptr(unsafe.Pointer(&count))); errno != 0 {
		return DeviceInfo{}, sysError("ioctl(DKIOCGETBLOCKCOUNT)", errno)
	}

	physical := logical
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, dkiocGetPhysicalBlockSize,
		uintptr(unsafe.Pointer(&physical))); errno != 0 {
		// Older drivers only report the logical size.
		physical = logical
	}

	return finishProbe(uint64(logical)*count, physical, 0)
}
