//go:build linux

package main

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// probeDevice queries a block device's geometry: physical block size via
// BLKPBSZGET, total size via BLKGETSIZE64, and the recommended direct-I/O
// buffer alignment via statx.
func probeDevice(f *os.File) (DeviceInfo, error) {
	fd := int(f.Fd())

	blockSize, err := unix.IoctlGetUint32(fd, unix.BLKPBSZGET)
	if err != nil {
		return DeviceInfo{}, sysError("ioctl(BLKPBSZGET)", err)
	}

	var size uint64
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), unix.BLKGETSIZE64,
		uintptr(unsafe.Pointer(&size))); errno != 0 {
		return DeviceInfo{}, sysError("ioctl(BLKGETSIZE64)", errno)
	}

	return finishProbe(size, blockSize, dioAlignment(fd))
}

// dioAlignment returns the kernel's recommended memory alignment for direct
// I/O on fd, or 0 when it has none. Kernels before 6.1 do not implement
// STATX_DIOALIGN; that simply means no recommendation.
func dioAlignment(fd int) uint64 {
	var stx unix.Statx_t
	if err := unix.Statx(fd, "", unix.AT_EMPTY_PATH, unix.STATX_DIOALIGN, &stx); err != nil {
		return 0
	}
	if stx.Mask&unix.STATX_DIOALIGN == 0 {
		return 0
	}
	return uint64(stx.Dio_mem_align)
}
