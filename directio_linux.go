//go:build linux

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// openDevice opens path read-only for unbuffered, synchronous I/O.
// O_DIRECT bypasses the page cache so measurements hit the device, not
// memory; it is also why every buffer must be aligned.
func openDevice(path string) (*os.File, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECT|unix.O_SYNC, 0)
	if err != nil {
		return nil, sysError("open "+path, err)
	}
	return os.NewFile(uintptr(fd), path), nil
}
