//go:build !linux && !darwin

package main

import "os"

// openDevice opens path read-only. No uncached-I/O mechanism here; results
// on such platforms will include page cache effects.
func openDevice(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sysError("open "+path, err)
	}
	return f, nil
}
