package main

import "fmt"

// configError marks a non-retryable configuration problem: bad device
// geometry, an unusable requested size, and the like. The top-level handler
// in main prints it and exits; components only return it.
type configError struct {
	msg string
}

func (e *configError) Error() string { return e.msg }

func configErrorf(format string, args ...any) error {
	return &configError{msg: fmt.Sprintf(format, args...)}
}

// sysError wraps a failing system call with the operation that issued it,
// so the final message reads like "ioctl(BLKGETSIZE64): permission denied".
func sysError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
