package main

import "unsafe"

// alignCeil rounds n up to the nearest multiple of alignment.
func alignCeil(n, alignment uint64) uint64 {
	remainder := n % alignment
	if remainder == 0 {
		return n
	}
	return n - remainder + alignment
}

// log2Floor returns the logarithm of x to base 2, rounded down.
// x must not be zero.
func log2Floor(x uint64) uint {
	var exp uint
	for x > 1 {
		exp++
		x >>= 1
	}
	return exp
}

// smallestPow2ThatHolds returns the smallest power of two larger than or
// equal to x. Values above 2^63 do not fit in any uint64 power of two;
// no allocation could satisfy such an alignment, so that is an error.
func smallestPow2ThatHolds(x uint64) (uint64, error) {
	if x == 0 {
		// log(0) is undefined; the first power of 2 (2^0 = 1) holds it.
		return 1, nil
	}
	if x > 1<<63 {
		return 0, configErrorf("%d doesn't fit in the largest power of 2 a uint64 can hold", x)
	}
	exp := log2Floor(x)
	if 1<<exp == x {
		return x, nil
	}
	return 1 << (exp + 1), nil
}

// alignedBuffer returns a size-byte slice whose first byte sits on an
// align-byte boundary, as required for direct I/O. align must be a power
// of two.
func alignedBuffer(size, align uint64) []byte {
	buf := make([]byte, size+align)
	addr := uint64(uintptr(unsafe.Pointer(&buf[0])))
	offset := align - addr%align
	if offset == align {
		offset = 0
	}
	return buf[offset : offset+size]
}
