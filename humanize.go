package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// humanValue is a scaled magnitude paired with the unit it is expressed in.
// Created per formatting call and immediately printed, never stored.
type humanValue struct {
	Value float64
	Unit  string
}

var binaryIECUnits = []string{
	"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB",
}

var speedIECUnits = []string{
	"B/s", "KiB/s", "MiB/s", "GiB/s", "TiB/s", "PiB/s", "EiB/s", "ZiB/s", "YiB/s",
}

// humanizeValue divides x by ratio (moving to the next larger unit) until
// the quotient drops below ratio or the unit table runs out, and returns
// the quotient together with the unit it landed on.
func humanizeValue(x float64, ratio float64, units []string) humanValue {
	unitExp := 0
	for x >= ratio && unitExp < len(units)-1 {
		x /= ratio
		unitExp++
	}
	return humanValue{Value: x, Unit: units[unitExp]}
}

// humanizeSize renders a byte count in IEC units.
func humanizeSize(x uint64) humanValue {
	return humanizeValue(float64(x), 1024, binaryIECUnits)
}

// humanizeSpeed renders a byte rate in IEC units per second.
func humanizeSpeed(bytesPerSecond float64) humanValue {
	return humanizeValue(bytesPerSecond, 1024, speedIECUnits)
}

func (hv humanValue) String() string {
	return fmt.Sprintf("%.2f %s", hv.Value, hv.Unit)
}

const nsPerSecond = 1_000_000_000

// timeUnit is one rung of the duration ladder, scaled in nanoseconds.
// A year is 365.25 days; a month is a twelfth of that.
type timeUnit struct {
	name string
	ns   uint64
}

var timeUnits = []timeUnit{
	{"ns", 1},
	{"µs", 1_000},
	{"ms", 1_000_000},
	{"s", 1_000_000_000},
	{"min", 60 * 1_000_000_000},
	{"h", 3_600 * 1_000_000_000},
	{"d", 86_400 * 1_000_000_000},
	{"month", 2_629_800 * 1_000_000_000},
	{"year", 31_557_600 * 1_000_000_000},
}

var subSecondUnits = []string{"ns", "µs", "ms"}

// humanizeTime renders ns as the non-zero components of the time ladder,
// largest first, e.g. "2 min, 5.250 s". Units of a second and above become
// integer components; the sub-second remainder is a single scaled value
// printed with the given decimal precision. A remainder expressible in
// whole nanoseconds gets no decimals: the measurement has nothing finer to
// report.
func humanizeTime(ns uint64, precision int) string {
	var parts []string

	rest := ns
	for i := len(timeUnits) - 1; timeUnits[i].ns >= nsPerSecond; i-- {
		unit := timeUnits[i]
		if count := rest / unit.ns; count > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", count, unit.name))
			rest -= count * unit.ns
		}
	}

	if rest > 0 || len(parts) == 0 {
		hv := humanizeValue(float64(rest), 1000, subSecondUnits)
		if hv.Unit == "ns" {
			precision = 0
		}
		parts = append(parts, strconv.FormatFloat(hv.Value, 'f', precision, 64)+" "+hv.Unit)
	}

	return strings.Join(parts, ", ")
}

var sizeSuffixLetters = "KMGTPEZY"

// parseHumanSize converts a size string with an optional unit suffix into
// bytes. KiB, MiB, ... are powers of 1024; KB, MB, ... powers of 1000;
// bare K, M, ... are treated as powers of 1024. A trailing B (or no suffix
// at all) means plain bytes. Multipliers are applied step by step so that
// overflow is caught; ZiB and YiB exceed uint64 for any non-zero count.
func parseHumanSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)

	base := uint64(1024)
	exp := 0
	num := s

	switch {
	case len(s) > 3 && strings.HasSuffix(s, "iB") &&
		strings.ContainsRune(sizeSuffixLetters, rune(s[len(s)-3])):
		exp = strings.IndexByte(sizeSuffixLetters, s[len(s)-3]) + 1
		num = s[:len(s)-3]
	case len(s) > 2 && strings.HasSuffix(s, "B") &&
		strings.ContainsRune(sizeSuffixLetters, rune(s[len(s)-2])):
		base = 1000
		exp = strings.IndexByte(sizeSuffixLetters, s[len(s)-2]) + 1
		num = s[:len(s)-2]
	case len(s) > 1 && strings.ContainsRune(sizeSuffixLetters, rune(s[len(s)-1])):
		exp = strings.IndexByte(sizeSuffixLetters, s[len(s)-1]) + 1
		num = s[:len(s)-1]
	case len(s) > 1 && strings.HasSuffix(s, "B"):
		num = s[:len(s)-1]
	}

	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}

	for i := 0; i < exp; i++ {
		if n > math.MaxUint64/base {
			return 0, fmt.Errorf("size %q overflows", s)
		}
		n *= base
	}

	return n, nil
}
