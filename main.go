package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var version = "1.0.0"

func main() {
	// Reorder args so flags after the positional device argument still
	// work. Go's flag package stops parsing at the first non-flag
	// argument, so "hdtime /dev/sda -read-count 100" would not parse
	// -read-count.
	reorderArgs()

	countFlag := flag.Uint64("read-count", 0, "Random reads in the seek test (default: autodetect)")
	sizeFlag := flag.String("read-size", "", "Size of read blocks in the sequential test, e.g. 256MiB (default: autodetect)")
	noColorFlag := flag.Bool("no-color", false, "Disable colored output")
	versionFlag := flag.Bool("version", false, "Show version and exit")

	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("hdtime v%s\n", version)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "hdtime: missing device name\n")
		fmt.Fprintf(os.Stderr, "Try 'hdtime -help' for more information.\n")
		os.Exit(2)
	}

	countGiven := false
	flag.Visit(func(fl *flag.Flag) {
		if fl.Name == "read-count" {
			countGiven = true
		}
	})
	if countGiven && *countFlag == 0 {
		fmt.Fprintln(os.Stderr, "hdtime: invalid read count given (must be at least 1)")
		os.Exit(1)
	}

	opts := Options{NumSeeks: *countFlag}
	if *sizeFlag != "" {
		size, err := parseHumanSize(*sizeFlag)
		if err != nil || size == 0 {
			fmt.Fprintf(os.Stderr, "hdtime: invalid read block size %q (must be at least 1 byte)\n", *sizeFlag)
			os.Exit(1)
		}
		opts.ReadSize = size
	}

	initColors(*noColorFlag)

	if err := run(flag.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "hdtime: %v\n", err)
		os.Exit(1)
	}
}

// run owns the device handle for the duration of the benchmark: open,
// probe, measure, close, and only then print. A single measurement pass;
// any failure aborts the whole run.
func run(path string, opts Options) error {
	f, err := openDevice(path)
	if err != nil {
		return err
	}

	info, err := probeDevice(f)
	if err != nil {
		f.Close()
		return err
	}

	res, err := runBenchmarks(f, path, info, opts)
	f.Close()
	if err != nil {
		return err
	}

	printResults(res)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hdtime [options] <device>\n\n")
	fmt.Fprintf(os.Stderr, "hdtime - measure block device read performance\n\n")
	fmt.Fprintf(os.Stderr, "Does read tests on a block device, such as a hard drive, and reports\n")
	fmt.Fprintf(os.Stderr, "several timing values for benchmark and comparison purposes. All tests\n")
	fmt.Fprintf(os.Stderr, "are read-only; any data on the device is left untouched.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nSIZE accepts an optional unit suffix: KiB, MiB, GiB, ... (powers of\n")
	fmt.Fprintf(os.Stderr, "1024), KB, MB, GB, ... (powers of 1000), or bare K, M, G, ... (powers\n")
	fmt.Fprintf(os.Stderr, "of 1024).\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  hdtime /dev/sda                    Autodetect read size and seek count\n")
	fmt.Fprintf(os.Stderr, "  hdtime -read-size 256MiB /dev/sda  Single sequential trial of 256 MiB\n")
	fmt.Fprintf(os.Stderr, "  hdtime /dev/sda -read-count 500    500 random reads in the seek test\n")
}

// reorderArgs moves flags before positional args so flag.Parse() sees them.
func reorderArgs() {
	var flags, positional []string
	args := os.Args[1:]
	skip := false
	for i, a := range args {
		if skip {
			flags = append(flags, a)
			skip = false
			continue
		}
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
			if strings.Contains(a, "=") {
				continue // value is embedded: -read-size=256MiB
			}
			// Peek at next arg to see if it's a value for a known
			// value-taking flag.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				base := strings.TrimLeft(a, "-")
				switch base {
				case "read-count", "read-size":
					skip = true
				}
			}
		} else {
			positional = append(positional, a)
		}
	}
	os.Args = append([]string{os.Args[0]}, append(flags, positional...)...)
}
