package main

import (
	"fmt"
	"os"
	"time"
)

// ANSI color codes.
var (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
)

// initColors disables colours when noColor is true or stdout is not a
// terminal.
func initColors(noColor bool) {
	if noColor || !isTerminal() {
		colorReset = ""
		colorBold = ""
		colorDim = ""
	}
}

// isTerminal reports whether stdout is connected to a terminal.
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// printResults renders the measurement record. All humanization happens
// here, on demand; the record itself stays in raw nanoseconds and bytes.
func printResults(res *Results) {
	devSize := humanizeSize(res.Dev.SizeBytes)
	seqTotal := humanizeSize(res.SeqReadBytes)

	fmt.Printf("\n%s%s:%s\n", colorBold, res.Path, colorReset)
	fmt.Printf(" Physical block size: %d bytes\n", res.Dev.BlockSize)
	fmt.Printf(" Device size: %s (%d blocks, %d bytes)\n\n",
		devSize, res.Dev.NumBlocks, res.Dev.SizeBytes)

	if res.SeqReadTime > 0 {
		speed := humanizeSpeed(float64(res.SeqReadBytes) / res.SeqReadTime.Seconds())
		fmt.Printf(" Sequential read speed: %s (%s in %s)\n",
			speed, seqTotal, humanizeTime(uint64(res.SeqReadTime), 3))
	} else {
		// The whole read finished within the clock's resolution; any
		// derived speed would be a guess.
		fmt.Printf(" Sequential read speed: immeasurable at this clock's resolution (%s read)\n",
			seqTotal)
	}
	fmt.Printf(" Average time to read 1 physical block: %s\n",
		humanizeTime(uint64(res.BlockReadTime), 3))

	fmt.Printf(" Total time spent doing random reads: %s\n",
		humanizeTime(uint64(res.SeekTotalTime), 3))
	fmt.Printf("%s   estimated time spent actually reading data inside the blocks: %s%s\n",
		colorDim, humanizeTime(uint64(res.SeekReadingTime), 3), colorReset)
	seeking := time.Duration(0)
	if res.SeekTotalTime > res.SeekReadingTime {
		seeking = res.SeekTotalTime - res.SeekReadingTime
	}
	fmt.Printf("%s   estimated time seeking: %s%s\n",
		colorDim, humanizeTime(uint64(seeking), 3), colorReset)
	fmt.Printf(" Random access time: %s\n", humanizeTime(uint64(res.SeekTime), 3))
	if res.SeekTime > 0 {
		fmt.Printf(" Seeks/second: %.3f\n", float64(time.Second)/float64(res.SeekTime))
	} else {
		fmt.Printf(" Seeks/second: n/a (seek time below measurement tolerance)\n")
	}

	fmt.Printf("\n Minimum individual time measurement error: +/- %s\n",
		humanizeTime(uint64(res.TimingTolerance), 3))
}
