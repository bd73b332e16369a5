// Command hanninfo prints properties of Hann analysis windows.
//
// Usage:
//
//	hanninfo [flags] [length ...]
//
// Without arguments it prints info for the precomputed table lengths.
//
// Examples:
//
//	hanninfo 1024
//	hanninfo 64 100 4096
//	hanninfo -table
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-hann"
)

func main() {
	table := flag.Bool("table", false, "list precomputed table lengths")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hanninfo [flags] [length ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of Hann analysis windows.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for the precomputed table lengths.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hanninfo 1024\n")
		fmt.Fprintf(os.Stderr, "  hanninfo 64 100 4096\n")
		fmt.Fprintf(os.Stderr, "  hanninfo -table\n")
	}
	flag.Parse()

	tab := hann.DefaultTable()

	if *table {
		for _, n := range tab.Lengths() {
			fmt.Println(n)
		}
		return
	}

	lengths := resolveLengths(flag.Args(), tab)
	if len(lengths) == 0 {
		fmt.Fprintf(os.Stderr, "error: no window lengths given\n")
		os.Exit(1)
	}

	if !printInfo(tab, lengths) {
		os.Exit(1)
	}
}

func resolveLengths(args []string, tab *hann.Table) []int {
	if len(args) == 0 {
		return tab.Lengths()
	}

	var lengths []int
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: invalid length %q\n", arg)
			continue
		}
		lengths = append(lengths, n)
	}
	return lengths
}

func printInfo(tab *hann.Table, lengths []int) bool {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Length\tCached\tSum Squares\tCoherent Gain\tENBW [bins]\tSidelobe [dB]\n")
	fmt.Fprintf(tw, "------\t------\t-----------\t-------------\t-----------\t-------------\n")

	printed := false
	for _, n := range lengths {
		w, err := tab.Window(n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: length %d: %v\n", n, err)
			continue
		}

		a := hann.Analyze(w)

		cached := "no"
		if tab.Cached(n) {
			cached = "yes"
		}

		fmt.Fprintf(tw, "%d\t%s\t%.6f\t%.6f\t%.4f\t%.2f\n",
			n, cached, a.SumSquares, a.CoherentGain, a.ENBW, a.HighestSidelobedB)
		printed = true
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	return printed
}
