package main

import (
	"fmt"

	"github.com/katalvlaran/lvsort/sorting"
	"github.com/urfave/cli/v2"
)

// samples are the sequences printed by the demo command.
var samples = []struct {
	title string
	data  []int
}{
	{"unsorted", []int{64, 34, 25, 12, 22, 11, 90}},
	{"already sorted", []int{1, 2, 3, 4, 5}},
	{"reverse sorted", []int{5, 4, 3, 2, 1}},
	{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5}},
	{"empty", []int{}},
	{"single element", []int{42}},
}

func cmdDemo() *cli.Command {
	return &cli.Command{
		Name:      "demo",
		Action:    demo,
		Category:  "TOOL",
		Usage:     "sort a fixed set of sample sequences",
		Description: `
Prints each sample sequence before and after sorting together with the
number of passes, comparisons and swaps. Without --strategy every
strategy is shown.

Examples:
$ sortdemo demo
$ sortdemo demo -s selection`,
		Flags: []cli.Flag{
			strategyFlag(""),
		},
	}
}

func demo(ctx *cli.Context) error {
	list, err := strategies(ctx)
	if err != nil {
		return err
	}
	w := ctx.App.Writer

	for _, s := range list {
		fmt.Fprintf(w, "== %s sort ==\n", s)
		for _, sample := range samples {
			res, err := sorting.Sort(sample.data, func(a, b int) bool { return a < b },
				sorting.WithStrategy(s), traceSwaps(s))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s:\n", sample.title)
			fmt.Fprintf(w, "  before: %v\n", sample.data)
			fmt.Fprintf(w, "  after:  %v\n", res.Sorted)
			fmt.Fprintf(w, "  %s\n", formatStats(res.Stats))
		}
		logger.Debugf("%s: %d samples sorted", s, len(samples))
	}

	return nil
}

func formatStats(st sorting.Stats) string {
	return fmt.Sprintf("passes=%d comparisons=%d swaps=%d", st.Passes, st.Comparisons, st.Swaps)
}
