package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvsort/sorting"
	"github.com/urfave/cli/v2"
)

func cmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortArgs,
		Category:  "TOOL",
		Usage:     "sort integers given as arguments",
		ArgsUsage: "N...",
		Description: `
Sorts the integer arguments and prints the result. The arguments are
never modified; with --steps every intermediate state is printed.

Examples:
$ sortdemo sort 64 34 25 12 22 11 90
$ sortdemo sort --desc --stats -s selection 5 2 8 1 9 3`,
		Flags: []cli.Flag{
			strategyFlag(sorting.StrategyBubble.String()),
			&cli.BoolFlag{
				Name:    "desc",
				Aliases: []string{"d"},
				Usage:   "sort into non-increasing order",
			},
			&cli.BoolFlag{
				Name:  "steps",
				Usage: "print the sequence after every swap",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print passes, comparisons and swaps",
			},
		},
	}
}

func sortArgs(ctx *cli.Context) error {
	nums, err := parseInts(ctx.Args().Slice())
	if err != nil {
		return err
	}
	s, err := sorting.ParseStrategy(ctx.String("strategy"))
	if err != nil {
		return err
	}

	opts := []sorting.Option{sorting.WithStrategy(s), traceSwaps(s)}
	if ctx.Bool("desc") {
		opts = append(opts, sorting.WithDescending())
	}
	if ctx.Bool("steps") {
		opts = append(opts, sorting.WithSteps())
	}
	logger.Debugf("sorting %d values with %s", len(nums), s)

	res, err := sorting.Sort(nums, func(a, b int) bool { return a < b }, opts...)
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	for i, step := range res.Steps {
		fmt.Fprintf(w, "step %d: %v\n", i, step)
	}
	fmt.Fprintln(w, res.Sorted)
	if ctx.Bool("stats") {
		fmt.Fprintln(w, formatStats(res.Stats))
	}

	return nil
}

// parseInts converts every argument or reports the first bad one.
func parseInts(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", a, err)
		}
		nums = append(nums, n)
	}

	return nums, nil
}
