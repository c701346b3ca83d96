package main

import (
	"github.com/katalvlaran/lvsort/sorting"
	"github.com/urfave/cli/v2"
)

func strategyFlag(value string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "strategy",
		Aliases: []string{"s"},
		Value:   value,
		Usage:   "sorting algorithm: bubble or selection",
		EnvVars: []string{"SORTDEMO_STRATEGY"},
	}
}

// strategies resolves the --strategy flag. An empty value selects every
// strategy, so demo can compare them side by side.
func strategies(c *cli.Context) ([]sorting.Strategy, error) {
	name := c.String("strategy")
	if name == "" {
		return []sorting.Strategy{sorting.StrategyBubble, sorting.StrategySelection}, nil
	}
	s, err := sorting.ParseStrategy(name)
	if err != nil {
		return nil, err
	}

	return []sorting.Strategy{s}, nil
}

// traceSwaps returns an OnSwap hook logging each exchange at trace level.
func traceSwaps(s sorting.Strategy) sorting.Option {
	return sorting.WithOnSwap(func(i, j int) {
		logger.Tracef("%s: swap %d <-> %d", s, i, j)
	})
}
