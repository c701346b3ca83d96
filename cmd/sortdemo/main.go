// Command sortdemo prints sample sequences before and after sorting and
// sorts integers given on the command line.
//
//	sortdemo demo --strategy selection
//	sortdemo sort --desc --stats 5 2 8 1 9 3
package main

import (
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "sortdemo",
		Usage: "demonstrate bubble and selection sort",
		Flags: globalFlags(),
		Before: func(c *cli.Context) error {
			return setup(c)
		},
		After: func(c *cli.Context) error {
			teardown()
			return nil
		},
		Commands: []*cli.Command{
			cmdDemo(),
			cmdSort(),
		},
	}
}
