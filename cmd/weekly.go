package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/quantbr/perf/renderer"
)

type weeklyCmd struct {
	report reportCmd
	watch  int
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display a weekly performance report" }
func (*weeklyCmd) Usage() string {
	return `qpr weekly [-d <date>] [-s <series>] [-b <benchmarks>] [-w n]

  Displays the weekly performance report, measured from the previous week's
  final close (the last trading Friday).
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	c.report.period = "week"
	c.report.commonFlags(f)
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *weeklyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := c.report.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	for {
		report, err := c.report.generate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if c.watch == 0 {
				return subcommands.ExitFailure
			}
		} else {
			if c.watch > 0 {
				fmt.Println("\033[2J")
			}
			printMarkdown(renderer.ReportMarkdown(report))
		}

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
