package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type quarterlyCmd struct {
	report reportCmd
}

func (*quarterlyCmd) Name() string     { return "quarterly" }
func (*quarterlyCmd) Synopsis() string { return "display a quarterly performance report" }
func (*quarterlyCmd) Usage() string {
	return `qpr quarterly [-d <date>] [-s <series>] [-b <benchmarks>]

  Displays the performance report for the quarter containing the end date.
`
}

func (c *quarterlyCmd) SetFlags(f *flag.FlagSet) {
	c.report.period = "quarter"
	c.report.commonFlags(f)
}

func (c *quarterlyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.report.Execute(ctx, f, args...)
}
