package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type yearlyCmd struct {
	report reportCmd
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display a yearly performance report" }
func (*yearlyCmd) Usage() string {
	return `qpr yearly [-d <date>] [-s <series>] [-b <benchmarks>]

  Displays the performance report for the year containing the end date.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	c.report.period = "year"
	c.report.commonFlags(f)
}

func (c *yearlyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.report.Execute(ctx, f, args...)
}
