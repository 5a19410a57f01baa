package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type monthlyCmd struct {
	report reportCmd
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a monthly performance report" }
func (*monthlyCmd) Usage() string {
	return `qpr monthly [-d <date>] [-s <series>] [-b <benchmarks>]

  Displays the performance report for the month containing the end date.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	c.report.period = "month"
	c.report.commonFlags(f)
}

func (c *monthlyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.report.Execute(ctx, f, args...)
}
