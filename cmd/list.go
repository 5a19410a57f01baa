package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the stored series" }
func (*listCmd) Usage() string {
	return `qpr list

  Lists every series in the store, with its date span and number of points.
`
}

func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load store: %v\n", err)
		return subcommands.ExitFailure
	}

	names := store.Names()
	if len(names) == 0 {
		fmt.Printf("Store %q is empty, run 'qpr fetch' to download the benchmarks.\n", StorePath())
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	fmt.Fprintln(&b, "| Series | From | To | Points |")
	fmt.Fprintln(&b, "|---|---|---|---:|")
	for _, name := range names {
		ts := store.Get(name)
		span, ok := ts.Span()
		if !ok {
			fmt.Fprintf(&b, "| %s | - | - | 0 |\n", name)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", name, span.From, span.To, ts.Len())
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
