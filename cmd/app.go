// Package cmd implements the qpr CLI to fetch market series and compute
// portfolio performance reports.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/google/subcommands"
	"github.com/quantbr/perf"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&weeklyCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&quarterlyCmd{}, "reports")
	c.Register(&yearlyCmd{}, "reports")
	c.Register(&heatmapCmd{}, "reports")

	c.Register(&fetchCmd{}, "series")
	c.Register(&listCmd{}, "series")

	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDir = flag.String("store", ".series", "Path to the series store folder")

// StorePath returns the app series store folder.
func StorePath() string { return *storeDir }

// DecodeStore loads the series store from the app store folder.
func DecodeStore() (*perf.SeriesStore, error) {
	store, err := perf.DecodeSeriesStore(*storeDir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, store does not exist, using an empty store instead")
		return perf.NewSeriesStore(), nil
	}
	return store, err
}

// EncodeStore saves the series store into the app store folder.
func EncodeStore(store *perf.SeriesStore) error {
	return perf.EncodeSeriesStore(*storeDir, store)
}
