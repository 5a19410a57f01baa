package perf

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// This file persists named series in a folder, in a way that is human-readable
// and git-friendly: one "<name>.jsonl" file per series, one point per line.
// The main goal for such data is to live on a private git repo next to the
// ledger that produced the NAV values.

const seriesFilesGlob = "*.jsonl"

// point is the object persisted on each line of a series file.
type point struct {
	On    Date    `json:"on"`
	Value float64 `json:"v"`
}

// SeriesStore is an in-memory collection of named series, loaded from and
// saved to a folder of JSONL files.
type SeriesStore struct {
	series map[string]*TimeSeries
}

// NewSeriesStore returns a new empty store.
func NewSeriesStore() *SeriesStore {
	return &SeriesStore{series: make(map[string]*TimeSeries)}
}

func (s *SeriesStore) Has(name string) bool { _, ok := s.series[name]; return ok }

// Get returns the named series, or nil when absent.
func (s *SeriesStore) Get(name string) *TimeSeries { return s.series[name] }

// Add registers a series under a name, replacing any previous one.
func (s *SeriesStore) Add(name string, ts *TimeSeries) { s.series[name] = ts }

// Append adds a single point to the named series, creating it on first use.
func (s *SeriesStore) Append(name string, on Date, v float64) {
	ts, ok := s.series[name]
	if !ok {
		ts = NewTimeSeries()
		s.series[name] = ts
	}
	ts.Append(on, v)
}

// Merge appends every point of ts into the named series, overwriting
// duplicate dates. Fetchers use it to refresh a stored series in place.
func (s *SeriesStore) Merge(name string, ts *TimeSeries) {
	for on, v := range ts.Values() {
		s.Append(name, on, v)
	}
}

// Names returns the stored series names in alphabetical order.
func (s *SeriesStore) Names() []string {
	names := make([]string, 0, len(s.series))
	for name := range s.series {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Benchmarks resolves stored series names into benchmark level series over r.
// The CDI series is stored as daily percent rates; it is compounded into
// index levels with [CDIIndex] so it compares like the level benchmarks.
func (s *SeriesStore) Benchmarks(r Range, names ...string) ([]Benchmark, error) {
	var benchmarks []Benchmark
	for _, name := range names {
		levels := s.Get(name)
		if levels == nil {
			return nil, fmt.Errorf("no benchmark series %q in store", name)
		}
		if name == SeriesCDI {
			levels = CDIIndex(levels.Between(r))
		}
		benchmarks = append(benchmarks, Benchmark{Name: name, Levels: levels})
	}
	return benchmarks, nil
}

// RiskFree returns the named stored daily-rate series as fractional period
// returns over r, suitable for [NewPerformanceReport]. An empty name means no
// risk-free rate.
func (s *SeriesStore) RiskFree(r Range, name string) (*TimeSeries, error) {
	if name == "" {
		return nil, nil
	}
	rates := s.Get(name)
	if rates == nil {
		return nil, fmt.Errorf("no risk-free series %q in store", name)
	}
	return CDIDailyReturns(rates.Between(r)), nil
}

// decodeSeries parses a single series file. filename is for error messages only.
func decodeSeries(filename string, r io.Reader) (*TimeSeries, error) {
	ts := NewTimeSeries()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var pt point
		if err := json.Unmarshal([]byte(line), &pt); err != nil {
			return nil, fmt.Errorf("format error in %s:%d: %w", filename, i, err)
		}
		ts.Append(pt.On, pt.Value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return ts, nil
}

// DecodeSeriesStore reads every series file in a folder.
func DecodeSeriesStore(dir string) (*SeriesStore, error) {
	filenames, err := filepath.Glob(filepath.Join(dir, seriesFilesGlob))
	if err != nil {
		return nil, fmt.Errorf("cannot scan %q: %w", dir, err)
	}
	if len(filenames) == 0 {
		// Distinguish a missing folder from an empty one.
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	store := NewSeriesStore()
	for _, filename := range filenames {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
		}
		ts, err := decodeSeries(filename, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		store.Add(name, ts)
	}
	return store, nil
}

// EncodeSeriesStore writes every series of the store into dir, one JSONL file
// per series, points in chronological order. The folder is created if needed.
func EncodeSeriesStore(dir string, store *SeriesStore) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create %q: %w", dir, err)
	}
	for _, name := range store.Names() {
		filename := filepath.Join(dir, name+".jsonl")
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("cannot open %q for writing: %w", filename, err)
		}
		w := bufio.NewWriter(f)
		for on, v := range store.Get(name).Values() {
			line, err := json.Marshal(point{On: on, Value: v})
			if err != nil {
				f.Close()
				return fmt.Errorf("cannot encode point %s of %q: %w", on, name, err)
			}
			w.Write(line)
			w.WriteByte('\n')
		}
		if err := w.Flush(); err != nil {
			f.Close()
			return fmt.Errorf("cannot write %q: %w", filename, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("cannot close %q: %w", filename, err)
		}
	}
	return nil
}
