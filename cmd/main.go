// Command cmd exercises a chainedtable.Table: it prints a small table
// before and after an update, then runs a bulk insert, a table with a
// non-string value type, and a lookup of a missing key.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/thepudds/chainedtable"
)

const separator = "========================="

type config struct {
	bulk      int
	loadCheck chainedtable.LoadCheck
	logger    *slog.Logger
}

func (c config) options(capacity int, loadThreshold float64) []chainedtable.Option {
	return []chainedtable.Option{
		chainedtable.WithCapacity(capacity),
		chainedtable.WithLoadThreshold(loadThreshold),
		chainedtable.WithLoadCheck(c.loadCheck),
		chainedtable.WithLogger(c.logger),
	}
}

func main() {
	n := flag.Int("n", 10000, "number of keys to insert in the capacity test")
	truncate := flag.Bool("truncate", false, "compare the load ratio using integer division")
	verbose := flag.Bool("v", false, "log every rehash")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config{bulk: *n, logger: logger}
	if *truncate {
		cfg.loadCheck = chainedtable.TruncatedRatio
	}
	if err := run(os.Stdout, cfg); err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg config) error {
	ht := chainedtable.Make[string, string](cfg.options(4, 0.5)...)
	ht.Put("Joe", "Doe")
	ht.Put("Jane", "Brain")
	ht.Put("Chris", "Swiss")
	if err := printTable(w, ht); err != nil {
		return err
	}
	fmt.Fprintln(w, separator)

	ht.Put("Wavy", "Gravy")
	ht.Put("Chris", "Bliss")
	if err := printTable(w, ht); err != nil {
		return err
	}
	fmt.Fprintln(w, separator)

	jane, err := ht.Get("Jane")
	if err != nil {
		return fmt.Errorf("get Jane: %w", err)
	}
	fmt.Fprintf(w, "Jane -> %s\n", jane)

	if err := capacityTest(w, cfg); err != nil {
		return fmt.Errorf("capacity test: %w", err)
	}
	if err := genericTest(w, cfg); err != nil {
		return fmt.Errorf("generic test: %w", err)
	}
	if err := missingKeyTest(w, cfg); err != nil {
		return fmt.Errorf("missing key test: %w", err)
	}
	return nil
}

func printTable(w io.Writer, ht *chainedtable.Table[string, string]) error {
	for k := range ht.Keys() {
		v, err := ht.Get(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s -> %s\n", k, v)
	}
	return nil
}

// capacityTest inserts cfg.bulk distinct keys into a 4 bucket table,
// forcing many rehashes, and reads every one back.
func capacityTest(w io.Writer, cfg config) error {
	ht := chainedtable.Make[string, string](cfg.options(4, 0.5)...)
	for i := 0; i < cfg.bulk; i++ {
		ht.Put(strconv.Itoa(i), strconv.Itoa(i+1))
	}
	if ht.Len() != cfg.bulk {
		return fmt.Errorf("table holds %d keys, want %d", ht.Len(), cfg.bulk)
	}
	for i := 0; i < cfg.bulk; i++ {
		v, err := ht.Get(strconv.Itoa(i))
		if err != nil {
			return err
		}
		if want := strconv.Itoa(i + 1); v != want {
			return fmt.Errorf("key %d holds %q, want %q", i, v, want)
		}
	}

	s := ht.Stats()
	cfg.logger.Info("capacity test",
		"entries", s.Len,
		"capacity", s.Capacity,
		"generations", s.Generations,
		"longest_chain", s.LongestChain,
		"load_check", cfg.loadCheck)
	fmt.Fprintln(w, "Capacity Test Successful")
	return nil
}

// genericTest stores int values under keys "as", "ass", "asss", ...
func genericTest(w io.Writer, cfg config) error {
	const count = 10
	ht := chainedtable.Make[string, int](cfg.options(4, 0.5)...)
	s := "a"
	for i := 0; i < count; i++ {
		s += "s"
		ht.Put(s, i)
	}
	v, err := ht.Get(s)
	if err != nil {
		return err
	}
	if v != count-1 {
		return fmt.Errorf("key %q holds %d, want %d", s, v, count-1)
	}
	fmt.Fprintln(w, "Generic Test Successful")
	return nil
}

// missingKeyTest looks up "b" in a table keyed "0" through "9".
func missingKeyTest(w io.Writer, cfg config) error {
	ht := chainedtable.Make[string, string](cfg.options(4, 0.5)...)
	v := "b"
	for i := 0; i < 10; i++ {
		ht.Put(strconv.Itoa(i), v+"c")
		v += "a"
	}

	_, err := ht.Get("b")
	var nek *chainedtable.NonExistentKeyError[string]
	if !errors.As(err, &nek) {
		return fmt.Errorf("lookup of %q returned %v, want a NonExistentKeyError", "b", err)
	}
	fmt.Fprintf(w, "Key not present Test Successful: %v\n", nek)
	return nil
}
