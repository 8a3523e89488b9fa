// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Searchsort runs one of the search or sort algorithms on a list of values
// and prints the result.
//
// Usage:
//
//	searchsort sort [-algo bubble|quick|merge] [flags] [values...]
//	searchsort search -value v [-algo linear|binary|binary-first|jump] [-step n] [flags] [values...]
//	searchsort partition [flags] [values...]
//	searchsort check [flags] [values...]
//
// Values come from the command line or, when none are given, from standard
// input separated by white space. Put -- before the values if the first one
// is negative.
//
// Sort prints the sorted values. Search prints the index of the value and
// exits with status 1 if it is absent. Partition partitions the values around
// the last one and prints the pivot's index and the result. Check prints
// whether the values are sorted and exits with status 1 if they are not.
//
// The binary, binary-first and jump searches expect sorted input; the
// result on unsorted input is unspecified and a warning is logged.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/itsManjeet/searchsort/internal/logging"
	"github.com/itsManjeet/searchsort/internal/opcount"
	"github.com/itsManjeet/searchsort/internal/order"
	"github.com/itsManjeet/searchsort/search"
	"github.com/itsManjeet/searchsort/sorts"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

var (
	errNotFound  = xerrors.New("not found")
	errNotSorted = xerrors.New("not sorted")
	errUsage     = xerrors.New("usage")
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case xerrors.Is(err, errNotFound), xerrors.Is(err, errNotSorted):
		os.Exit(1)
	case xerrors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "searchsort: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}
	cfg, err := parseConfig(args[0], args[1:], stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger, err := logging.New(stderr, cfg.log, level)
	if err != nil {
		return err
	}
	logger = logger.With("cmd", cfg.cmd, "type", cfg.typ)

	tokens := cfg.values
	if len(tokens) == 0 {
		if tokens, err = readTokens(stdin); err != nil {
			return xerrors.Errorf("reading input: %w", err)
		}
	}

	r := &runner{cfg: cfg, out: stdout, logger: logger}
	switch cfg.typ {
	case "int":
		return execute(r, tokens, strconv.Atoi, order.Compare[int])
	case "float":
		return execute(r, tokens, parseFloat, order.Compare[float64])
	case "string":
		return execute(r, tokens, parseString, strings.Compare)
	}
	return xerrors.Errorf("unknown type %q (want int, float or string)", cfg.typ)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: searchsort sort|search|partition|check [flags] [values...]\n")
	fmt.Fprintf(w, "Run 'searchsort <command> -h' for the flags of a command.\n")
}

func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	return tokens, sc.Err()
}

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func parseString(s string) (string, error) { return s, nil }

type runner struct {
	cfg    *config
	out    io.Writer
	logger *slog.Logger
}

func execute[E any](r *runner, tokens []string, parse func(string) (E, error), cmp func(a, b E) int) error {
	s := make([]E, len(tokens))
	for i, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return xerrors.Errorf("value %d: %w", i+1, err)
		}
		s[i] = v
	}

	var c opcount.Counter
	counted := opcount.Compare(&c, cmp)
	start := time.Now()
	var err error
	switch r.cfg.cmd {
	case "sort":
		err = sortValues(r, s, counted)
	case "search":
		err = searchValues(r, s, parse, cmp, &c)
	case "partition":
		err = partitionValues(r, s, counted)
	case "check":
		err = checkValues(r, s, counted)
	}
	r.logger.Debug("done",
		"algo", r.cfg.algo,
		"n", len(s),
		"comparisons", c.Count(),
		"elapsed", time.Since(start))
	if err == nil && r.cfg.count {
		fmt.Fprintf(r.out, "%d comparisons\n", c.Count())
	}
	return err
}

func sortValues[E any](r *runner, s []E, cmp func(a, b E) int) error {
	switch r.cfg.algo {
	case "bubble":
		sorts.BubbleFunc(s, cmp)
	case "quick":
		sorts.QuickFunc(s, cmp)
	case "merge":
		sorts.MergeFunc(s, cmp)
	default:
		return xerrors.Errorf("unknown sort algorithm %q", r.cfg.algo)
	}
	printValues(r.out, s)
	return nil
}

func searchValues[E any](r *runner, s []E, parse func(string) (E, error), cmp func(a, b E) int, c *opcount.Counter) error {
	target, err := parse(r.cfg.value)
	if err != nil {
		return xerrors.Errorf("search value: %w", err)
	}
	if r.cfg.algo != "linear" && !sorts.IsSortedFunc(s, cmp) {
		r.logger.Warn("input is not sorted; the result is unspecified", "algo", r.cfg.algo)
	}

	counted := opcount.Compare(c, cmp)
	var (
		i  int
		ok bool
	)
	switch r.cfg.algo {
	case "linear":
		i, ok = search.LinearFunc(s, opcount.Predicate(c, func(e E) bool { return cmp(e, target) == 0 }))
	case "binary":
		i, ok = search.BinaryFunc(s, target, counted)
	case "binary-first":
		i, ok = search.BinaryFirstFunc(s, target, counted)
	case "jump":
		if r.cfg.step < 0 {
			i, ok = search.JumpFunc(s, target, counted)
		} else {
			i, ok = search.JumpStepFunc(s, target, r.cfg.step, counted)
		}
	default:
		return xerrors.Errorf("unknown search algorithm %q", r.cfg.algo)
	}
	if !ok {
		fmt.Fprintln(r.out, "not found")
		return errNotFound
	}
	fmt.Fprintln(r.out, i)
	return nil
}

func partitionValues[E any](r *runner, s []E, cmp func(a, b E) int) error {
	if len(s) == 0 {
		return xerrors.New("partition needs at least one value")
	}
	p := sorts.QuickPartitionFunc(s, cmp)
	fmt.Fprintln(r.out, p)
	printValues(r.out, s)
	return nil
}

func checkValues[E any](r *runner, s []E, cmp func(a, b E) int) error {
	ok := sorts.IsSortedFunc(s, cmp)
	fmt.Fprintln(r.out, ok)
	if !ok {
		return errNotSorted
	}
	return nil
}

func printValues[E any](w io.Writer, s []E) {
	bw := bufio.NewWriter(w)
	for i, v := range s {
		if i > 0 {
			bw.WriteByte(' ')
		}
		fmt.Fprint(bw, v)
	}
	bw.WriteByte('\n')
	bw.Flush()
}
