// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"io"
	"strings"

	"github.com/itsManjeet/searchsort/internal/logging"
	"golang.org/x/xerrors"
)

type config struct {
	cmd     string
	algo    string
	value   string
	step    int
	typ     string
	log     string
	verbose bool
	count   bool
	values  []string
}

var defaultAlgo = map[string]string{
	"sort":   "quick",
	"search": "binary",
}

func parseConfig(cmd string, args []string, stderr io.Writer) (*config, error) {
	cfg := &config{cmd: cmd}
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	switch cmd {
	case "sort":
		fs.StringVar(&cfg.algo, "algo", defaultAlgo[cmd], "sort algorithm: bubble, quick or merge")
	case "search":
		fs.StringVar(&cfg.algo, "algo", defaultAlgo[cmd], "search algorithm: linear, binary, binary-first or jump")
		fs.StringVar(&cfg.value, "value", "", "value to search for")
		fs.IntVar(&cfg.step, "step", -1, "jump search step; negative means the square root of the input length")
	case "partition":
		cfg.algo = "quick-partition"
	case "check":
		cfg.algo = "is-sorted"
	default:
		usage(stderr)
		return nil, errUsage
	}
	fs.StringVar(&cfg.typ, "type", "int", "element type: int, float or string")
	fs.StringVar(&cfg.log, "log", "text", "log backend: "+strings.Join(logging.Backends, ", "))
	fs.BoolVar(&cfg.verbose, "v", false, "log debug details")
	fs.BoolVar(&cfg.count, "count", false, "print the number of comparisons")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, errUsage
		}
		return nil, xerrors.Errorf("%s: %w", cmd, errUsage)
	}
	if cmd == "search" && cfg.value == "" && cfg.typ != "string" {
		return nil, xerrors.New("search: -value is required")
	}
	cfg.values = fs.Args()
	return cfg, nil
}
