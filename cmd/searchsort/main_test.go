// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/xerrors"
)

func runArgs(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	err = run(args, strings.NewReader(stdin), &out, &errb)
	return out.String(), errb.String(), err
}

func TestRun(t *testing.T) {
	for _, test := range []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"quick", "", []string{"sort", "--", "5", "1", "91", "-45", "11", "5"}, "-45 1 5 5 11 91\n"},
		{"merge", "", []string{"sort", "-algo=merge", "--", "6", "1", "2", "99", "-1", "13", "7", "1"}, "-1 1 1 2 6 7 13 99\n"},
		{"bubble", "", []string{"sort", "-algo", "bubble", "1", "6", "3", "11", "2"}, "1 2 3 6 11\n"},
		{"bubble empty", "", []string{"sort", "-algo=bubble"}, "\n"},
		{"stdin", "3 2\n1\n", []string{"sort"}, "1 2 3\n"},
		{"floats", "", []string{"sort", "-type=float", "2.5", "0.1", "1e3"}, "0.1 2.5 1000\n"},
		{"strings", "", []string{"sort", "-type=string", "pear", "apple", "fig"}, "apple fig pear\n"},
		{"binary", "", []string{"search", "-value=8", "1", "2", "4", "8", "16", "32"}, "3\n"},
		{"binary-first", "", []string{"search", "-algo=binary-first", "-value=1", "1", "1", "2", "3"}, "0\n"},
		{"jump", "", []string{"search", "-algo=jump", "-value=15", "1", "5", "7", "15", "31", "32", "45"}, "3\n"},
		{"jump step", "", []string{"search", "-algo=jump", "-step=0", "-value=1", "1", "5", "7"}, "0\n"},
		{"linear", "", []string{"search", "-algo=linear", "-value=23", "1", "85", "23", "-4", "8"}, "2\n"},
		{"partition", "", []string{"partition", "7", "2", "9", "4", "5"}, "2\n4 2 5 9 7\n"},
		{"check", "", []string{"check", "1", "2", "2"}, "true\n"},
		{"count", "", []string{"sort", "-algo=bubble", "-count", "1", "2", "3", "4"}, "1 2 3 4\n3 comparisons\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, stderr, err := runArgs(t, test.stdin, test.args...)
			if err != nil {
				t.Fatalf("run(%q) failed: %v\nstderr:\n%s", test.args, err, stderr)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("run(%q) output mismatch (-want +got):\n%s", test.args, diff)
			}
		})
	}
}

func TestRunStatus(t *testing.T) {
	for _, test := range []struct {
		args []string
		want error
		out  string
	}{
		{[]string{"search", "-algo=linear", "-value=-77", "1", "85", "23", "-4", "8"}, errNotFound, "not found\n"},
		{[]string{"search", "-value=42", "--", "-45", "1", "5", "5", "11", "91"}, errNotFound, "not found\n"},
		{[]string{"check", "2", "1"}, errNotSorted, "false\n"},
		{nil, errUsage, ""},
		{[]string{"shuffle", "1"}, errUsage, ""},
		{[]string{"sort", "-nosuchflag"}, errUsage, ""},
	} {
		got, _, err := runArgs(t, "", test.args...)
		if !xerrors.Is(err, test.want) {
			t.Errorf("run(%q) error = %v, want %v", test.args, err, test.want)
		}
		if got != test.out {
			t.Errorf("run(%q) output = %q, want %q", test.args, got, test.out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	for _, args := range [][]string{
		{"sort", "-algo=heap", "1"},
		{"sort", "1", "two", "3"},
		{"sort", "-type=complex", "1"},
		{"sort", "-log=syslog", "1"},
		{"search", "1", "2"},
		{"search", "-value=x", "1", "2"},
		{"search", "-algo=interpolation", "-value=1", "1"},
		{"partition"},
	} {
		if _, _, err := runArgs(t, "", args...); err == nil {
			t.Errorf("run(%q) succeeded, want error", args)
		}
	}
}

func TestRunLogging(t *testing.T) {
	_, stderr, err := runArgs(t, "", "sort", "-v", "-log=json", "-algo=merge", "3", "1", "2")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"msg":"done"`, `"algo":"merge"`, `"n":3`, `"cmd":"sort"`, `"comparisons":`} {
		if !strings.Contains(stderr, want) {
			t.Errorf("log missing %s:\n%s", want, stderr)
		}
	}

	_, stderr, err = runArgs(t, "", "sort", "-v", "-log=gokit", "-algo=bubble", "2", "1")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"msg":"done"`, `"algo":"bubble"`, `"level":"debug"`} {
		if !strings.Contains(stderr, want) {
			t.Errorf("gokit log missing %s:\n%s", want, stderr)
		}
	}

	_, stderr, err = runArgs(t, "", "search", "-log=zerolog", "-value=3", "3", "1", "2")
	if err != nil && !xerrors.Is(err, errNotFound) {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "not sorted") {
		t.Errorf("no warning for unsorted input:\n%s", stderr)
	}

	_, stderr, err = runArgs(t, "", "sort", "3", "1", "2")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("unexpected log output without -v:\n%s", stderr)
	}
}
