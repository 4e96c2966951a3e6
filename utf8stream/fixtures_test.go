// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import (
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

type lossyCase struct {
	name  string
	input []byte
	want  string
}

// loadLossyCases reads testdata/lossy.txtar. Each file in the archive holds
// a quoted input line and a quoted expected-output line.
func loadLossyCases(t *testing.T) []lossyCase {
	t.Helper()
	a, err := txtar.ParseFile("testdata/lossy.txtar")
	if err != nil {
		t.Fatal(err)
	}
	var cases []lossyCase
	for _, f := range a.Files {
		lines := strings.Split(strings.TrimSpace(string(f.Data)), "\n")
		if len(lines) != 2 {
			t.Fatalf("%s: got %d lines; want 2", f.Name, len(lines))
		}
		in, err := strconv.Unquote(lines[0])
		if err != nil {
			t.Fatalf("%s: input: %v", f.Name, err)
		}
		want, err := strconv.Unquote(lines[1])
		if err != nil {
			t.Fatalf("%s: expected: %v", f.Name, err)
		}
		cases = append(cases, lossyCase{f.Name, []byte(in), want})
	}
	if len(cases) == 0 {
		t.Fatal("no fixtures")
	}
	return cases
}

// partitions calls f with every way of splitting b into non-empty chunks.
// Inputs longer than maxExhaustive bytes are split at every single point and
// into single bytes only.
func partitions(b []byte, f func(chunks [][]byte)) {
	const maxExhaustive = 16
	if len(b) == 0 {
		f(nil)
		return
	}
	if len(b) > maxExhaustive {
		f([][]byte{b})
		for i := 1; i < len(b); i++ {
			f([][]byte{b[:i], b[i:]})
		}
		single := make([][]byte, len(b))
		for i := range b {
			single[i] = b[i : i+1]
		}
		f(single)
		return
	}
	for mask := 0; mask < 1<<(len(b)-1); mask++ {
		var chunks [][]byte
		start := 0
		for i := 0; i < len(b)-1; i++ {
			if mask&(1<<i) != 0 {
				chunks = append(chunks, b[start:i+1])
				start = i + 1
			}
		}
		chunks = append(chunks, b[start:])
		f(chunks)
	}
}

func fmtChunks(chunks [][]byte) string {
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = strconv.Quote(string(c))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
