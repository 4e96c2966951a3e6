// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This program generates tables.go from the lead byte rules of RFC 3629.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
)

var output = flag.String("output", "tables.go", "output file")

func width(b int) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC2:
		// Continuation bytes and the overlong-only leads C0 and C1.
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF5:
		return 4
	}
	return 0
}

func main() {
	flag.Parse()

	w := &bytes.Buffer{}
	fmt.Fprintln(w, `// Code generated by running "go generate" in github.com/textpipe/text/internal/utf8class. DO NOT EDIT.`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "package utf8class")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// widths maps a lead byte to the length of the sequence it starts, or 0 if")
	fmt.Fprintln(w, "// the byte can never start a well-formed sequence.")
	fmt.Fprintln(w, "var widths = [256]uint8{")
	fmt.Fprintln(w, "\t//   0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F")
	for row := 0; row < 256; row += 16 {
		fmt.Fprintf(w, "\t0x%02X:", row)
		for b := row; b < row+16; b++ {
			fmt.Fprintf(w, " %d,", width(b))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "}")

	src, err := format.Source(w.Bytes())
	if err != nil {
		log.Fatalf("format: %v", err)
	}
	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
}
