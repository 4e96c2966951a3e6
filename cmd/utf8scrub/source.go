// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// input is an opened, possibly decompressed, byte stream.
type input struct {
	name   string
	codec  string
	r      io.Reader
	closer []io.Closer
}

func (in *input) Read(p []byte) (int, error) { return in.r.Read(p) }

func (in *input) Close() error {
	var first error
	for i := len(in.closer) - 1; i >= 0; i-- {
		if err := in.closer[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openInput opens the named file, or standard input for "" and "-", and
// decompresses it according to mode.
func openInput(name, mode string, stdin io.Reader) (*input, error) {
	in := &input{name: name, codec: "none"}
	if name == "" || name == "-" {
		in.name = "-"
		in.r = stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		in.r = f
		in.closer = append(in.closer, f)
	}

	if mode == "auto" {
		br := bufio.NewReader(in.r)
		head, _ := br.Peek(len(zstdMagic))
		switch {
		case bytes.HasPrefix(head, gzipMagic):
			mode = "gzip"
		case bytes.HasPrefix(head, zstdMagic):
			mode = "zstd"
		default:
			mode = "none"
		}
		in.r = br
	}

	switch mode {
	case "gzip":
		zr, err := gzip.NewReader(in.r)
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("%s: gzip: %w", in.name, err)
		}
		in.r = zr
		in.closer = append(in.closer, zr)
	case "zstd":
		zr, err := zstd.NewReader(in.r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("%s: zstd: %w", in.name, err)
		}
		in.r = zr
		in.closer = append(in.closer, zr.IOReadCloser())
	}
	in.codec = mode
	return in, nil
}
