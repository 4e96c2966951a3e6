// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

func TestReplacer(t *testing.T) {
	for _, tc := range loadLossyCases(t) {
		got, n, err := transform.String(NewReplacer(), string(tc.input))
		if err != nil || n != len(tc.input) || got != tc.want {
			t.Errorf("%s: String: got %q, %d, %v; want %q, %d, nil", tc.name, got, n, err, tc.want, len(tc.input))
		}

		r := transform.NewReader(iotest.OneByteReader(bytes.NewReader(tc.input)), NewReplacer())
		b, err := io.ReadAll(r)
		if err != nil || string(b) != tc.want {
			t.Errorf("%s: one-byte Reader: got %q, %v; want %q", tc.name, b, err, tc.want)
		}

		dec := UTF8.NewDecoder()
		if got, err := dec.Bytes(tc.input); err != nil || string(got) != tc.want {
			t.Errorf("%s: UTF8 decoder: got %q, %v; want %q", tc.name, got, err, tc.want)
		}
	}
}

// TestReplacerShortDst drives Transform by hand with every small
// destination size and checks that progress is made in whole code points.
func TestReplacerShortDst(t *testing.T) {
	for _, tc := range loadLossyCases(t) {
		for size := utf8.UTFMax; size <= 8; size++ {
			var out bytes.Buffer
			src := tc.input
			dst := make([]byte, size)
			tr := NewReplacer()
			for {
				nDst, nSrc, err := tr.Transform(dst, src, true)
				out.Write(dst[:nDst])
				src = src[nSrc:]
				if err == nil {
					break
				}
				if err != transform.ErrShortDst || (nDst == 0 && nSrc == 0) {
					t.Fatalf("%s: size %d: unexpected %v after %q", tc.name, size, err, out.String())
				}
			}
			if got := out.String(); got != tc.want {
				t.Errorf("%s: size %d: got %q; want %q", tc.name, size, got, tc.want)
			}
		}
	}
}

func TestReplacerShortSrc(t *testing.T) {
	dst := make([]byte, 16)
	nDst, nSrc, err := NewReplacer().Transform(dst, []byte("ab\xF0\x90"), false)
	if nDst != 2 || nSrc != 2 || err != transform.ErrShortSrc {
		t.Errorf("got %d, %d, %v; want 2, 2, %v", nDst, nSrc, err, transform.ErrShortSrc)
	}
}

func TestValidator(t *testing.T) {
	testCases := []struct {
		in     string
		offset int64
		length int
	}{
		{"hello", -1, 0},
		{"", -1, 0},
		{"Hello\xC2 There", 5, 1},
		{strings.Repeat("é", 3000) + "\xED\xA0\x80", 6000, 1},
		{"\xE6\x83 Goodbye", 0, 2},
		{"ok\xF0\x90\x80", 2, 0},
	}
	for _, tc := range testCases {
		for _, oneByte := range []bool{false, true} {
			var src io.Reader = strings.NewReader(tc.in)
			if oneByte {
				src = iotest.OneByteReader(src)
			}
			b, err := io.ReadAll(transform.NewReader(src, NewValidator()))
			if tc.offset < 0 {
				if err != nil || string(b) != tc.in {
					t.Errorf("%q: got %q, %v; want input, nil", tc.in, b, err)
				}
				continue
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Errorf("%q (one byte %v): got %v; want *Error", tc.in, oneByte, err)
				continue
			}
			if e.Offset != tc.offset || e.Len != tc.length {
				t.Errorf("%q (one byte %v): got offset %d len %d; want %d, %d",
					tc.in, oneByte, e.Offset, e.Len, tc.offset, tc.length)
			}
			if int64(len(b)) != tc.offset {
				t.Errorf("%q (one byte %v): got %d bytes of output; want %d", tc.in, oneByte, len(b), tc.offset)
			}
		}
	}
}

func TestValidatorReset(t *testing.T) {
	v := NewValidator()
	dst := make([]byte, 8)
	v.Transform(dst, []byte("abcd"), false)
	v.Reset()
	_, _, err := v.Transform(dst, []byte("\xFF"), true)
	var e *Error
	if !errors.As(err, &e) || e.Offset != 0 {
		t.Errorf("after Reset: got %v; want offset 0", err)
	}
}

func TestUTF8Encoder(t *testing.T) {
	enc := UTF8.NewEncoder()
	if _, err := enc.String("x\xC0\x80"); err == nil {
		t.Error("encoder accepted an overlong sequence")
	}
	if got, err := enc.String("Việt Nam"); err != nil || got != "Việt Nam" {
		t.Errorf("got %q, %v", got, err)
	}
}
