// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLossy(t *testing.T) {
	for _, tc := range loadLossyCases(t) {
		if got := LossyString(tc.input); got != tc.want {
			t.Errorf("%s: LossyString: got %q; want %q", tc.name, got, tc.want)
		}
		if got := string(AppendLossy([]byte("<"), tc.input)); got != "<"+tc.want {
			t.Errorf("%s: AppendLossy: got %q; want %q", tc.name, got, "<"+tc.want)
		}
	}
}

func TestLossyBorrowsValidInput(t *testing.T) {
	b := []byte("already valid: €")
	got := Lossy(b)
	if &got[0] != &b[0] || len(got) != len(b) {
		t.Error("Lossy copied well-formed input")
	}
	if allocs := testing.AllocsPerRun(10, func() { Lossy(b) }); allocs != 0 {
		t.Errorf("Lossy allocated %v times on well-formed input", allocs)
	}
	if got := Lossy(nil); len(got) != 0 {
		t.Errorf("Lossy(nil): got %q", got)
	}
}

func TestLossyDecoderPartitions(t *testing.T) {
	for _, tc := range loadLossyCases(t) {
		partitions(tc.input, func(chunks [][]byte) {
			var buf bytes.Buffer
			l := NewLossyDecoder(func(text []byte) error {
				buf.Write(text)
				return nil
			})
			for _, c := range chunks {
				if err := l.Feed(c); err != nil {
					t.Fatalf("%s: Feed: %v", tc.name, err)
				}
			}
			if err := l.Close(); err != nil {
				t.Fatalf("%s: Close: %v", tc.name, err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("%s: %s: got %q; want %q", tc.name, fmtChunks(chunks), got, tc.want)
			}
		})
	}
}

func TestLossyDecoderWithoutClose(t *testing.T) {
	var buf bytes.Buffer
	l := NewLossyDecoder(func(text []byte) error {
		buf.Write(text)
		return nil
	})
	l.Feed([]byte("abc\xF0\x9F"))
	if got, want := buf.String(), "abc"; got != want {
		t.Errorf("before Close: got %q; want %q", got, want)
	}
	l.Close()
	l.Close()
	if got, want := buf.String(), "abc�"; got != want {
		t.Errorf("after Close: got %q; want %q", got, want)
	}
	if err := l.Feed([]byte("x")); err != ErrClosed {
		t.Errorf("Feed after Close: got %v; want %v", err, ErrClosed)
	}
}

func TestLossyDecoderPushError(t *testing.T) {
	errStop := errors.New("stop")
	calls := 0
	l := NewLossyDecoder(func(text []byte) error {
		calls++
		return errStop
	})
	if err := l.Feed([]byte("a\xFFb\xE2")); err != errStop {
		t.Errorf("Feed: got %v; want %v", err, errStop)
	}
	if calls != 1 {
		t.Errorf("push called %d times; want 1", calls)
	}
	// The pending E2 survives the failed push.
	if err := l.Close(); err != errStop {
		t.Errorf("Close: got %v; want %v", err, errStop)
	}
}

func TestLossyWriter(t *testing.T) {
	var buf strings.Builder
	w := NewLossyWriter(&buf)
	for _, s := range []string{"Hel", "lo\xC2", " The", "re\xFF \xE2\x82"} {
		if n, err := w.Write([]byte(s)); n != len(s) || err != nil {
			t.Fatalf("Write(%q) = %d, %v", s, n, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "Hello� There� �"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if _, err := w.Write([]byte("x")); err != ErrClosed {
		t.Errorf("Write after Close: got %v; want %v", err, ErrClosed)
	}
}

// limitWriter accepts max bytes in total and then fails.
type limitWriter struct {
	buf bytes.Buffer
	max int
}

var errFull = errors.New("full")

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.max {
		return 0, errFull
	}
	return w.buf.Write(p)
}

func TestLossyWriterPartialFailure(t *testing.T) {
	lw := &limitWriter{max: 3}
	w := NewLossyWriter(lw)
	// "abc" reaches lw, the U+FFFD that follows does not fit.
	n, err := w.Write([]byte("abc\xFFdef"))
	if n != 0 || err != errFull {
		t.Errorf("Write = %d, %v; want 0, %v", n, err, errFull)
	}
	if got := lw.buf.String(); got != "abc" {
		t.Errorf("underlying writer got %q; want %q", got, "abc")
	}
}
