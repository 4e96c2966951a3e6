// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import (
	"errors"
	"io"
	"unicode/utf8"
)

// ReplacementChar is substituted for every ill-formed sequence in lossy
// decoding.
const ReplacementChar = string(utf8.RuneError)

var replacement = []byte(ReplacementChar)

// ErrClosed is returned by Feed and Write after Close.
var ErrClosed = errors.New("utf8stream: decoder closed")

// Lossy returns b with every ill-formed sequence replaced by U+FFFD. If b is
// already well-formed, b itself is returned and nothing is allocated.
func Lossy(b []byte) []byte {
	valid, status, _ := Scan(b)
	if status == OK {
		return b
	}
	dst := make([]byte, valid, len(b)+len(replacement))
	copy(dst, b[:valid])
	return AppendLossy(dst, b[valid:])
}

// LossyString is like Lossy but returns a string.
func LossyString(b []byte) string {
	return string(Lossy(b))
}

// AppendLossy appends the lossy decoding of the complete input b to dst.
func AppendLossy(dst, b []byte) []byte {
	var d Decoder
	for text := range d.Feed(b).Lossy() {
		dst = append(dst, text...)
	}
	if _, ok := d.End(); ok {
		dst = append(dst, replacement...)
	}
	return dst
}

// A LossyDecoder pushes the lossy decoding of the chunks fed to it into a
// callback.
//
// Close must be called after the last chunk. It is the only point at which
// a stream cut off in the middle of a sequence is reported: if Close is
// skipped, that truncated sequence is silently dropped.
type LossyDecoder struct {
	d      Decoder
	push   func(text []byte) error
	closed bool
}

// NewLossyDecoder returns a LossyDecoder that calls push once per piece of
// output. The text passed to push is only valid for the duration of the call
// and must not be modified. A non-nil error from push is returned by the
// Feed or Close call that triggered it.
func NewLossyDecoder(push func(text []byte) error) *LossyDecoder {
	return &LossyDecoder{push: push}
}

// Feed decodes one chunk. A sequence split between this chunk and earlier
// ones is pieced back together.
func (l *LossyDecoder) Feed(chunk []byte) error {
	if l.closed {
		return ErrClosed
	}
	p := l.d.Feed(chunk)
	for p.Next() {
		if err := l.push(p.Piece().Lossy()); err != nil {
			p.Drain()
			return err
		}
	}
	return nil
}

// Close ends the stream, pushing a final U+FFFD if the input stopped in the
// middle of a sequence. Calling Close more than once is a no-op.
func (l *LossyDecoder) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	if _, ok := l.d.End(); ok {
		return l.push(replacement)
	}
	return nil
}

// A LossyWriter writes the lossy decoding of everything written to it to an
// underlying writer. As with LossyDecoder, Close must be called to flush a
// truncated trailing sequence as U+FFFD. Close does not close the
// underlying writer.
type LossyWriter struct {
	w io.Writer
	l LossyDecoder
}

// NewLossyWriter returns a LossyWriter writing to w.
func NewLossyWriter(w io.Writer) *LossyWriter {
	lw := &LossyWriter{w: w}
	lw.l.push = lw.write
	return lw
}

func (w *LossyWriter) write(text []byte) error {
	_, err := w.w.Write(text)
	return err
}

// Write implements io.Writer. It reports len(p) on success and 0 when the
// underlying writer fails, even if part of p was already written to it.
func (w *LossyWriter) Write(p []byte) (int, error) {
	if err := w.l.Feed(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close implements io.Closer.
func (w *LossyWriter) Close() error {
	return w.l.Close()
}
