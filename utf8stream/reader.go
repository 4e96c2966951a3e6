// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import (
	"bufio"
	"io"
)

// BufReader decodes the bytes of a buffered reader. Text pieces alias the
// reader's buffer, so each piece is only valid until the next call to Next
// or NextLossy. The reader decides how many buffered bytes to consume; bytes
// of a sequence that spans a buffer refill are moved into a small pending
// state instead of being re-read.
type BufReader struct {
	br *bufio.Reader

	// consumed is the number of bytes of the last peeked buffer to discard
	// before the next fill.
	consumed int

	pending    partial
	pendingOff int64

	off      int64 // stream offset of the first unconsumed byte
	pieceOff int64
}

// NewBufReader returns a BufReader reading from r. If r is already a
// *bufio.Reader it is used directly.
func NewBufReader(r io.Reader) *BufReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &BufReader{br: br}
}

// NewBufReaderSize is like NewBufReader but always wraps r in a
// bufio.Reader with a buffer of at least size bytes.
func NewBufReaderSize(r io.Reader, size int) *BufReader {
	return &BufReader{br: bufio.NewReaderSize(r, size)}
}

// Offset returns the stream offset of the first byte of the piece most
// recently returned by Next. For a piece completed from a pending sequence
// this is the offset of its lead byte.
func (r *BufReader) Offset() int64 { return r.pieceOff }

// fill discards the consumed bytes and returns the buffered bytes, reading
// more if none are buffered. It returns an empty slice at the end of the
// stream.
func (r *BufReader) fill() ([]byte, error) {
	if r.consumed > 0 {
		// consumed never exceeds what the last Peek returned, so Discard
		// is satisfied from the buffer and cannot fail.
		n, _ := r.br.Discard(r.consumed)
		r.off += int64(n)
		r.consumed = 0
	}
	if r.br.Buffered() == 0 {
		if _, err := r.br.Peek(1); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
	}
	return r.br.Peek(r.br.Buffered())
}

// Next returns the next piece of the stream. At the end of the stream it
// returns io.EOF; a sequence left unfinished by the end of the stream is
// returned as a final InvalidPiece first. Other errors come from the
// underlying reader.
func (r *BufReader) Next() (Piece, error) {
	for {
		buf, err := r.fill()
		if err != nil {
			return Piece{}, err
		}
		if r.pending.empty() {
			if len(buf) == 0 {
				return Piece{}, io.EOF
			}
			r.pieceOff = r.off
			valid, status, errLen := Scan(buf)
			switch {
			case valid > 0:
				r.consumed = valid
				return Piece{kind: TextPiece, b: buf[:valid]}, nil
			case status == Invalid:
				r.consumed = errLen
				return Piece{kind: InvalidPiece, b: buf[:errLen]}, nil
			}
			// The buffer starts with an unfinished sequence.
			r.pending = newPartial(buf)
			r.pendingOff = r.off
			r.consumed = len(buf)
			continue
		}
		var p Piece
		if len(buf) == 0 {
			p = ownedPiece(InvalidPiece, r.pending.collected())
		} else {
			res, n := r.pending.complete(buf)
			r.consumed = n
			switch res {
			case stillIncomplete:
				continue
			case completed:
				p = ownedPiece(CodePointPiece, r.pending.collected())
			case failed:
				p = ownedPiece(InvalidPiece, r.pending.collected())
			}
		}
		r.pieceOff = r.pendingOff
		r.pending.reset()
		return p, nil
	}
}

// NextLossy is like Next but returns the piece's text, with U+FFFD for an
// ill-formed sequence. The returned slice must not be modified.
func (r *BufReader) NextLossy() ([]byte, error) {
	p, err := r.Next()
	if err != nil {
		return nil, err
	}
	return p.Lossy(), nil
}

// WriteTo writes the lossy decoding of the rest of the stream to w.
func (r *BufReader) WriteTo(w io.Writer) (n int64, err error) {
	for {
		text, err := r.NextLossy()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		m, err := w.Write(text)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
}
