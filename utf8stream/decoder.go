// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import "iter"

// A Decoder decodes a stream of chunks into Pieces. Its only state across
// calls is a pending sequence of at most three bytes that started in an
// earlier chunk. The zero value is ready to use.
//
// A Decoder must not be used concurrently. The Pieces returned by Feed must
// be drained before Feed or End is called again; doing otherwise panics.
//
// After the last chunk, callers must call End to learn whether the stream
// stopped in the middle of a sequence.
type Decoder struct {
	pending partial
	pieces  Pieces
	busy    bool
}

// Feed starts decoding chunk. The returned Pieces borrows both d and chunk
// and is valid until it has been drained.
func (d *Decoder) Feed(chunk []byte) *Pieces {
	d.checkIdle("Feed")
	d.busy = true
	d.pieces = Pieces{
		d:      d,
		rest:   chunk,
		resume: !d.pending.empty(),
	}
	return &d.pieces
}

// End signals the end of the stream. If a sequence is still pending it is
// now known to be ill-formed: the pending state is cleared and an
// InvalidPiece holding its bytes is returned.
func (d *Decoder) End() (Piece, bool) {
	d.checkIdle("End")
	if d.pending.empty() {
		return Piece{}, false
	}
	p := ownedPiece(InvalidPiece, d.pending.collected())
	d.pending.reset()
	return p, true
}

// Pending returns the number of bytes held for an unfinished sequence.
func (d *Decoder) Pending() int { return d.pending.len() }

// Reset discards any pending state. It may be called at any time; an
// undrained Pieces from an earlier Feed becomes empty.
func (d *Decoder) Reset() {
	d.pending.reset()
	d.pieces = Pieces{done: true}
	d.busy = false
}

func (d *Decoder) checkIdle(op string) {
	if d.busy {
		panic("utf8stream: Decoder." + op + " called before the previous Pieces was drained")
	}
}

// Pieces is the sequence of pieces produced by one call to Feed.
//
// Typical use:
//
//	p := d.Feed(chunk)
//	for p.Next() {
//		use(p.Piece())
//	}
type Pieces struct {
	d    *Decoder
	rest []byte
	cur  Piece

	// queued holds an InvalidPiece found by the same scan as cur.
	queued    Piece
	hasQueued bool

	resume bool
	done   bool
}

// Next advances to the next piece and reports whether there is one.
func (p *Pieces) Next() bool {
	if p.done {
		return false
	}
	if p.hasQueued {
		p.cur, p.queued, p.hasQueued = p.queued, Piece{}, false
		return true
	}
	d := p.d
	if p.resume {
		p.resume = false
		res, n := d.pending.complete(p.rest)
		p.rest = p.rest[n:]
		switch res {
		case completed:
			p.cur = ownedPiece(CodePointPiece, d.pending.collected())
			d.pending.reset()
			return true
		case failed:
			p.cur = ownedPiece(InvalidPiece, d.pending.collected())
			d.pending.reset()
			return true
		}
		// Still incomplete: the whole chunk went into the pending state.
	}
	for len(p.rest) > 0 {
		valid, status, errLen := Scan(p.rest)
		text := Piece{kind: TextPiece, b: p.rest[:valid]}
		switch status {
		case OK:
			p.rest = nil
			p.cur = text
			return true
		case Invalid:
			bad := Piece{kind: InvalidPiece, b: p.rest[valid : valid+errLen]}
			p.rest = p.rest[valid+errLen:]
			if valid == 0 {
				p.cur = bad
			} else {
				p.cur, p.queued, p.hasQueued = text, bad, true
			}
			return true
		case Incomplete:
			d.pending = newPartial(p.rest[valid:])
			p.rest = nil
			if valid > 0 {
				p.cur = text
				return true
			}
		}
	}
	p.finish()
	return false
}

// Piece returns the current piece. It is only valid after Next returned
// true.
func (p *Pieces) Piece() Piece { return p.cur }

// Drain consumes the remaining pieces, keeping the decoder's pending state
// consistent.
func (p *Pieces) Drain() {
	for p.Next() {
	}
}

// All returns an iterator over the remaining pieces. If the loop body stops
// early, the rest of the sequence is drained and discarded.
func (p *Pieces) All() iter.Seq[Piece] {
	return func(yield func(Piece) bool) {
		for p.Next() {
			if !yield(p.cur) {
				p.Drain()
				return
			}
		}
	}
}

// Lossy returns an iterator over the remaining pieces' text with every
// InvalidPiece replaced by U+FFFD. The yielded slices must not be modified.
func (p *Pieces) Lossy() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for p.Next() {
			if !yield(p.cur.Lossy()) {
				p.Drain()
				return
			}
		}
	}
}

func (p *Pieces) finish() {
	p.done = true
	p.cur = Piece{}
	if p.d != nil {
		p.d.busy = false
	}
}
