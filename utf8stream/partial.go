// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import (
	"unicode/utf8"

	"github.com/textpipe/text/internal/utf8class"
)

// partial holds the start of a multi-byte sequence that began in an
// earlier chunk and cannot be decided yet. The zero value is empty.
//
// Every byte in buf[:n] has passed the positional check that applied when
// it was appended.
type partial struct {
	buf   [utf8.UTFMax]byte
	n     uint8
	width uint8
}

// newPartial returns the pending state for p, which must be the
// Incomplete tail reported by Scan.
func newPartial(p []byte) partial {
	var c partial
	c.n = uint8(copy(c.buf[:], p))
	c.width = uint8(utf8class.Width(p[0]))
	return c
}

func (c *partial) len() int { return int(c.n) }

func (c *partial) empty() bool { return c.n == 0 }

// collected returns the bytes collected so far.
func (c *partial) collected() []byte { return c.buf[:c.n] }

type continuation uint8

const (
	stillIncomplete continuation = iota
	completed
	failed
)

// complete resumes validation of the pending sequence with the bytes of
// chunk. It reports how many bytes of chunk were consumed. On completed,
// the code point is left in c.buf[:c.width]; on failed, the ill-formed
// bytes are in c.buf[:c.n]. In both cases the caller must take those bytes
// before calling reset.
func (c *partial) complete(chunk []byte) (res continuation, consumed int) {
	lead := c.buf[0]
	for int(c.n) < int(c.width) {
		if consumed == len(chunk) {
			return stillIncomplete, consumed
		}
		b := chunk[consumed]
		if !utf8class.Accept(lead, int(c.n), b) {
			return failed, consumed
		}
		c.buf[c.n] = b
		c.n++
		consumed++
	}
	return completed, consumed
}

func (c *partial) reset() { *c = partial{} }
