// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import (
	"encoding/binary"

	"github.com/textpipe/text/internal/utf8class"
)

// Status classifies what follows the well-formed prefix found by Scan.
type Status uint8

const (
	// OK means the whole buffer is well-formed.
	OK Status = iota

	// Invalid means the prefix is followed by an ill-formed sequence.
	Invalid

	// Incomplete means the buffer ends in the middle of a sequence that
	// may still turn out to be well-formed once more bytes are available.
	Incomplete
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Invalid:
		return "invalid"
	case Incomplete:
		return "incomplete"
	}
	return "unknown"
}

const asciiMask = 0x8080808080808080

// Scan returns the length of the longest well-formed prefix of b and what
// follows it.
//
// If status is Invalid, errLen is the length of the minimal ill-formed
// sequence at b[valid:]; scanning should resume at b[valid+errLen:]. Bytes
// that were confirmed valid for their position count towards errLen, the
// first byte that breaks the pattern does not. If status is Incomplete,
// b[valid:] holds the start of a sequence cut off by the end of b.
func Scan(b []byte) (valid int, status Status, errLen int) {
	n := len(b)
	i := 0
	for i < n {
		// ASCII fast path, eight bytes at a time.
		for i+8 <= n && binary.LittleEndian.Uint64(b[i:])&asciiMask == 0 {
			i += 8
		}
		if i == n {
			break
		}
		lead := b[i]
		if lead < 0x80 {
			i++
			continue
		}
		w := utf8class.Width(lead)
		if w == 0 {
			return i, Invalid, 1
		}
		for k := 1; k < w; k++ {
			if i+k == n {
				return i, Incomplete, 0
			}
			if !utf8class.Accept(lead, k, b[i+k]) {
				return i, Invalid, k
			}
		}
		i += w
	}
	return n, OK, 0
}
