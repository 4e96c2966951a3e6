// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run gen.go

// Package utf8class classifies bytes by the role they may play in a
// well-formed UTF-8 sequence as defined by RFC 3629.
//
// The predicates in this package are the entire conformance surface of the
// decoder: they reject overlong forms, surrogate code points and values
// beyond U+10FFFF. Everything else is sequencing around them.
package utf8class

// Width reports the total length of the sequence started by lead: 1 for
// ASCII, 2, 3 or 4 for a multi-byte lead, and 0 for bytes that can never
// start a sequence (continuation bytes, C0, C1 and F5 through FF).
func Width(lead byte) int {
	return int(widths[lead])
}

// IsContinuation reports whether b has the bit pattern 10xxxxxx.
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// SecondOK3 reports whether b may follow lead in a three-byte sequence.
func SecondOK3(lead, b byte) bool {
	switch lead {
	case 0xE0:
		return 0xA0 <= b && b <= 0xBF // overlong
	case 0xED:
		return 0x80 <= b && b <= 0x9F // surrogates
	}
	return 0x80 <= b && b <= 0xBF
}

// SecondOK4 reports whether b may follow lead in a four-byte sequence.
func SecondOK4(lead, b byte) bool {
	switch lead {
	case 0xF0:
		return 0x90 <= b && b <= 0xBF // overlong
	case 0xF4:
		return 0x80 <= b && b <= 0x8F // above U+10FFFF
	}
	return 0x80 <= b && b <= 0xBF
}

// Accept reports whether b is acceptable at position pos (counting from 0,
// the lead) of the sequence started by lead. The lead must have a width of
// at least 2 and pos must be in [1, Width(lead)).
func Accept(lead byte, pos int, b byte) bool {
	if pos > 1 {
		return IsContinuation(b)
	}
	switch widths[lead] {
	case 3:
		return SecondOK3(lead, b)
	case 4:
		return SecondOK4(lead, b)
	}
	return IsContinuation(b)
}
