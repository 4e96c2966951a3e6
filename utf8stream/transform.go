// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// UTF8 is an Encoding whose decoder replaces ill-formed input with U+FFFD
// and whose encoder fails with an *Error on the first ill-formed sequence.
var UTF8 encoding.Encoding = utf8Encoding{}

type utf8Encoding struct{}

func (utf8Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: NewReplacer()}
}

func (utf8Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: NewValidator()}
}

func (utf8Encoding) String() string { return "UTF-8 (validated)" }

// NewValidator returns a Transformer that copies well-formed UTF-8 and
// returns an *Error, with Offset counted from the last Reset, on the first
// ill-formed sequence. A sequence cut off by the end of src is reported as
// transform.ErrShortSrc unless atEOF is set.
func NewValidator() transform.Transformer {
	return &validator{}
}

type validator struct {
	off int64
}

func (v *validator) Reset() { v.off = 0 }

func (v *validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := len(src)
	if n > len(dst) {
		n, err = len(dst), transform.ErrShortDst
	}
	valid, status, errLen := Scan(src[:n])
	copy(dst, src[:valid])
	switch status {
	case Invalid:
		err = &Error{Offset: v.off + int64(valid), Len: errLen}
	case Incomplete:
		switch {
		case n < len(src):
			// Cut off by the size of dst, not by the end of the input.
		case !atEOF:
			err = transform.ErrShortSrc
		default:
			err = &Error{Offset: v.off + int64(valid)}
		}
	}
	v.off += int64(valid)
	return valid, valid, err
}

// NewReplacer returns a Transformer that copies well-formed UTF-8 and
// writes U+FFFD for each minimal ill-formed sequence. It never returns an
// error other than transform.ErrShortDst and transform.ErrShortSrc.
func NewReplacer() transform.Transformer {
	return replacer{}
}

type replacer struct{ transform.NopResetter }

func (replacer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		valid, status, errLen := Scan(src[nSrc:])
		if room := len(dst) - nDst; valid > room {
			// Copy only whole code points.
			for room > 0 && !utf8.RuneStart(src[nSrc+room]) {
				room--
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+room])
			return nDst, nSrc + room, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+valid])
		nSrc += valid
		switch {
		case status == OK:
			return nDst, nSrc, nil
		case status == Incomplete && !atEOF:
			return nDst, nSrc, transform.ErrShortSrc
		case len(dst)-nDst < len(replacement):
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], replacement)
		if status == Invalid {
			nSrc += errLen
		} else {
			nSrc = len(src)
		}
	}
	return nDst, nSrc, nil
}
