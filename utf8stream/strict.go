// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import (
	"fmt"

	"golang.org/x/text/encoding"
)

// Error describes the first ill-formed sequence of an input.
//
// Error unwraps to encoding.ErrInvalidUTF8.
type Error struct {
	// Offset is the length of the well-formed prefix, that is, the index
	// of the first byte that is not part of valid UTF-8.
	Offset int64

	// Len is the length of the minimal ill-formed sequence at Offset, or 0
	// if the input ended in the middle of a sequence.
	Len int
}

func (e *Error) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("utf8stream: incomplete UTF-8 sequence at offset %d", e.Offset)
	}
	return fmt.Sprintf("utf8stream: invalid UTF-8 sequence of %d bytes at offset %d", e.Len, e.Offset)
}

func (e *Error) Unwrap() error { return encoding.ErrInvalidUTF8 }

// Valid reports whether b is entirely well-formed UTF-8.
func Valid(b []byte) bool {
	_, status, _ := Scan(b)
	return status == OK
}

// Validate returns nil if b is well-formed and an *Error otherwise.
func Validate(b []byte) error {
	valid, status, errLen := Scan(b)
	if status == OK {
		return nil
	}
	return &Error{Offset: int64(valid), Len: errLen}
}

// ToString returns b as a string if it is well-formed.
func ToString(b []byte) (string, error) {
	if err := Validate(b); err != nil {
		return "", err
	}
	return string(b), nil
}
