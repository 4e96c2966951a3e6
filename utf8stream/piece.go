// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream

import "unicode/utf8"

// PieceKind tells what a Piece denotes.
type PieceKind uint8

const (
	// TextPiece is a well-formed run borrowed from the current input chunk.
	TextPiece PieceKind = iota

	// CodePointPiece is a single code point whose encoding spanned a chunk
	// boundary. Its bytes are owned by the piece.
	CodePointPiece

	// InvalidPiece marks a minimal ill-formed sequence. It denotes no text.
	InvalidPiece
)

func (k PieceKind) String() string {
	switch k {
	case TextPiece:
		return "text"
	case CodePointPiece:
		return "codepoint"
	case InvalidPiece:
		return "invalid"
	}
	return "unknown"
}

// Piece is one unit of decoder output.
type Piece struct {
	kind PieceKind
	b    []byte
}

// Kind returns the kind of p.
func (p Piece) Kind() PieceKind { return p.kind }

// Bytes returns the raw bytes covered by p. For a TextPiece the slice
// aliases the input chunk; for an InvalidPiece it holds the offending bytes.
func (p Piece) Bytes() []byte { return p.b }

// Text returns the well-formed text denoted by p, or nil for an
// InvalidPiece.
func (p Piece) Text() []byte {
	if p.kind == InvalidPiece {
		return nil
	}
	return p.b
}

// Lossy returns the text denoted by p with an InvalidPiece mapped to the
// UTF-8 encoding of U+FFFD. The returned slice must not be modified.
func (p Piece) Lossy() []byte {
	if p.kind == InvalidPiece {
		return replacement
	}
	return p.b
}

// AppendLossy appends the lossy text of p to dst.
func (p Piece) AppendLossy(dst []byte) []byte {
	return append(dst, p.Lossy()...)
}

// Rune returns the code point of a CodePointPiece and utf8.RuneError for
// any other kind.
func (p Piece) Rune() rune {
	if p.kind != CodePointPiece {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(p.b)
	return r
}

// String returns the lossy text of p.
func (p Piece) String() string {
	return string(p.Lossy())
}

func ownedPiece(kind PieceKind, b []byte) Piece {
	return Piece{kind: kind, b: append([]byte(nil), b...)}
}
