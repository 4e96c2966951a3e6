// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf8stream validates and repairs UTF-8 incrementally, one chunk
// of a byte stream at a time, without copying well-formed bytes.
//
// Everything is built on two primitives: Scan, which finds the longest
// well-formed prefix of a single buffer, and the pending state of a
// Decoder, which pieces together a code point whose bytes are split across
// chunks. The result does not depend on how the stream is chunked.
//
// Ill-formed input is reported one minimal sequence at a time, following
// the "maximal subpart" practice of the Unicode Standard: "\xE6\x83 " is
// one error followed by a space, while "\xED\xA0\x80" (an encoded
// surrogate) is three errors. Lossy decoding substitutes one U+FFFD for
// each error.
//
// The package offers several shapes of the same decoder:
//
//   - Decoder and Pieces: pull, piece by piece, with explicit End.
//   - LossyDecoder and LossyWriter: push, with Close ending the stream.
//   - Lossy, Valid, Validate and ToString: whole buffers.
//   - NewValidator, NewReplacer and UTF8: golang.org/x/text transformers.
//   - BufReader: pieces read from a bufio.Reader.
//
// None of the types are safe for concurrent use.
package utf8stream
