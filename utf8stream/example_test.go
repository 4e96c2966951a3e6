// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8stream_test

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/transform"

	"github.com/textpipe/text/utf8stream"
)

func ExampleDecoder() {
	var d utf8stream.Decoder
	for _, chunk := range []string{"caf\xC3", "\xA9 \xFF!", "\xF0\x9F"} {
		p := d.Feed([]byte(chunk))
		for p.Next() {
			piece := p.Piece()
			fmt.Printf("%-9s %q\n", piece.Kind(), piece.Bytes())
		}
	}
	if piece, ok := d.End(); ok {
		fmt.Printf("%-9s %q\n", piece.Kind(), piece.Bytes())
	}
	// Output:
	// text      "caf"
	// codepoint "é"
	// text      " "
	// invalid   "\xff"
	// text      "!"
	// invalid   "\xf0\x9f"
}

func ExampleLossyWriter() {
	w := utf8stream.NewLossyWriter(os.Stdout)
	io.WriteString(w, "Hello\xC0\x80 There\xE2\x82")
	w.Close()
	fmt.Println()
	// Output:
	// Hello�� There�
}

func ExampleValidate() {
	err := utf8stream.Validate([]byte("ab\xE6\x83 cd"))
	fmt.Println(err)
	// Output:
	// utf8stream: invalid UTF-8 sequence of 2 bytes at offset 2
}

func ExampleNewReplacer() {
	r := transform.NewReader(strings.NewReader("\xED\xA0\x80foo"), utf8stream.NewReplacer())
	b, _ := io.ReadAll(r)
	fmt.Println(string(b))
	// Output:
	// ���foo
}
