// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Finding is one ill-formed sequence found while repairing an input.
type Finding struct {
	Offset int64  `json:"offset" msgpack:"offset"`
	Length int    `json:"length" msgpack:"length"`
	Raw    string `json:"raw" msgpack:"raw"` // hex
}

// Report summarizes the repair of one input.
type Report struct {
	Input    string    `json:"input" msgpack:"input"`
	Codec    string    `json:"codec" msgpack:"codec"`
	Bytes    int64     `json:"bytes" msgpack:"bytes"`
	Invalid  int       `json:"invalid" msgpack:"invalid"`
	Findings []Finding `json:"findings" msgpack:"findings"`
}

func (r *Report) add(offset int64, raw []byte) {
	r.Invalid++
	r.Findings = append(r.Findings, Finding{
		Offset: offset,
		Length: len(raw),
		Raw:    hex.EncodeToString(raw),
	})
}

func writeReport(w io.Writer, format string, reports []Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(reports)
	}
	return fmt.Errorf("unknown report format %q", format)
}
