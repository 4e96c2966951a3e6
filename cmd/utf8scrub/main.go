// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Utf8scrub checks and repairs UTF-8 byte streams.
//
// Usage:
//
//	utf8scrub [global options] check [FILE...]
//	utf8scrub [global options] repair [options] [FILE...]
//
// With no FILE, or when FILE is -, standard input is read. Compressed input
// (gzip, zstd) is decompressed transparently unless --decompress=none.
//
// Exit codes:
//   - 0: all inputs are valid (check) or were repaired (repair)
//   - 1: check found ill-formed UTF-8
//   - 2: usage, configuration or I/O error
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	exitInvalid = 1
	exitFailure = 2
)

func main() {
	app := newApp()
	app.ExitErrHandler = exitErrHandler
	if err := app.Run(os.Args); err != nil {
		os.Exit(exitFailure)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "utf8scrub",
		Usage: "check and repair UTF-8 byte streams",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"UTF8SCRUB_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "decompress",
				Usage: "auto, none, gzip or zstd",
			},
		},
		Commands: []*cli.Command{
			checkCommand(),
			repairCommand(),
		},
	}
}

// exitErrHandler preserves exit codes from cli.Exit and maps any other
// error to exitFailure.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		if msg := exitCoder.Error(); msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}
	fmt.Fprintf(os.Stderr, "utf8scrub: %v\n", err)
	os.Exit(exitFailure)
}
