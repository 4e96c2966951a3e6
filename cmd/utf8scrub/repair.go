// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/textpipe/text/utf8stream"
)

func repairCommand() *cli.Command {
	return &cli.Command{
		Name:      "repair",
		Usage:     "copy inputs to the output, replacing ill-formed UTF-8 with U+FFFD",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write repaired text to `FILE` instead of standard output",
			},
			&cli.IntFlag{
				Name:  "chunk-size",
				Usage: "read buffer size in bytes",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "write a report of every ill-formed sequence to `FILE`",
			},
			&cli.StringFlag{
				Name:  "report-format",
				Usage: "json or msgpack",
			},
		},
		Action: repairAction,
	}
}

func repairAction(c *cli.Context) (err error) {
	cfg, err := resolveConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	logger, err := newLogger(cfg.LogLevel, c.App.ErrWriter)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	defer logger.Sync()

	out := c.App.Writer
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(err.Error(), exitFailure)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cli.Exit(cerr.Error(), exitFailure)
			}
		}()
		out = f
	}
	bw := bufio.NewWriterSize(out, cfg.ChunkSize)

	names := c.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}
	var reports []Report
	for _, name := range names {
		rep, err := repairOne(c.App.Reader, bw, cfg, name)
		if err != nil {
			return cli.Exit(err.Error(), exitFailure)
		}
		logger.Info("repaired input",
			zap.String("input", rep.Input),
			zap.String("codec", rep.Codec),
			zap.Int64("bytes", rep.Bytes),
			zap.Int("invalid", rep.Invalid))
		reports = append(reports, rep)
	}
	if err := bw.Flush(); err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}

	if path := c.String("report"); path != "" {
		if err := saveReport(path, cfg.ReportFormat, reports); err != nil {
			return cli.Exit(err.Error(), exitFailure)
		}
	}
	return nil
}

// repairOne copies the lossy decoding of one input to w.
func repairOne(stdin io.Reader, w io.Writer, cfg Config, name string) (Report, error) {
	in, err := openInput(name, cfg.Decompress, stdin)
	if err != nil {
		return Report{}, err
	}
	defer in.Close()

	rep := Report{Input: in.name, Codec: in.codec}
	r := utf8stream.NewBufReaderSize(in, cfg.ChunkSize)
	for {
		p, err := r.Next()
		if err == io.EOF {
			return rep, nil
		}
		if err != nil {
			return rep, fmt.Errorf("%s: %w", in.name, err)
		}
		rep.Bytes += int64(len(p.Bytes()))
		if p.Kind() == utf8stream.InvalidPiece {
			rep.add(r.Offset(), p.Bytes())
		}
		if _, err := w.Write(p.Lossy()); err != nil {
			return rep, err
		}
	}
}

func saveReport(path, format string, reports []Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeReport(f, format, reports); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
