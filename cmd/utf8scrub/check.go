// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/text/transform"

	"github.com/textpipe/text/utf8stream"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "report the first ill-formed UTF-8 sequence of each input",
		ArgsUsage: "[FILE...]",
		Action:    checkAction,
	}
}

func checkAction(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	logger, err := newLogger(cfg.LogLevel, c.App.ErrWriter)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	defer logger.Sync()

	names := c.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}
	invalid := 0
	for _, name := range names {
		ok, err := checkOne(c, cfg, logger, name)
		if err != nil {
			return cli.Exit(err.Error(), exitFailure)
		}
		if !ok {
			invalid++
		}
	}
	if invalid > 0 {
		return cli.Exit("", exitInvalid)
	}
	return nil
}

func checkOne(c *cli.Context, cfg Config, logger *zap.Logger, name string) (bool, error) {
	in, err := openInput(name, cfg.Decompress, c.App.Reader)
	if err != nil {
		return false, err
	}
	defer in.Close()

	n, err := io.Copy(io.Discard, transform.NewReader(in, utf8stream.NewValidator()))
	var bad *utf8stream.Error
	switch {
	case errors.As(err, &bad):
		logger.Info("invalid input",
			zap.String("input", in.name),
			zap.Int64("offset", bad.Offset),
			zap.Int("length", bad.Len))
		fmt.Fprintf(c.App.Writer, "%s: invalid UTF-8 at offset %d\n", in.name, bad.Offset)
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%s: %w", in.name, err)
	}
	logger.Debug("valid input",
		zap.String("input", in.name),
		zap.String("codec", in.codec),
		zap.Int64("bytes", n))
	fmt.Fprintf(c.App.Writer, "%s: ok\n", in.name)
	return true, nil
}
