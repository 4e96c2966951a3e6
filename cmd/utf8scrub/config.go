// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by all commands. Values from the
// configuration file are overridden by command-line flags.
type Config struct {
	LogLevel     string `yaml:"log_level"`
	Decompress   string `yaml:"decompress"`
	ChunkSize    int    `yaml:"chunk_size"`
	ReportFormat string `yaml:"report_format"`
}

const minChunkSize = 16 // smallest bufio.Reader buffer

func defaultConfig() Config {
	return Config{
		LogLevel:     "info",
		Decompress:   "auto",
		ChunkSize:    64 << 10,
		ReportFormat: "json",
	}
}

// loadConfig reads a YAML file, expanding ${VAR} references from the
// environment, on top of the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, fmt.Errorf("cannot read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return cfg, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.Decompress {
	case "auto", "none", "gzip", "zstd":
	default:
		return fmt.Errorf("unknown decompression mode %q", c.Decompress)
	}
	switch c.ReportFormat {
	case "json", "msgpack":
	default:
		return fmt.Errorf("unknown report format %q", c.ReportFormat)
	}
	if c.ChunkSize < minChunkSize {
		return fmt.Errorf("chunk size %d is below the minimum of %d", c.ChunkSize, minChunkSize)
	}
	return nil
}

// resolveConfig builds the effective configuration for a command.
func resolveConfig(c *cli.Context) (Config, error) {
	cfg := defaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = loadConfig(path); err != nil {
			return cfg, err
		}
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("decompress") {
		cfg.Decompress = c.String("decompress")
	}
	if c.IsSet("chunk-size") {
		cfg.ChunkSize = c.Int("chunk-size")
	}
	if c.IsSet("report-format") {
		cfg.ReportFormat = c.String("report-format")
	}
	return cfg, cfg.validate()
}
