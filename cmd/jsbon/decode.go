// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/Omikhleia/JSBON/internal/jsbonjson"
	"github.com/Omikhleia/JSBON/lib/jsbon"
)

func runDecode(logger *slog.Logger, args []string) error {
	flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	input := flags.StringP("input", "i", "", "JSBON stream path (default: stdin)")
	output := flags.StringP("output", "o", "", "decoded document path (default: stdout)")
	format := flags.String("format", "json", "output format: json, yaml")
	maxBytes := flags.Int("max-input-bytes", 0, "reject streams larger than this many bytes (0: no limit)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	path := *input
	if path == "" {
		path = "/dev/stdin"
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if isZstdFrame(raw) {
		raw, err = zstdDecompress(raw)
		if err != nil {
			return fmt.Errorf("decompressing %s: %w", path, err)
		}
	}

	value, err := jsbon.DecodeWithLimit(raw, *maxBytes)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	logger.Debug("decoded stream", "bytes", len(raw))

	asJSON, err := jsbonjson.ToJSON(value)
	if err != nil {
		return fmt.Errorf("converting decoded document to %s: %w", *format, err)
	}

	var rendered []byte
	switch *format {
	case "json":
		rendered, err = json.MarshalIndent(asJSON, "", "  ")
	case "yaml":
		rendered, err = yaml.Marshal(asJSON)
	default:
		return fmt.Errorf("unknown output format %q", *format)
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", *format, err)
	}
	if *format == "json" {
		rendered = append(rendered, '\n')
	}

	return writeOutput(*output, rendered)
}
