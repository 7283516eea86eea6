// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/pflag"

	"github.com/Omikhleia/JSBON/lib/jsbon"
)

func runEncode(logger *slog.Logger, args []string) error {
	flags := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	input := flags.StringP("input", "i", "", "input document path (default: stdin)")
	output := flags.StringP("output", "o", "", "output stream path (default: stdout)")
	format := flags.String("format", "", "input format: json, jsonc, yaml (default: by extension)")
	crc := flags.Bool("crc", false, "append a CRC32 checksum to the header")
	compress := flags.Bool("compress", false, "zstd-compress the encoded stream")
	if err := flags.Parse(args); err != nil {
		return err
	}

	path := *input
	if path == "" {
		path = "/dev/stdin"
	}
	effectiveFormat := detectFormat(*format, path)
	value, err := readDocument(path, effectiveFormat)
	if err != nil {
		return err
	}

	stream, err := jsbon.Encode(value, jsbon.EncodeOptions{CRC32: *crc})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	logger.Debug("encoded document", "format", effectiveFormat, "bytes", len(stream), "crc32", *crc)

	if *compress {
		stream, err = zstdCompress(stream)
		if err != nil {
			return fmt.Errorf("compressing: %w", err)
		}
	}

	return writeOutput(*output, stream)
}

func zstdCompress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

func zstdDecompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// isZstdFrame reports whether data begins with the zstd magic number, so
// decode can transparently accept either a raw or a --compress'd stream.
func isZstdFrame(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0x28 && data[1] == 0xb5 && data[2] == 0x2f && data[3] == 0xfd
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
