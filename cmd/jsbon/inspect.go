// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/zeebo/blake3"

	"github.com/Omikhleia/JSBON/lib/jsbon"
)

func runInspect(logger *slog.Logger, args []string) error {
	flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	input := flags.StringP("input", "i", "", "JSBON stream path (default: stdin)")
	digest := flags.Bool("digest", false, "print a BLAKE3 digest of the raw stream")
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

	info, tokens, err := jsbon.Disassemble(raw)
	if err != nil {
		return fmt.Errorf("disassembling %s: %w", path, err)
	}
	logger.Debug("disassembled stream", "bytes", len(raw), "tokens", len(tokens))

	fmt.Printf("version=%d crc32=%t nocycle=%t names=%d values=%d payload@%d\n",
		info.Version, info.HasCRC32, info.NoCycle, len(info.NameTable), len(info.ValueTable), info.PayloadOffset)
	for i, name := range info.NameTable {
		fmt.Printf("  name[%d] = %q\n", i, name)
	}
	for i, value := range info.ValueTable {
		fmt.Printf("  value[%d] = %q\n", i+1, value)
	}
	for _, tok := range tokens {
		if tok.Detail == "" {
			fmt.Printf("%6d  %s\n", tok.Offset, tok.Tag)
			continue
		}
		fmt.Printf("%6d  %-10s %s\n", tok.Offset, tok.Tag, tok.Detail)
	}

	if *digest {
		hasher := blake3.New()
		hasher.Write(raw)
		fmt.Printf("blake3=%x\n", hasher.Sum(nil))
	}

	return nil
}
