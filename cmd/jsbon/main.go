// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	command, rest := args[0], args[1:]
	var err error
	switch command {
	case "encode":
		err = runEncode(logger, rest)
	case "decode":
		err = runDecode(logger, rest)
	case "inspect":
		err = runInspect(logger, rest)
	case "diff":
		err = runDiff(logger, rest)
	case "-h", "--help", "help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", command)
		printUsage()
		return 2
	}

	if err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: jsbon <command> [flags]

commands:
  encode   convert a JSON/JSONC/YAML document to a JSBON byte stream
  decode   convert a JSBON byte stream to JSON
  inspect  disassemble a JSBON stream tag-by-tag
  diff     structurally diff two decoded JSBON/JSON documents`)
}
