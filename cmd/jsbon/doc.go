// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command jsbon is a CLI front-end for the lib/jsbon codec: encode a
// JSON/JSONC/YAML document to a JSBON byte stream, decode a JSBON
// stream back to JSON, disassemble a stream tag-by-tag for debugging,
// and structurally diff two decoded documents.
package main
