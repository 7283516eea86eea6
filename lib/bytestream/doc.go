// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytestream provides a sequential, position-seekable
// big-endian byte stream: a growable writer and a slice-backed reader,
// both with typed integer and float primitives, NUL-terminated UTF-8
// string read/write, raw byte-array read/write, and a memcpy helper.
//
// bytestream has no knowledge of any wire format. It is a general
// low-level primitive that higher-level codecs (lib/jsbon) build on top
// of; lib/jsbon does all of its byte-level I/O through it, and callers
// of lib/jsbon never need to import bytestream directly.
//
// Reads past the end of the buffer return io.ErrUnexpectedEOF, matching
// the convention encoding/binary itself uses for partial reads.
package bytestream
