// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbon

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decode/encode error taxonomy. Callers
// should use errors.Is against these; use DecodeError's fields (via
// errors.As) when the offset or tag byte matters.
var (
	// ErrInvalidData means the input was absent, empty, or not a
	// well-formed byte buffer at the point decode begins.
	ErrInvalidData = errors.New("jsbon: invalid data")

	// ErrVersionMismatch means the decoded major version exceeds
	// the version this package understands.
	ErrVersionMismatch = errors.New("jsbon: version mismatch")

	// ErrChecksumMismatch means the stream's header carries a CRC32
	// that does not match the recomputed checksum of the payload.
	ErrChecksumMismatch = errors.New("jsbon: checksum mismatch")

	// ErrUnsupportedType means the encoder was given a value outside
	// the Value universe described in doc.go.
	ErrUnsupportedType = errors.New("jsbon: unsupported type")

	// ErrInvalidCount means the encoder was asked to emit a
	// negative or non-representable count (for example, a slice or
	// map with more than 2^32-1 entries).
	ErrInvalidCount = errors.New("jsbon: invalid count")

	// ErrUnexpectedTag means the decoder read a tag byte that is
	// not legal in the context it appeared.
	ErrUnexpectedTag = errors.New("jsbon: unexpected tag")

	// ErrOutOfBoundsReference means a string/name table index or a
	// by-reference back-edge did not resolve to a known entry.
	ErrOutOfBoundsReference = errors.New("jsbon: out of bounds reference")

	// ErrTruncated means the stream ended before a required field
	// was fully read.
	ErrTruncated = errors.New("jsbon: truncated")
)

// DecodeError carries positional context for a decode-time failure.
// Offset is the byte offset (from the start of the input buffer) at
// which the failing tag or field began; Tag is the tag byte involved,
// when one was read (zero otherwise).
type DecodeError struct {
	Offset int
	Tag    byte
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Tag == 0 {
		return fmt.Sprintf("jsbon: at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("jsbon: at offset %d (tag 0x%02x): %v", e.Offset, e.Tag, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
