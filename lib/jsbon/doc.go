// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsbon implements the JSBON wire format: a compact,
// self-describing binary codec for structured values that preserves
// primitive types, dates, raw byte buffers, nested containers, and —
// critically — shared and cyclic object identity across a round trip.
//
// # Value universe
//
// Encode accepts nil, Undefined, bool, any Go integer or float type,
// string, time.Time, Bytes ([]byte), *Array, and *Object. Anything
// else fails with ErrUnsupportedType, unless it implements PlainMapper,
// in which case its JSBONPlain projection is encoded instead.
//
// Decode returns the same universe: nil for JSBON null, Undefined for
// JSBON undefined, bool, int64 for the narrow integer tags, float64
// for the double tag, string, time.Time for dates, Bytes for raw byte
// buffers, and *Array / *Object for containers. Two occurrences of the
// same container in the input graph decode to the same *Array or
// *Object pointer, and cycles in the input decode to cyclic Go
// structures.
//
// # Framing
//
//	stream  := header tables payload
//	header  := version_byte [ crc32 ]
//	tables  := varint(n) name{n} varint(m) strval{m}
//	payload := value
//
// The payload is built first so the interning tables are complete
// before they are written; the assembled stream prepends header and
// tables to the payload. Reference bodies are varint offsets added to
// the decoder's payload-start offset, recovering the tag-byte position
// at which the referenced container was first emitted.
//
// Encode and Decode are pure, single-threaded, and allocate their own
// working state; there is nothing to share or synchronize across
// concurrent calls.
package jsbon
