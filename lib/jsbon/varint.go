// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbon

import "github.com/Omikhleia/JSBON/lib/bytestream"

// writeVarint writes value as a base-128 little-endian varint: each
// byte holds 7 value bits plus a continuation bit (high bit set means
// "more bytes follow"). Any uint32 encodes to 1-5 bytes.
func writeVarint(w *bytestream.Writer, value uint32) {
	for value >= 0x80 {
		w.WriteUint8(byte(value) | 0x80)
		value >>= 7
	}
	w.WriteUint8(byte(value))
}

// readVarint reads a base-128 little-endian varint written by
// writeVarint. A stream that carries a continuation bit on the fifth
// byte is malformed: no valid uint32 needs a sixth byte.
func readVarint(r *bytestream.Reader) (uint32, error) {
	var result uint32
	var shift uint
	for i := 0; i < maxVarintBytes; i++ {
		b, err := r.ReadUint8()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
	return 0, ErrInvalidData
}
