// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbon

// Tag byte values. These are wire-format constants; changing any of
// them breaks compatibility with every existing JSBON stream.
const (
	tagFalse     byte = 0x00
	tagTrue      byte = 0x01
	tagInt8      byte = 0x02
	tagInt16     byte = 0x03
	tagInt32     byte = 0x04
	tagNull      byte = 0x05
	tagUndefined byte = 0x06
	tagReference byte = 0x07
	tagNumber    byte = 0x09

	// Unsigned integer tags. The encoder in this package never
	// emits them; the decoder accepts them for compatibility with
	// extended producers, per spec.
	tagUint8  byte = 0x12
	tagUint16 byte = 0x13
	tagUint32 byte = 0x14

	tagString byte = 0x16
	tagDate   byte = 0x20
	tagObject byte = 0x30
	tagArray  byte = 0x31
	tagBytes  byte = 0x32
)

// Header byte layout: low nibble is the major version, high nibble
// carries option flags.
const (
	majorVersion   byte = 1
	versionMask    byte = 0x0F
	optionNoCycle  byte = 0x40
	optionCRC32    byte = 0x80
)

// maxVarintBytes bounds the varint reader: 5 bytes cover the full
// 32-bit count space (5*7 = 35 bits), so a sixth continuation byte is
// always malformed input, never a legitimately large count.
const maxVarintBytes = 5
