// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbon

import "hash/crc32"

// crcTable is the standard reflected IEEE 802.3 polynomial table.
// hash/crc32's IEEE table, combined with crc32.Checksum's seed/final
// XOR of 0xFFFFFFFF, is bit-for-bit the algorithm spec.md §4.4
// describes — there is no third-party library in the retrieved corpus
// that reimplements plain CRC32 differently or faster in a way that
// matters here, so this one file stays on the standard library (see
// DESIGN.md).
var crcTable = crc32.MakeTable(crc32.IEEE)

// checksum computes the CRC32 of data using the wire format's
// algorithm: payload bytes only, never the header or tables.
func checksum(data []byte) uint32 {
	return crc32.Checksum(data, crcTable)
}
