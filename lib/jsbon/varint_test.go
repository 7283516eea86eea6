// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbon

import (
	"testing"

	"github.com/Omikhleia/JSBON/lib/bytestream"
)

func TestVarintRoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 0x7F, 0x80, 0x3FFF, 0x4000, 0xFFFFFFFF, 1 << 28, 123456789}
	for _, c := range cases {
		w := bytestream.NewWriter()
		writeVarint(w, c)
		r := bytestream.NewReader(w.Bytes())
		got, err := readVarint(r)
		if err != nil {
			t.Fatalf("readVarint(%d): %v", c, err)
		}
		if got != c {
			t.Fatalf("readVarint roundtrip = %d, want %d", got, c)
		}
		if r.Remaining() != 0 {
			t.Fatalf("readVarint(%d) left %d trailing bytes", c, r.Remaining())
		}
	}
}

func TestVarintByteLength(t *testing.T) {
	cases := []struct {
		value uint32
		bytes int
	}{
		{0, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x3FFF, 2},
		{0x4000, 3},
		{0xFFFFFFFF, 5},
	}
	for _, c := range cases {
		w := bytestream.NewWriter()
		writeVarint(w, c.value)
		if w.Len() != c.bytes {
			t.Errorf("writeVarint(%d) wrote %d bytes, want %d", c.value, w.Len(), c.bytes)
		}
	}
}

func TestVarintMalformedSixthByte(t *testing.T) {
	// Five bytes, each with the continuation bit set: no valid
	// uint32 needs a sixth byte, so this must be rejected.
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	r := bytestream.NewReader(data)
	if _, err := readVarint(r); err == nil {
		t.Fatal("readVarint should reject a fifth byte that still carries a continuation bit")
	}
}
