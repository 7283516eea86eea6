// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytestream

import (
	"bytes"
	"testing"
)

func TestWriterPrimitives(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0xAB)
	w.WriteInt8(-1)
	w.WriteUint16(0x1234)
	w.WriteUint32(0xDEADBEEF)
	w.WriteFloat64(1.5)

	want := []byte{0xAB, 0xFF, 0x12, 0x34, 0xDE, 0xAD, 0xBE, 0xEF, 0x3F, 0xF8, 0, 0, 0, 0, 0, 0}
	if got := w.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("Bytes() = % x, want % x", got, want)
	}
}

func TestWriterNulString(t *testing.T) {
	w := NewWriter()
	w.WriteNulString("hi")
	want := []byte{'h', 'i', 0}
	if got := w.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("Bytes() = % x, want % x", got, want)
	}
}

func TestWriterSeekOverwrite(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(0)
	w.WriteRaw([]byte("payload"))
	end := w.Pos()

	w.Seek(0)
	w.WriteUint32(uint32(end - 4))
	w.Seek(end)

	if w.Pos() != end {
		t.Fatalf("Pos() = %d, want %d", w.Pos(), end)
	}
	if w.Len() != end {
		t.Fatalf("Len() = %d, want %d", w.Len(), end)
	}

	r := NewReader(w.Bytes())
	length, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32: %v", err)
	}
	if length != uint32(end-4) {
		t.Fatalf("patched length = %d, want %d", length, end-4)
	}
}

func TestWriterSeekPastEndZeroFills(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(1)
	w.Seek(4)
	w.WriteUint8(2)

	want := []byte{1, 0, 0, 0, 2}
	if got := w.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("Bytes() = % x, want % x", got, want)
	}
}

func TestCopyBytes(t *testing.T) {
	dst := make([]byte, 3)
	n := CopyBytes(dst, []byte{1, 2, 3, 4})
	if n != 3 {
		t.Fatalf("CopyBytes returned %d, want 3", n)
	}
	if !bytes.Equal(dst, []byte{1, 2, 3}) {
		t.Fatalf("dst = %v", dst)
	}
}
