// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytestream

import "math"

// Writer is a growable, position-seekable big-endian byte buffer.
// Writes past the current end grow the buffer; writes before the
// current end overwrite in place without truncating what follows.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterSize returns an empty writer with the given initial
// capacity, to avoid reallocation when the final size is known in
// advance.
func NewWriterSize(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Len returns the total number of bytes written so far, including any
// bytes skipped over by a Seek past the end.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Pos returns the current write cursor.
func (w *Writer) Pos() int {
	return w.pos
}

// Seek repositions the write cursor. Seeking past the current end
// does not itself extend the buffer; the gap is zero-filled lazily by
// the next write that needs it.
func (w *Writer) Seek(pos int) {
	w.pos = pos
}

// Bytes returns the underlying buffer. The caller must not retain it
// across further writes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) grow(n int) {
	need := w.pos + n
	if need > len(w.buf) {
		w.buf = append(w.buf, make([]byte, need-len(w.buf))...)
	}
}

// WriteUint8 writes a single byte at the cursor.
func (w *Writer) WriteUint8(v uint8) {
	w.grow(1)
	w.buf[w.pos] = v
	w.pos++
}

// WriteInt8 writes a signed byte at the cursor.
func (w *Writer) WriteInt8(v int8) {
	w.WriteUint8(uint8(v))
}

// WriteUint16 writes a big-endian uint16 at the cursor.
func (w *Writer) WriteUint16(v uint16) {
	w.grow(2)
	w.buf[w.pos] = byte(v >> 8)
	w.buf[w.pos+1] = byte(v)
	w.pos += 2
}

// WriteInt16 writes a big-endian int16 at the cursor.
func (w *Writer) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

// WriteUint32 writes a big-endian uint32 at the cursor.
func (w *Writer) WriteUint32(v uint32) {
	w.grow(4)
	w.buf[w.pos] = byte(v >> 24)
	w.buf[w.pos+1] = byte(v >> 16)
	w.buf[w.pos+2] = byte(v >> 8)
	w.buf[w.pos+3] = byte(v)
	w.pos += 4
}

// WriteInt32 writes a big-endian int32 at the cursor.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteUint64 writes a big-endian uint64 at the cursor.
func (w *Writer) WriteUint64(v uint64) {
	w.grow(8)
	for i := 0; i < 8; i++ {
		w.buf[w.pos+i] = byte(v >> uint(56-8*i))
	}
	w.pos += 8
}

// WriteFloat64 writes a big-endian IEEE-754 double at the cursor.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteNulString writes s as UTF-8 bytes followed by a single NUL
// terminator.
func (w *Writer) WriteNulString(s string) {
	w.grow(len(s) + 1)
	copy(w.buf[w.pos:], s)
	w.buf[w.pos+len(s)] = 0
	w.pos += len(s) + 1
}

// WriteRaw appends data verbatim with no length prefix.
func (w *Writer) WriteRaw(data []byte) {
	w.grow(len(data))
	CopyBytes(w.buf[w.pos:], data)
	w.pos += len(data)
}

// CopyBytes copies min(len(dst), len(src)) bytes from src into dst
// and returns the number of bytes copied. It exists as a named
// primitive because the byte-stream contract calls out a memcpy
// helper distinct from ad hoc use of the builtin.
func CopyBytes(dst, src []byte) int {
	return copy(dst, src)
}
