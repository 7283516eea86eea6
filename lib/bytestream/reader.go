// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytestream

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// Reader is a position-seekable cursor over a fixed byte slice. It
// does not copy the slice; callers that need to retain data past the
// backing buffer's lifetime should copy it themselves (see ReadBytes,
// which does copy on the caller's behalf).
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current read cursor.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total length of the backing buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Seek repositions the read cursor to an absolute offset.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("bytestream: seek to %d out of range [0,%d]", pos, len(r.data))
	}
	r.pos = pos
	return nil
}

func (r *Reader) require(n int) error {
	if r.Remaining() < n {
		return io.ErrUnexpectedEOF
	}
	return nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadInt8 reads a signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a big-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := uint16(r.data[r.pos])<<8 | uint16(r.data[r.pos+1])
	r.pos += 2
	return v, nil
}

// ReadInt16 reads a big-endian int16.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := uint32(r.data[r.pos])<<24 | uint32(r.data[r.pos+1])<<16 |
		uint32(r.data[r.pos+2])<<8 | uint32(r.data[r.pos+3])
	r.pos += 4
	return v, nil
}

// ReadInt32 reads a big-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a big-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(r.data[r.pos+i])
	}
	r.pos += 8
	return v, nil
}

// ReadFloat64 reads a big-endian IEEE-754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	bits, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// ReadNulString reads UTF-8 bytes up to and including the next NUL
// terminator, returning the string without the terminator.
func (r *Reader) ReadNulString() (string, error) {
	idx := bytes.IndexByte(r.data[r.pos:], 0)
	if idx < 0 {
		return "", io.ErrUnexpectedEOF
	}
	s := string(r.data[r.pos : r.pos+idx])
	r.pos += idx + 1
	return s, nil
}

// ReadBytes reads and copies the next n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("bytestream: negative read length %d", n)
	}
	if err := r.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	CopyBytes(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}
