// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbon

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Omikhleia/JSBON/lib/bytestream"
)

// decoder holds the cursor and tables needed to materialize one
// top-level value. refs maps the absolute input offset of a
// container's tag byte (its payload-coordinate position plus offset)
// to the container materialized there, so a later by-reference tag
// resolves to the same Go pointer.
type decoder struct {
	reader *bytestream.Reader
	names  []string
	values []string
	offset int
	refs   map[int]any
}

// Decode parses a JSBON byte stream into a Value tree.
//
// Decode imposes no limit on the raw input size; every count read from
// the stream is still bounded by the bytes remaining in it (see
// DecodeWithLimit). Callers that accept untrusted input should use
// DecodeWithLimit to bound the raw buffer size as well.
func Decode(data []byte) (any, error) {
	return DecodeWithLimit(data, 0)
}

// DecodeWithLimit is Decode with an upper bound on the input size. A
// non-positive maxBytes means no limit. Every count read from the
// stream (table sizes, array lengths, object key counts, byte buffer
// lengths) is additionally bounded by the bytes actually remaining in
// the input, so an adversarial stream cannot claim a length larger
// than the data backing it.
func DecodeWithLimit(data []byte, maxBytes int) (any, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("jsbon: empty input: %w", ErrInvalidData)
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return nil, fmt.Errorf("jsbon: input of %d bytes exceeds limit of %d: %w", len(data), maxBytes, ErrInvalidData)
	}

	r := bytestream.NewReader(data)

	versionByte, err := r.ReadUint8()
	if err != nil {
		return nil, translateErr(r, 0, err)
	}
	version := versionByte & versionMask
	if version > majorVersion {
		return nil, fmt.Errorf("jsbon: stream major version %d: %w", version, ErrVersionMismatch)
	}
	hasCRC := versionByte&optionCRC32 != 0

	var savedCRC uint32
	if hasCRC {
		savedCRC, err = r.ReadUint32()
		if err != nil {
			return nil, translateErr(r, 0, err)
		}
	}

	names, err := readTable(r)
	if err != nil {
		return nil, err
	}
	values, err := readTable(r)
	if err != nil {
		return nil, err
	}

	offset := r.Pos()

	if hasCRC {
		remaining := data[offset:]
		if checksum(remaining) != savedCRC {
			return nil, fmt.Errorf("jsbon: payload of %d bytes: %w", len(remaining), ErrChecksumMismatch)
		}
	}

	dec := &decoder{
		reader: r,
		names:  names,
		values: values,
		offset: offset,
		refs:   make(map[int]any),
	}
	return dec.readValue()
}

func readTable(r *bytestream.Reader) ([]string, error) {
	count, err := readVarint(r)
	if err != nil {
		return nil, translateErr(r, 0, err)
	}
	if err := guardCount(count, r.Remaining()); err != nil {
		return nil, err
	}
	entries := make([]string, count)
	for i := range entries {
		entries[i], err = r.ReadNulString()
		if err != nil {
			return nil, translateErr(r, 0, err)
		}
	}
	return entries, nil
}

// guardCount rejects a length that could not possibly be backed by
// the bytes remaining in the input, the hard upper bound spec.md §5
// requires decoders to impose against adversarial counts.
func guardCount(count uint32, remaining int) error {
	if uint64(count) > uint64(remaining) {
		return fmt.Errorf("jsbon: count %d exceeds %d remaining input bytes: %w", count, remaining, ErrInvalidData)
	}
	return nil
}

func translateErr(r *bytestream.Reader, tag byte, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return &DecodeError{Offset: r.Pos(), Tag: tag, Err: ErrTruncated}
	}
	return err
}

func (d *decoder) readValue() (any, error) {
	tagPos := d.reader.Pos()
	tag, err := d.reader.ReadUint8()
	if err != nil {
		return nil, translateErr(d.reader, 0, err)
	}

	switch tag {
	case tagFalse:
		return false, nil
	case tagTrue:
		return true, nil
	case tagNull:
		return nil, nil
	case tagUndefined:
		return UndefinedValue, nil

	case tagInt8:
		v, err := d.reader.ReadInt8()
		if err != nil {
			return nil, translateErr(d.reader, tag, err)
		}
		return int64(v), nil
	case tagInt16:
		v, err := d.reader.ReadInt16()
		if err != nil {
			return nil, translateErr(d.reader, tag, err)
		}
		return int64(v), nil
	case tagInt32:
		v, err := d.reader.ReadInt32()
		if err != nil {
			return nil, translateErr(d.reader, tag, err)
		}
		return int64(v), nil

	case tagUint8:
		v, err := d.reader.ReadUint8()
		if err != nil {
			return nil, translateErr(d.reader, tag, err)
		}
		return int64(v), nil
	case tagUint16:
		v, err := d.reader.ReadUint16()
		if err != nil {
			return nil, translateErr(d.reader, tag, err)
		}
		return int64(v), nil
	case tagUint32:
		v, err := d.reader.ReadUint32()
		if err != nil {
			return nil, translateErr(d.reader, tag, err)
		}
		return int64(v), nil

	case tagNumber:
		v, err := d.reader.ReadFloat64()
		if err != nil {
			return nil, translateErr(d.reader, tag, err)
		}
		return v, nil

	case tagString:
		return d.readString(tagPos)

	case tagDate:
		v, err := d.reader.ReadFloat64()
		if err != nil {
			return nil, translateErr(d.reader, tag, err)
		}
		return time.UnixMilli(int64(v)).UTC(), nil

	case tagBytes:
		return d.readBytes(tagPos)

	case tagObject:
		return d.readObject(tagPos)

	case tagArray:
		return d.readArray(tagPos)

	case tagReference:
		return d.readReference(tagPos)

	default:
		return nil, &DecodeError{Offset: tagPos, Tag: tag, Err: ErrUnexpectedTag}
	}
}

func (d *decoder) readString(tagPos int) (any, error) {
	idx, err := readVarint(d.reader)
	if err != nil {
		return nil, translateErr(d.reader, tagString, err)
	}
	if idx == 0 {
		return "", nil
	}
	if int(idx-1) >= len(d.values) {
		return nil, &DecodeError{Offset: tagPos, Tag: tagString, Err: ErrOutOfBoundsReference}
	}
	return d.values[idx-1], nil
}

func (d *decoder) readBytes(tagPos int) (any, error) {
	length, err := readVarint(d.reader)
	if err != nil {
		return nil, translateErr(d.reader, tagBytes, err)
	}
	if err := guardCount(length, d.reader.Remaining()); err != nil {
		return nil, err
	}
	raw, err := d.reader.ReadBytes(int(length))
	if err != nil {
		return nil, translateErr(d.reader, tagBytes, err)
	}
	return Bytes(raw), nil
}

// readObject and readArray always register the freshly allocated,
// still-empty container in refs before reading its body — even when
// the stream's NOCYCLE bit is set — because Testable Property 4
// requires forward references created by shared-but-acyclic
// duplicates to still resolve, not merely self-references inside
// actual cycles. See DESIGN.md.
func (d *decoder) readObject(tagPos int) (any, error) {
	obj := NewObject()
	d.refs[tagPos] = obj

	count, err := readVarint(d.reader)
	if err != nil {
		return nil, translateErr(d.reader, tagObject, err)
	}
	if err := guardCount(count, d.reader.Remaining()); err != nil {
		return nil, err
	}
	for i := uint32(0); i < count; i++ {
		nameIdx, err := readVarint(d.reader)
		if err != nil {
			return nil, translateErr(d.reader, tagObject, err)
		}
		if int(nameIdx) >= len(d.names) {
			return nil, &DecodeError{Offset: tagPos, Tag: tagObject, Err: ErrOutOfBoundsReference}
		}
		value, err := d.readValue()
		if err != nil {
			return nil, err
		}
		obj.Set(d.names[nameIdx], value)
	}
	return obj, nil
}

func (d *decoder) readArray(tagPos int) (any, error) {
	arr := &Array{}
	d.refs[tagPos] = arr

	count, err := readVarint(d.reader)
	if err != nil {
		return nil, translateErr(d.reader, tagArray, err)
	}
	if err := guardCount(count, d.reader.Remaining()); err != nil {
		return nil, err
	}
	arr.Items = make([]any, count)
	for i := uint32(0); i < count; i++ {
		value, err := d.readValue()
		if err != nil {
			return nil, err
		}
		arr.Items[i] = value
	}
	return arr, nil
}

func (d *decoder) readReference(tagPos int) (any, error) {
	rel, err := readVarint(d.reader)
	if err != nil {
		return nil, translateErr(d.reader, tagReference, err)
	}
	target := d.offset + int(rel)
	value, ok := d.refs[target]
	if !ok {
		return nil, &DecodeError{Offset: tagPos, Tag: tagReference, Err: ErrOutOfBoundsReference}
	}
	return value, nil
}
