// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbon

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/Omikhleia/JSBON/lib/bytestream"
)

// EncodeOptions controls optional Encode behavior. Unknown zero
// values always mean "off"; future fields must default the same way
// so existing callers are unaffected.
type EncodeOptions struct {
	// CRC32, if true, appends a CRC32 checksum of the payload to the
	// header and sets the CRC32 option bit.
	CRC32 bool
}

// encoder walks a Value graph once, emitting payload bytes and
// populating the name and value intern tables. positions maps a
// container's identity to the payload offset of its tag byte, the
// moment it is first seen; open marks containers still being written,
// which is what distinguishes an actual cycle (a reference to an
// ancestor still open on the walk) from a merely shared, acyclic
// duplicate (a reference to an already-closed sibling).
type encoder struct {
	payload *bytestream.Writer

	names    map[string]uint32
	nameList []string

	values    map[string]uint32
	valueList []string

	positions map[any]int
	open      map[any]bool
	hasCycle  bool
}

// Encode serializes value into a fresh JSBON byte stream.
func Encode(value any, opts EncodeOptions) ([]byte, error) {
	enc := &encoder{
		payload:   bytestream.NewWriter(),
		names:     make(map[string]uint32),
		values:    make(map[string]uint32),
		positions: make(map[any]int),
		open:      make(map[any]bool),
	}
	if err := enc.writeValue(value); err != nil {
		return nil, err
	}
	return enc.assemble(opts), nil
}

func (e *encoder) writeValue(value any) error {
	switch v := value.(type) {
	case nil:
		e.payload.WriteUint8(tagNull)
		return nil
	case Undefined:
		e.payload.WriteUint8(tagUndefined)
		return nil
	case bool:
		if v {
			e.payload.WriteUint8(tagTrue)
		} else {
			e.payload.WriteUint8(tagFalse)
		}
		return nil
	case string:
		return e.writeString(v)
	case time.Time:
		return e.writeDate(v)
	case Bytes:
		return e.writeBytes(v)
	case []byte:
		return e.writeBytes(Bytes(v))
	case float32:
		return e.writeNumber(float64(v))
	case float64:
		return e.writeNumber(v)
	case int:
		return e.writeNumber(float64(v))
	case int8:
		return e.writeNumber(float64(v))
	case int16:
		return e.writeNumber(float64(v))
	case int32:
		return e.writeNumber(float64(v))
	case int64:
		return e.writeNumber(float64(v))
	case uint:
		return e.writeNumber(float64(v))
	case uint8:
		return e.writeNumber(float64(v))
	case uint16:
		return e.writeNumber(float64(v))
	case uint32:
		return e.writeNumber(float64(v))
	case uint64:
		return e.writeNumber(float64(v))
	case *Array:
		return e.writeArray(v)
	case *Object:
		return e.writeObject(v)
	case PlainMapper:
		return e.writeObject(v.JSBONPlain())
	default:
		return fmt.Errorf("jsbon: encoding %T: %w", value, ErrUnsupportedType)
	}
}

// writeNumber implements the narrowest-tag discipline of spec.md
// §4.1: integers in [-128,127] get INT8, [-32768,32767] get INT16,
// the rest of the signed-32 range gets INT32, and everything else
// (non-integers, and integers outside signed-32 range) falls through
// to the f64 NUMBER tag.
func (e *encoder) writeNumber(n float64) error {
	if !math.IsInf(n, 0) && !math.IsNaN(n) && n == math.Trunc(n) &&
		n >= math.MinInt32 && n <= math.MaxInt32 {
		i := int64(n)
		switch {
		case i >= -128 && i <= 127:
			e.payload.WriteUint8(tagInt8)
			e.payload.WriteInt8(int8(i))
			return nil
		case i >= -32768 && i <= 32767:
			e.payload.WriteUint8(tagInt16)
			e.payload.WriteInt16(int16(i))
			return nil
		default:
			e.payload.WriteUint8(tagInt32)
			e.payload.WriteInt32(int32(i))
			return nil
		}
	}
	e.payload.WriteUint8(tagNumber)
	e.payload.WriteFloat64(n)
	return nil
}

func (e *encoder) writeString(s string) error {
	// Interned strings are stored NUL-terminated (spec.md's `strval :=
	// utf8_bytes 0x00`), so a string carrying an embedded NUL cannot
	// be represented on the wire: it would be silently truncated on
	// decode. This is a wire-format limitation, not a bug, and mirrors
	// why the name table has the same restriction below.
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("jsbon: string contains embedded NUL byte: %w", ErrUnsupportedType)
	}
	e.payload.WriteUint8(tagString)
	if s == "" {
		writeVarint(e.payload, 0)
		return nil
	}
	idx, ok := e.values[s]
	if !ok {
		e.valueList = append(e.valueList, s)
		idx = uint32(len(e.valueList))
		e.values[s] = idx
	}
	writeVarint(e.payload, idx)
	return nil
}

func (e *encoder) writeDate(t time.Time) error {
	e.payload.WriteUint8(tagDate)
	e.payload.WriteFloat64(float64(t.UnixMilli()))
	return nil
}

func (e *encoder) writeBytes(b Bytes) error {
	if len(b) > math.MaxUint32 {
		return fmt.Errorf("jsbon: byte buffer length %d: %w", len(b), ErrInvalidCount)
	}
	e.payload.WriteUint8(tagBytes)
	writeVarint(e.payload, uint32(len(b)))
	e.payload.WriteRaw(b)
	return nil
}

// emitContainer handles the shared identity bookkeeping for Array and
// Object: register at the tag-byte position on first sight, emit a
// back-reference on every subsequent sight, and distinguish a true
// cycle (reference to a still-open ancestor) from mere sharing
// (reference to an already-closed sibling) so hasCycle — and
// therefore the NOCYCLE header bit — reflects actual cyclicity rather
// than simple deduplication. See DESIGN.md for why this reading of
// the NOCYCLE bit was chosen over a literal "any back-edge" latch.
func (e *encoder) emitContainer(identity any, tag byte, writeBody func() error) error {
	if pos, seen := e.positions[identity]; seen {
		if e.open[identity] {
			e.hasCycle = true
		}
		e.payload.WriteUint8(tagReference)
		writeVarint(e.payload, uint32(pos))
		return nil
	}
	pos := e.payload.Len()
	e.positions[identity] = pos
	e.open[identity] = true
	e.payload.WriteUint8(tag)
	err := writeBody()
	delete(e.open, identity)
	return err
}

func (e *encoder) writeArray(a *Array) error {
	if a == nil {
		e.payload.WriteUint8(tagNull)
		return nil
	}
	return e.emitContainer(a, tagArray, func() error {
		if len(a.Items) > math.MaxUint32 {
			return fmt.Errorf("jsbon: array length %d: %w", len(a.Items), ErrInvalidCount)
		}
		writeVarint(e.payload, uint32(len(a.Items)))
		for _, item := range a.Items {
			if err := e.writeValue(item); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *encoder) writeObject(o *Object) error {
	if o == nil {
		e.payload.WriteUint8(tagNull)
		return nil
	}
	return e.emitContainer(o, tagObject, func() error {
		keys := make([]string, 0, o.Len())
		o.Range(func(key string, value any) bool {
			if isFunction(value) {
				return true
			}
			keys = append(keys, key)
			return true
		})
		if len(keys) > math.MaxUint32 {
			return fmt.Errorf("jsbon: object key count %d: %w", len(keys), ErrInvalidCount)
		}
		writeVarint(e.payload, uint32(len(keys)))
		for _, key := range keys {
			if strings.IndexByte(key, 0) >= 0 {
				return fmt.Errorf("jsbon: object key contains embedded NUL byte: %w", ErrUnsupportedType)
			}
			value, _ := o.Get(key)
			idx := e.internName(key)
			writeVarint(e.payload, idx)
			if err := e.writeValue(value); err != nil {
				return err
			}
		}
		return nil
	})
}

func isFunction(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}

// internName assigns the next 0-based name-table index on first
// sight of a key. Lookup is keyed by the NFC normal form so that two
// spellings of the same key that differ only in Unicode
// normalization share one table slot; the bytes actually stored are
// whichever spelling was seen first, so single-occurrence keys always
// round-trip byte-exact.
func (e *encoder) internName(name string) uint32 {
	normalized := norm.NFC.String(name)
	if idx, ok := e.names[normalized]; ok {
		return idx
	}
	idx := uint32(len(e.nameList))
	e.nameList = append(e.nameList, name)
	e.names[normalized] = idx
	return idx
}

func (e *encoder) assemble(opts EncodeOptions) []byte {
	header := bytestream.NewWriter()

	versionByte := majorVersion
	if !e.hasCycle {
		versionByte |= optionNoCycle
	}
	if opts.CRC32 {
		versionByte |= optionCRC32
	}
	header.WriteUint8(versionByte)

	payloadBytes := e.payload.Bytes()
	if opts.CRC32 {
		header.WriteUint32(checksum(payloadBytes))
	}

	writeVarint(header, uint32(len(e.nameList)))
	for _, name := range e.nameList {
		header.WriteNulString(name)
	}

	writeVarint(header, uint32(len(e.valueList)))
	for _, value := range e.valueList {
		header.WriteNulString(value)
	}

	out := make([]byte, 0, header.Len()+len(payloadBytes))
	out = append(out, header.Bytes()...)
	out = append(out, payloadBytes...)
	return out
}
