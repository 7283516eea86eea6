// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbon

import (
	"fmt"
	"time"

	"github.com/Omikhleia/JSBON/lib/bytestream"
)

// Token is one tag-byte step of a disassembled stream, as produced by
// Disassemble. It never holds a *Array/*Object: containers are reported
// as a header token (their tag, offset, and declared count) followed by
// their children's own tokens, which is what makes the trace useful for
// debugging wire-format problems instead of just re-deriving Decode's
// result.
type Token struct {
	Offset int
	Tag    string
	Detail string
}

// StreamInfo summarizes the header fields of a disassembled stream.
type StreamInfo struct {
	Version   byte
	HasCRC32  bool
	NoCycle   bool
	NameTable []string
	ValueTable []string
	PayloadOffset int
}

// Disassemble walks a JSBON stream and returns one Token per tag byte,
// plus one KEY token per object property, in stream order, without building the Value tree Decode would. It is
// a read-only debugging aid over the same primitives Decode uses and
// never mutates or validates beyond what is needed to keep walking.
func Disassemble(data []byte) (StreamInfo, []Token, error) {
	var info StreamInfo
	if len(data) == 0 {
		return info, nil, fmt.Errorf("jsbon: empty input: %w", ErrInvalidData)
	}

	r := bytestream.NewReader(data)
	versionByte, err := r.ReadUint8()
	if err != nil {
		return info, nil, translateErr(r, 0, err)
	}
	info.Version = versionByte & versionMask
	info.HasCRC32 = versionByte&optionCRC32 != 0
	info.NoCycle = versionByte&optionNoCycle != 0

	if info.HasCRC32 {
		if _, err := r.ReadUint32(); err != nil {
			return info, nil, translateErr(r, 0, err)
		}
	}

	info.NameTable, err = readTable(r)
	if err != nil {
		return info, nil, err
	}
	info.ValueTable, err = readTable(r)
	if err != nil {
		return info, nil, err
	}
	info.PayloadOffset = r.Pos()

	d := &disassembler{reader: r, names: info.NameTable, values: info.ValueTable, offset: info.PayloadOffset}
	tokens, err := d.walk()
	return info, tokens, err
}

type disassembler struct {
	reader *bytestream.Reader
	names  []string
	values []string
	offset int
}

func (d *disassembler) walk() ([]Token, error) {
	var tokens []Token
	if err := d.walkValue(&tokens); err != nil {
		return tokens, err
	}
	return tokens, nil
}

func (d *disassembler) walkValue(tokens *[]Token) error {
	tagPos := d.reader.Pos()
	tag, err := d.reader.ReadUint8()
	if err != nil {
		return translateErr(d.reader, 0, err)
	}

	mnemonic, ok := tagMnemonics[tag]
	if !ok {
		return &DecodeError{Offset: tagPos, Tag: tag, Err: ErrUnexpectedTag}
	}

	switch tag {
	case tagFalse, tagTrue, tagNull, tagUndefined:
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic})
		return nil

	case tagInt8:
		v, err := d.reader.ReadInt8()
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%d", v)})
		return nil
	case tagInt16:
		v, err := d.reader.ReadInt16()
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%d", v)})
		return nil
	case tagInt32:
		v, err := d.reader.ReadInt32()
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%d", v)})
		return nil
	case tagUint8:
		v, err := d.reader.ReadUint8()
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%d", v)})
		return nil
	case tagUint16:
		v, err := d.reader.ReadUint16()
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%d", v)})
		return nil
	case tagUint32:
		v, err := d.reader.ReadUint32()
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%d", v)})
		return nil

	case tagNumber:
		v, err := d.reader.ReadFloat64()
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%g", v)})
		return nil

	case tagDate:
		v, err := d.reader.ReadFloat64()
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: time.UnixMilli(int64(v)).UTC().Format(time.RFC3339Nano)})
		return nil

	case tagString:
		idx, err := readVarint(d.reader)
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		if idx == 0 {
			*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: `""`})
			return nil
		}
		if int(idx-1) >= len(d.values) {
			return &DecodeError{Offset: tagPos, Tag: tag, Err: ErrOutOfBoundsReference}
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%q", d.values[idx-1])})
		return nil

	case tagBytes:
		length, err := readVarint(d.reader)
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		if err := guardCount(length, d.reader.Remaining()); err != nil {
			return err
		}
		if _, err := d.reader.ReadBytes(int(length)); err != nil {
			return translateErr(d.reader, tag, err)
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%d bytes", length)})
		return nil

	case tagReference:
		rel, err := readVarint(d.reader)
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("-> #%d", d.offset+int(rel))})
		return nil

	case tagObject:
		count, err := readVarint(d.reader)
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		if err := guardCount(count, d.reader.Remaining()); err != nil {
			return err
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%d keys", count)})
		for i := uint32(0); i < count; i++ {
			nameIdx, err := readVarint(d.reader)
			if err != nil {
				return translateErr(d.reader, tag, err)
			}
			if int(nameIdx) >= len(d.names) {
				return &DecodeError{Offset: tagPos, Tag: tag, Err: ErrOutOfBoundsReference}
			}
			*tokens = append(*tokens, Token{Offset: tagPos, Tag: "  KEY", Detail: fmt.Sprintf("%q", d.names[nameIdx])})
			if err := d.walkValue(tokens); err != nil {
				return err
			}
		}
		return nil

	case tagArray:
		count, err := readVarint(d.reader)
		if err != nil {
			return translateErr(d.reader, tag, err)
		}
		if err := guardCount(count, d.reader.Remaining()); err != nil {
			return err
		}
		*tokens = append(*tokens, Token{Offset: tagPos, Tag: mnemonic, Detail: fmt.Sprintf("%d items", count)})
		for i := uint32(0); i < count; i++ {
			if err := d.walkValue(tokens); err != nil {
				return err
			}
		}
		return nil

	default:
		return &DecodeError{Offset: tagPos, Tag: tag, Err: ErrUnexpectedTag}
	}
}

var tagMnemonics = map[byte]string{
	tagFalse:     "FALSE",
	tagTrue:      "TRUE",
	tagInt8:      "INT8",
	tagInt16:     "INT16",
	tagInt32:     "INT32",
	tagNull:      "NULL",
	tagUndefined: "UNDEFINED",
	tagReference: "REFERENCE",
	tagNumber:    "NUMBER",
	tagUint8:     "UINT8",
	tagUint16:    "UINT16",
	tagUint32:    "UINT32",
	tagString:    "STRING",
	tagDate:      "DATE",
	tagObject:    "OBJECT",
	tagArray:     "ARRAY",
	tagBytes:     "BYTES",
}
