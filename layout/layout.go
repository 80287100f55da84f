// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

// Package layout renders ordered, width-tagged field descriptors into one
// flat little-endian buffer.
//
// A Template separates what to write (a list of typed fields, each carrying
// its own raw bytes) from how to write it (a single buffer.Writer pass over
// an exactly-sized allocation). Concrete block and transaction types declare
// their header layout once and render it on demand.
package layout

import (
	"encoding/binary"

	"github.com/pk910/chainkit/buffer"
)

// FieldKind tags a field with its declared width class.
type FieldKind uint8

const (
	// FieldBytes emits the field data verbatim, whatever length and
	// endianness the caller already encoded into it.
	FieldBytes FieldKind = iota
	FieldUint8
	FieldUint16
	FieldUint32
	FieldUint64
)

// Width returns the declared byte width of the kind: 1, 2, 4 or 8 for the
// integer kinds and 0 for FieldBytes, whose width is the field data length.
func (k FieldKind) Width() int {
	switch k {
	case FieldUint8:
		return 1
	case FieldUint16:
		return 2
	case FieldUint32:
		return 4
	case FieldUint64:
		return 8
	default:
		return 0
	}
}

func (k FieldKind) String() string {
	switch k {
	case FieldBytes:
		return "bytes"
	case FieldUint8:
		return "uint8"
	case FieldUint16:
		return "uint16"
	case FieldUint32:
		return "uint32"
	case FieldUint64:
		return "uint64"
	default:
		return "unknown"
	}
}

// Field is one typed unit of data to be concatenated into a rendered buffer.
// For integer kinds Data must hold at least Width bytes; rendering reads
// only the leading Width bytes.
type Field struct {
	Kind FieldKind
	Data []byte
}

func Bytes(data []byte) Field {
	return Field{Kind: FieldBytes, Data: data}
}

func Uint8(data []byte) Field {
	return Field{Kind: FieldUint8, Data: data}
}

func Uint16(data []byte) Field {
	return Field{Kind: FieldUint16, Data: data}
}

func Uint32(data []byte) Field {
	return Field{Kind: FieldUint32, Data: data}
}

func Uint64(data []byte) Field {
	return Field{Kind: FieldUint64, Data: data}
}

func (f Field) size() int {
	if w := f.Kind.Width(); w > 0 {
		return w
	}
	return len(f.Data)
}

// Template is an ordered sequence of fields with a cached total byte length.
//
// The total length is computed once at construction and never refreshed:
// mutating field data through Fields afterward leaves ByteLength and the
// Render allocation at their original size. Treat a Template as immutable
// after construction.
type Template struct {
	fields []Field
	size   int
}

// NewTemplate creates a Template over the given fields and computes the
// total byte length: the sum of each field's declared width, with FieldBytes
// contributing its full data length.
func NewTemplate(fields ...Field) *Template {
	size := 0
	for _, f := range fields {
		size += f.size()
	}
	return &Template{
		fields: fields,
		size:   size,
	}
}

// ByteLength returns the cached total byte length of the rendered buffer.
func (t *Template) ByteLength() int {
	return t.size
}

// Fields returns the template's field slice. The slice is not a copy;
// mutations are visible to the template but do not update the cached total
// length.
func (t *Template) Fields() []Field {
	return t.fields
}

// Render allocates a buffer of exactly ByteLength bytes and writes every
// field in declared order through a single Writer.
//
// Integer fields reinterpret the leading Width bytes of their data in host
// byte order and re-emit them little-endian; on little-endian hosts this is
// a straight copy of those bytes. Field data shorter than the declared
// width panics (caller contract, same as the cursor types).
func (t *Template) Render() []byte {
	w := buffer.NewWriter(make([]byte, t.size))
	for _, f := range t.fields {
		switch f.Kind {
		case FieldUint8:
			w.WriteUint8(f.Data[0])
		case FieldUint16:
			w.WriteUint16(binary.NativeEndian.Uint16(f.Data))
		case FieldUint32:
			w.WriteUint32(binary.NativeEndian.Uint32(f.Data))
		case FieldUint64:
			w.WriteUint64(binary.NativeEndian.Uint64(f.Data))
		default:
			w.WriteBytes(f.Data)
		}
	}
	return w.Buffer()
}
