// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

// Package buffer provides positional little-endian readers and writers over
// caller-owned byte slices.
//
// Both cursor types track a single offset that every operation advances by
// exactly the width it consumes or produces. Beyond the initial-offset clamp
// at construction time there are NO bounds checks: out-of-range access is a
// caller error, surfacing as a slice-indexing panic. Callers are responsible
// for sizing buffers to the sum of all planned reads and writes, and for
// keeping two cursors off overlapping regions of the same buffer.
package buffer

import (
	"encoding/binary"
)

// Reader decodes fixed-width little-endian integers and raw byte ranges from
// a buffer at a tracked offset. The Reader borrows the buffer; it never
// copies or grows it.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader over buf with the cursor at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// NewReaderAt creates a Reader over buf with the cursor at offset.
// A negative offset or an offset at or past the end of buf is silently
// reset to 0.
func NewReaderAt(buf []byte, offset int) *Reader {
	if offset < 0 || offset >= len(buf) {
		offset = 0
	}
	return &Reader{
		buf: buf,
		pos: offset,
	}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.pos
}

func (r *Reader) ReadUint8() uint8 {
	v := r.buf[r.pos]
	r.pos++
	return v
}

func (r *Reader) ReadUint16() uint16 {
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v
}

func (r *Reader) ReadUint32() uint32 {
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v
}

func (r *Reader) ReadUint64() uint64 {
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v
}

// ReadBytes returns the next n bytes as a view into the underlying buffer,
// not a copy. Mutations through the returned slice are visible to every
// holder of the buffer.
func (r *Reader) ReadBytes(n int) []byte {
	v := r.buf[r.pos : r.pos+n]
	r.pos += n
	return v
}
