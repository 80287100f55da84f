// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

package buffer

import (
	"encoding/binary"
)

// Writer encodes fixed-width little-endian integers and raw byte ranges into
// a buffer at a tracked offset. Every write returns the Writer itself so
// calls can be chained into a single expression.
//
// The destination buffer is caller-owned and never grown. Writing past its
// end is a caller error: integer writes panic on out-of-range access and
// byte-range writes truncate under copy semantics. Size the buffer to the
// sum of all planned writes before constructing the Writer.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter creates a Writer over buf with the cursor at offset 0.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// NewWriterAt creates a Writer over buf with the cursor at offset.
// A negative offset or an offset at or past the end of buf is silently
// reset to 0.
func NewWriterAt(buf []byte, offset int) *Writer {
	if offset < 0 || offset >= len(buf) {
		offset = 0
	}
	return &Writer{
		buf: buf,
		pos: offset,
	}
}

// Len returns the total length of the underlying buffer.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Offset returns the current cursor position.
func (w *Writer) Offset() int {
	return w.pos
}

// Buffer returns the underlying buffer.
func (w *Writer) Buffer() []byte {
	return w.buf
}

func (w *Writer) WriteUint8(v uint8) *Writer {
	w.buf[w.pos] = v
	w.pos++
	return w
}

func (w *Writer) WriteUint16(v uint16) *Writer {
	binary.LittleEndian.PutUint16(w.buf[w.pos:], v)
	w.pos += 2
	return w
}

func (w *Writer) WriteUint32(v uint32) *Writer {
	binary.LittleEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4
	return w
}

func (w *Writer) WriteUint64(v uint64) *Writer {
	binary.LittleEndian.PutUint64(w.buf[w.pos:], v)
	w.pos += 8
	return w
}

// WriteBytes copies all of b into the buffer at the current cursor.
func (w *Writer) WriteBytes(b []byte) *Writer {
	copy(w.buf[w.pos:], b)
	w.pos += len(b)
	return w
}

// WriteBytesFrom copies b[start:] into the buffer at the current cursor,
// advancing it by len(b)-start.
func (w *Writer) WriteBytesFrom(b []byte, start int) *Writer {
	copy(w.buf[w.pos:], b[start:])
	w.pos += len(b) - start
	return w
}
