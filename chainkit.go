// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

// Package chainkit supplies the scaffolding contracts concrete blockchain
// networks build their block, transaction and wallet types on.
//
// The package itself carries almost no logic: it defines the encode and
// decode hooks network types implement, a shared cache-or-compute buffer
// helper those types embed, and a minimal wallet holder. The byte-level
// machinery lives in the buffer, layout and merkle subpackages; network
// presets live in params.
package chainkit

import (
	"github.com/pk910/chainkit/buffer"
)

// BufferEncoder is the interface implemented by types that can render
// themselves into a fresh byte buffer.
type BufferEncoder interface {
	ToBuffer() []byte
}

// BufferDecoder is the interface implemented by types that can populate
// themselves from an already-positioned Reader.
type BufferDecoder interface {
	FromBuffer(r *buffer.Reader)
}

// FromBytes wraps b in a Reader at offset 0 and hands it to the decode
// hook, for callers holding raw bytes rather than a Reader.
func FromBytes(d BufferDecoder, b []byte) {
	d.FromBuffer(buffer.NewReader(b))
}

// BufferCache implements the cache-or-compute buffer accessor shared by
// block and transaction scaffolds: embed it and call Resolve with the
// type's ToBuffer hook.
//
// The cache is write-once through Resolve: once a buffer is stored, the
// encode hook is never called again. SetBuffer seeds a pre-rendered buffer,
// the constructed-from-wire path.
type BufferCache struct {
	buf []byte
}

// Resolve returns the cached buffer, computing and storing it via encode on
// first use.
func (c *BufferCache) Resolve(encode func() []byte) []byte {
	if c.buf == nil {
		c.buf = encode()
	}
	return c.buf
}

// SetBuffer stores a pre-rendered buffer.
func (c *BufferCache) SetBuffer(b []byte) {
	c.buf = b
}

// Cached returns the stored buffer, or nil if none was rendered or seeded
// yet.
func (c *BufferCache) Cached() []byte {
	return c.buf
}
