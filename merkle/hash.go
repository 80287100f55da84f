// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

package merkle

import (
	"crypto/sha256"
	"hash"

	"github.com/prysmaticlabs/gohashtree"
	"golang.org/x/crypto/sha3"
)

var (
	_ HashFn = Sha256
	_ HashFn = Sha3
)

// Sha256 is a HashFn computing SHA-256. Input of exactly 64 bytes, the pair
// width of a DefaultHashSize tree, runs through gohashtree's vectorized
// implementation; every other width falls back to crypto/sha256.
func Sha256(data []byte) []byte {
	if len(data) == 64 {
		out := make([]byte, 32)
		if err := gohashtree.HashByteSlice(out, data); err == nil {
			return out
		}
	}
	sum := sha256.Sum256(data)
	return sum[:]
}

// Sha3 is a HashFn computing SHA3-256.
func Sha3(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

// WrapHash adapts a hash.Hash constructor into a HashFn, allocating a fresh
// hash state per call.
func WrapHash(newHash func() hash.Hash) HashFn {
	return func(data []byte) []byte {
		h := newHash()
		h.Write(data)
		return h.Sum(nil)
	}
}
