// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

// Package merkle reduces ordered lists of fixed-size hash leaves to a single
// root hash using an injected hash function.
//
// The tree imposes no hash algorithm of its own: the combine step is a plain
// function value applied to the concatenation of two sibling hashes. The
// package ships ready-made functions for SHA-256 (vectorized for the common
// pair width) and SHA3-256, plus an adapter for any hash.Hash.
package merkle

// HashFn combines a byte sequence, normally the concatenation of two sibling
// hashes, into one hash of the tree's leaf width.
type HashFn func(data []byte) []byte

// DefaultHashSize is the leaf and root width used by NewTree.
const DefaultHashSize = 32

// Tree holds an ordered leaf list and the root computed over it at
// construction time.
//
// Two behaviors are part of the contract and deliberately observable:
// construction appends a duplicate of the last leaf to the stored list when
// the leaf count is odd, and the root is cached for the lifetime of the tree
// with no invalidation API. Mutating leaf contents after construction does
// not change the root. Treat construction as a consuming operation.
type Tree struct {
	hashes   [][]byte
	hashFn   HashFn
	hashSize int
	root     []byte
}

// NewTree creates a Tree over hashes with DefaultHashSize leaves and
// computes its root. See NewTreeWithSize.
func NewTree(hashes [][]byte, hashFn HashFn) *Tree {
	return NewTreeWithSize(hashes, hashFn, DefaultHashSize)
}

// NewTreeWithSize creates a Tree over hashes with hashSize-byte leaves and
// computes its root immediately.
//
// An empty leaf list is well-defined: the root is hashSize zero bytes and
// hashFn is never called. Leaf sizes and the hash function's output width
// are not validated; mismatches produce structurally valid but semantically
// wrong trees.
func NewTreeWithSize(hashes [][]byte, hashFn HashFn, hashSize int) *Tree {
	t := &Tree{
		hashes:   hashes,
		hashFn:   hashFn,
		hashSize: hashSize,
	}
	t.root = t.computeRoot()
	return t
}

// Root returns the cached root hash. The same slice is returned on every
// call; it is never recomputed.
func (t *Tree) Root() []byte {
	return t.root
}

// Leaves returns the stored leaf list, including the duplicate appended for
// an odd leaf count.
func (t *Tree) Leaves() [][]byte {
	return t.hashes
}

// HashSize returns the configured leaf and root width in bytes.
func (t *Tree) HashSize() int {
	return t.hashSize
}

func (t *Tree) computeRoot() []byte {
	if len(t.hashes) == 0 {
		return make([]byte, t.hashSize)
	}
	if len(t.hashes)%2 == 1 {
		t.hashes = append(t.hashes, t.hashes[len(t.hashes)-1])
	}

	work := make([][]byte, len(t.hashes))
	copy(work, t.hashes)

	// Pairs are combined from the end of the working list toward the front:
	// the left sibling is replaced with the parent hash and the right
	// sibling removed, so one pass over an even list yields the parents in
	// left-to-right order. Padding happens only once, on the stored list;
	// an odd-length intermediate level carries its first element up
	// unpaired.
	for len(work) > 1 {
		for i := len(work); i > 1; i -= 2 {
			pair := make([]byte, 0, len(work[i-2])+len(work[i-1]))
			pair = append(pair, work[i-2]...)
			pair = append(pair, work[i-1]...)
			work[i-2] = t.hashFn(pair)
			work = append(work[:i-1], work[i:]...)
		}
	}
	return work[0]
}
