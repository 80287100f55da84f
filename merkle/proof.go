// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

package merkle

import (
	"bytes"
	"errors"
	"fmt"
)

// Proof is an inclusion proof for a single leaf of a Tree.
//
// It carries the leaf value, its position in the padded leaf list, the list
// length the tree was built over and the sibling hashes along the path to
// the root, ordered from the leaf level upward. A level whose first element
// is carried up unpaired contributes no sibling, so paths over trees with a
// non-power-of-two leaf count are shorter than the perfect-tree depth.
//
// Fields:
//   - Index: position of the proven leaf in the padded leaf list
//   - LeafCount: length of the padded leaf list
//   - Leaf: leaf value at Index
//   - Hashes: sibling hashes for the path to the root
type Proof struct {
	Index     int
	LeafCount int
	Leaf      []byte
	Hashes    [][]byte
}

// Prove builds the inclusion proof for the leaf at the given position of the
// padded leaf list. The proof holds views into the tree's leaf storage, not
// copies.
func (t *Tree) Prove(index int) (*Proof, error) {
	if index < 0 || index >= len(t.hashes) {
		return nil, fmt.Errorf("leaf index %d out of range", index)
	}

	proof := &Proof{
		Index:     index,
		LeafCount: len(t.hashes),
		Leaf:      t.hashes[index],
	}

	level := make([][]byte, len(t.hashes))
	copy(level, t.hashes)
	pos := index

	// Replay the reduction, collecting the proven node's sibling at every
	// level where it is paired.
	for len(level) > 1 {
		carried := len(level) % 2

		if pos >= carried {
			k := pos - carried
			if k%2 == 0 {
				proof.Hashes = append(proof.Hashes, level[pos+1])
			} else {
				proof.Hashes = append(proof.Hashes, level[pos-1])
			}
			pos = carried + k/2
		}

		next := make([][]byte, 0, carried+(len(level)-carried)/2)
		if carried == 1 {
			next = append(next, level[0])
		}
		for i := carried; i < len(level)-1; i += 2 {
			pair := make([]byte, 0, len(level[i])+len(level[i+1]))
			pair = append(pair, level[i]...)
			pair = append(pair, level[i+1]...)
			next = append(next, t.hashFn(pair))
		}
		level = next
	}

	return proof, nil
}

// VerifyProof checks a single-leaf proof against the given root, combining
// with the same hash function the tree was built with. The tree shape is
// derived from the proof's leaf count; a proof with the wrong number of
// sibling hashes is a structural error, a failed comparison returns false.
func VerifyProof(root []byte, proof *Proof, hashFn HashFn) (bool, error) {
	if proof.Index < 0 || proof.Index >= proof.LeafCount {
		return false, fmt.Errorf("leaf index %d out of range", proof.Index)
	}
	if len(proof.Hashes) != proofLength(proof.Index, proof.LeafCount) {
		return false, errors.New("invalid proof length")
	}

	node := proof.Leaf
	pos := proof.Index
	size := proof.LeafCount
	used := 0

	for size > 1 {
		carried := size % 2

		if pos >= carried {
			k := pos - carried
			sibling := proof.Hashes[used]
			used++

			pair := make([]byte, 0, len(node)+len(sibling))
			if k%2 == 0 {
				pair = append(pair, node...)
				pair = append(pair, sibling...)
			} else {
				pair = append(pair, sibling...)
				pair = append(pair, node...)
			}
			node = hashFn(pair)
			pos = carried + k/2
		}

		size = carried + (size-carried)/2
	}

	return bytes.Equal(root, node), nil
}

// proofLength returns the number of paired levels on the path from a leaf
// position to the root, which is the expected sibling count of its proof.
func proofLength(index, leafCount int) int {
	length := 0
	pos := index
	for size := leafCount; size > 1; {
		carried := size % 2
		if pos >= carried {
			length++
			pos = carried + (pos-carried)/2
		}
		size = carried + (size-carried)/2
	}
	return length
}
