// Package merkle implements the record accumulator: a fixed-height, append-only ternary
// Merkle tree over field elements. See the documentation on [Tree] for details.
package merkle

import (
	"errors"
	"fmt"

	"github.com/NethermindEth/aap-arbitrary/core/crypto"
	"github.com/NethermindEth/aap-arbitrary/core/felt"
	"github.com/NethermindEth/aap-arbitrary/encoder"
)

const (
	Arity = 3
	// MaxHeight keeps Arity^height within a uint64.
	MaxHeight = 40
)

var (
	ErrTreeFull      = errors.New("merkle tree is full")
	ErrInvalidHeight = errors.New("invalid merkle tree height")
	ErrLeafNotFound  = errors.New("leaf not found")
	ErrInvalidProof  = errors.New("invalid membership proof")
)

type hashFunc func(...*felt.Felt) *felt.Felt

// Tree is a ternary Merkle tree of fixed height. Leaves are appended left to right and the
// position of a leaf (its uid) is its insertion index. Unoccupied positions hold the zero
// element, so the root of a tree commits to the insertion order of its leaves.
//
// Interior nodes are only materialised when the root or a proof is requested; appends just
// mark the cached levels dirty.
type Tree struct {
	height uint8
	leaves []felt.Felt
	hash   hashFunc

	// levels[0] are the leaves, levels[height] holds the root.
	levels [][]felt.Felt
	empty  []felt.Felt
	dirty  bool
}

// New creates an empty tree with room for Arity^height leaves.
func New(height uint8) (*Tree, error) {
	return newTree(height, crypto.MiMCArray)
}

func newTree(height uint8, hash hashFunc) (*Tree, error) {
	if height == 0 || height > MaxHeight {
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidHeight, height, MaxHeight)
	}

	// empty[l] is the root of an empty subtree of height l
	empty := make([]felt.Felt, height+1)
	for l := 1; l <= int(height); l++ {
		child := &empty[l-1]
		empty[l] = *hash(child, child, child)
	}

	return &Tree{
		height: height,
		hash:   hash,
		empty:  empty,
		dirty:  true,
	}, nil
}

func (t *Tree) Height() uint8 {
	return t.height
}

func (t *Tree) Capacity() uint64 {
	capacity := uint64(1)
	for i := uint8(0); i < t.height; i++ {
		capacity *= Arity
	}
	return capacity
}

func (t *Tree) NumLeaves() uint64 {
	return uint64(len(t.leaves))
}

// Push appends leaf and returns its uid.
func (t *Tree) Push(leaf *felt.Felt) (uint64, error) {
	if t.NumLeaves() == t.Capacity() {
		return 0, ErrTreeFull
	}
	t.leaves = append(t.leaves, *leaf)
	t.dirty = true
	return t.NumLeaves() - 1, nil
}

func (t *Tree) Leaf(uid uint64) (felt.Felt, error) {
	if uid >= t.NumLeaves() {
		return felt.Zero, ErrLeafNotFound
	}
	return t.leaves[uid], nil
}

// Leaves returns a copy of the leaves in insertion order.
func (t *Tree) Leaves() []felt.Felt {
	out := make([]felt.Felt, len(t.leaves))
	copy(out, t.leaves)
	return out
}

func (t *Tree) Root() felt.Felt {
	t.commit()
	return t.levels[t.height][0]
}

// node returns the node at index idx of level l, or the empty subtree root if the
// position has not been reached by any leaf.
func (t *Tree) node(l int, idx uint64) *felt.Felt {
	if idx < uint64(len(t.levels[l])) {
		return &t.levels[l][idx]
	}
	return &t.empty[l]
}

func (t *Tree) commit() {
	if !t.dirty {
		return
	}

	levels := make([][]felt.Felt, t.height+1)
	levels[0] = t.leaves
	t.levels = levels
	for l := 1; l <= int(t.height); l++ {
		width := (uint64(len(levels[l-1])) + Arity - 1) / Arity
		if width == 0 {
			width = 1
		}
		level := make([]felt.Felt, width)
		for i := range level {
			first := uint64(i) * Arity
			level[i] = *t.hash(t.node(l-1, first), t.node(l-1, first+1), t.node(l-1, first+2))
		}
		levels[l] = level
	}
	t.dirty = false
}

// MembershipProof holds, for every level from the leaves up, the two siblings of the path
// node and the path node's position among its siblings.
type MembershipProof struct {
	Positions []uint8
	Siblings  [][2]felt.Felt
}

func (t *Tree) Prove(uid uint64) (*MembershipProof, error) {
	if uid >= t.NumLeaves() {
		return nil, ErrLeafNotFound
	}
	t.commit()

	proof := &MembershipProof{
		Positions: make([]uint8, 0, t.height),
		Siblings:  make([][2]felt.Felt, 0, t.height),
	}
	idx := uid
	for l := 0; l < int(t.height); l++ {
		pos := idx % Arity
		first := idx - pos
		var siblings [2]felt.Felt
		s := 0
		for c := uint64(0); c < Arity; c++ {
			if c == pos {
				continue
			}
			siblings[s] = *t.node(l, first+c)
			s++
		}
		proof.Positions = append(proof.Positions, uint8(pos))
		proof.Siblings = append(proof.Siblings, siblings)
		idx /= Arity
	}
	return proof, nil
}

// Verify checks that leaf is committed to by root through proof.
func Verify(root, leaf *felt.Felt, proof *MembershipProof) error {
	return verify(root, leaf, proof, crypto.MiMCArray)
}

func verify(root, leaf *felt.Felt, proof *MembershipProof, hash hashFunc) error {
	if proof == nil || len(proof.Positions) != len(proof.Siblings) || len(proof.Positions) == 0 {
		return ErrInvalidProof
	}

	cur := *leaf
	for l, pos := range proof.Positions {
		if pos >= Arity {
			return ErrInvalidProof
		}
		s := proof.Siblings[l]
		var children [Arity]*felt.Felt
		switch pos {
		case 0:
			children = [Arity]*felt.Felt{&cur, &s[0], &s[1]}
		case 1:
			children = [Arity]*felt.Felt{&s[0], &cur, &s[1]}
		case 2:
			children = [Arity]*felt.Felt{&s[0], &s[1], &cur}
		}
		cur = *hash(children[:]...)
	}

	if !cur.Equal(root) {
		return ErrInvalidProof
	}
	return nil
}

type snapshot struct {
	Height uint8
	Leaves []felt.Felt
}

func (t *Tree) MarshalCBOR() ([]byte, error) {
	return encoder.Marshal(snapshot{Height: t.height, Leaves: t.leaves})
}

// UnmarshalCBOR rebuilds the tree by replaying the leaves in order.
func (t *Tree) UnmarshalCBOR(data []byte) error {
	var s snapshot
	if err := encoder.Unmarshal(data, &s); err != nil {
		return err
	}
	fresh, err := New(s.Height)
	if err != nil {
		return err
	}
	for i := range s.Leaves {
		if _, err := fresh.Push(&s.Leaves[i]); err != nil {
			return err
		}
	}
	*t = *fresh
	return nil
}
