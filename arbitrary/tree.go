package arbitrary

import (
	"errors"

	"github.com/NethermindEth/aap-arbitrary/core/merkle"
)

const (
	TreeHeight = 3
	TreeLeaves = 15
)

var ErrEmptyTree = errors.New("arbitrary: tree wrapper holds no tree")

// Bounds for ShapedMerkleTree.
const (
	MaxDerivedHeight = 4
	MaxDerivedLeaves = 32
)

// MerkleTree wraps an accumulator of height TreeHeight holding TreeLeaves arbitrary leaves,
// pushed in the order they were generated.
type MerkleTree struct {
	inner *merkle.Tree
}

func (t *MerkleTree) Arbitrary(u *Unstructured) error {
	inner, err := buildTree(u, TreeHeight, TreeLeaves)
	if err != nil {
		return err
	}
	t.inner = inner
	return nil
}

func (t MerkleTree) Unwrap() *merkle.Tree {
	return t.inner
}

func (t MerkleTree) MarshalCBOR() ([]byte, error) {
	return marshalTree(t.inner)
}

func (t *MerkleTree) UnmarshalCBOR(data []byte) error {
	t.inner = new(merkle.Tree)
	return t.inner.UnmarshalCBOR(data)
}

// ShapedMerkleTree reads its height from [1, MaxDerivedHeight] and its leaf count from
// [0, min(3^height, MaxDerivedLeaves)] before reading the leaves.
type ShapedMerkleTree struct {
	inner *merkle.Tree
}

func (t *ShapedMerkleTree) Arbitrary(u *Unstructured) error {
	height, err := u.IntInRange(1, MaxDerivedHeight)
	if err != nil {
		return err
	}
	maxLeaves := uint64(1)
	for range height {
		maxLeaves *= merkle.Arity
	}
	maxLeaves = min(maxLeaves, MaxDerivedLeaves)

	leaves, err := u.IntInRange(0, maxLeaves)
	if err != nil {
		return err
	}
	inner, err := buildTree(u, uint8(height), leaves)
	if err != nil {
		return err
	}
	t.inner = inner
	return nil
}

func (t ShapedMerkleTree) Unwrap() *merkle.Tree {
	return t.inner
}

func (t ShapedMerkleTree) MarshalCBOR() ([]byte, error) {
	return marshalTree(t.inner)
}

func (t *ShapedMerkleTree) UnmarshalCBOR(data []byte) error {
	t.inner = new(merkle.Tree)
	return t.inner.UnmarshalCBOR(data)
}

func buildTree(u *Unstructured, height uint8, leaves uint64) (*merkle.Tree, error) {
	tree, err := merkle.New(height)
	if err != nil {
		return nil, construction("merkle tree", err)
	}
	for range leaves {
		leaf, err := Generate[BaseField](u)
		if err != nil {
			return nil, err
		}
		if _, err := tree.Push(&leaf.inner); err != nil {
			return nil, construction("merkle tree", err)
		}
	}
	return tree, nil
}

func marshalTree(tree *merkle.Tree) ([]byte, error) {
	if tree == nil {
		return nil, ErrEmptyTree
	}
	return tree.MarshalCBOR()
}
