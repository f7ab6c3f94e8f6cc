package arbitrary

import (
	"errors"
	"math"
	"math/bits"
)

var (
	// ErrNotEnoughData means the stream ended before a value could be built. Harnesses should
	// treat it as "input too short" and move on.
	ErrNotEnoughData = errors.New("arbitrary: not enough data")
	ErrEmptyChoose   = errors.New("arbitrary: choose from an empty set")
	ErrInvalidRange  = errors.New("arbitrary: invalid range")
)

// Unstructured is a read cursor over fuzzer-provided bytes. It is consumed front to back;
// reads that cannot be satisfied fail without consuming anything.
type Unstructured struct {
	data []byte
	off  int
}

func NewUnstructured(data []byte) *Unstructured {
	return &Unstructured{data: data}
}

// Len returns the number of bytes left.
func (u *Unstructured) Len() int {
	return len(u.data) - u.off
}

func (u *Unstructured) Consumed() int {
	return u.off
}

func (u *Unstructured) IsEmpty() bool {
	return u.Len() == 0
}

// Bytes returns a copy of the next n bytes.
func (u *Unstructured) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidRange
	}
	if n > u.Len() {
		return nil, ErrNotEnoughData
	}
	out := make([]byte, n)
	copy(out, u.data[u.off:u.off+n])
	u.off += n
	return out, nil
}

func (u *Unstructured) Seed() ([SeedSize]byte, error) {
	var seed [SeedSize]byte
	if u.Len() < SeedSize {
		return seed, ErrNotEnoughData
	}
	copy(seed[:], u.data[u.off:])
	u.off += SeedSize
	return seed, nil
}

// IntInRange returns lo + v mod (hi-lo+1), where v is read big endian from the fewest bytes
// that cover the width of the range. A range holding a single value reads nothing.
func (u *Unstructured) IntInRange(lo, hi uint64) (uint64, error) {
	if lo > hi {
		return 0, ErrInvalidRange
	}
	width := hi - lo
	if width == 0 {
		return lo, nil
	}

	n := (bits.Len64(width) + 7) / 8
	if n > u.Len() {
		return 0, ErrNotEnoughData
	}
	var v uint64
	for _, b := range u.data[u.off : u.off+n] {
		v = v<<8 | uint64(b)
	}
	u.off += n

	if width == math.MaxUint64 {
		return v, nil
	}
	return lo + v%(width+1), nil
}

// ChooseIndex picks an index in [0, n) from one selector byte, or two big endian bytes when
// n does not fit in a byte.
func (u *Unstructured) ChooseIndex(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyChoose
	}
	width := 1
	if n > 1<<8 {
		width = 2
	}
	if n > 1<<16 {
		idx, err := u.IntInRange(0, uint64(n-1))
		return int(idx), err
	}
	if width > u.Len() {
		return 0, ErrNotEnoughData
	}
	var sel int
	for _, b := range u.data[u.off : u.off+width] {
		sel = sel<<8 | int(b)
	}
	u.off += width
	return sel % n, nil
}

func Choose[T any](u *Unstructured, choices []T) (T, error) {
	idx, err := u.ChooseIndex(len(choices))
	if err != nil {
		var zero T
		return zero, err
	}
	return choices[idx], nil
}
