package arbitrary

import (
	"errors"
	"fmt"
)

// Arbitrary is implemented by pointers to wrapper types. Arbitrary reads what it needs from u
// and fills the receiver.
type Arbitrary interface {
	Arbitrary(u *Unstructured) error
}

// Generate builds a T from u. On failure the cursor is put back where it was, so a failed
// generation has no effect on the stream.
func Generate[T any, PT interface {
	*T
	Arbitrary
}](u *Unstructured) (T, error) {
	var v T
	start := u.off
	if err := PT(&v).Arbitrary(u); err != nil {
		u.off = start
		var zero T
		return zero, err
	}
	return v, nil
}

// FromBytes builds a T from the front of data and reports how many bytes it used.
func FromBytes[T any, PT interface {
	*T
	Arbitrary
}](data []byte) (T, int, error) {
	u := NewUnstructured(data)
	v, err := Generate[T, PT](u)
	return v, u.Consumed(), err
}

// ErrConstruction matches every [ConstructionError].
var ErrConstruction = errors.New("arbitrary: construction failed")

// ConstructionError reports that the wrapped library refused to build a value for reasons
// other than running out of input.
type ConstructionError struct {
	Target string
	Err    error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("arbitrary: construct %s: %v", e.Target, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

func construction(target string, err error) error {
	return &ConstructionError{Target: target, Err: err}
}
