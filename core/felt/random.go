package felt

import (
	"io"

	"github.com/pkg/errors"
)

// wideBytes is read per sample; reducing 512 bits mod q keeps the bias below 2^-250.
const wideBytes = 64

// Random samples a uniformly distributed element from r. The result depends only on the
// bytes r yields, so a seeded reader gives a reproducible element.
func Random(r io.Reader) (Felt, error) {
	var buf [wideBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Zero, errors.Wrap(err, "felt: read randomness")
	}

	var f Felt
	f.val.SetBytes(buf[:])
	return f, nil
}
