package crypto

import (
	"hash"

	"github.com/NethermindEth/aap-arbitrary/core/felt"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/mimc"
)

// MiMCArray hashes a sequence of field elements with the MiMC sponge over BLS12-377 Fr.
// The element count is absorbed last so that prefixes do not collide.
func MiMCArray(elems ...*felt.Felt) *felt.Felt {
	var digest MiMCDigest
	return digest.Update(elems...).Finish()
}

// MiMC hashes a pair of field elements.
func MiMC(a, b *felt.Felt) *felt.Felt {
	return MiMCArray(a, b)
}

var _ Digest = (*MiMCDigest)(nil)

type MiMCDigest struct {
	h     hash.Hash
	count uint64
}

func (d *MiMCDigest) Update(elems ...*felt.Felt) Digest {
	if d.h == nil {
		d.h = mimc.NewMiMC()
	}
	for idx := range elems {
		b := elems[idx].Bytes()
		// canonical encodings are always below the modulus, Write cannot fail
		_, _ = d.h.Write(b[:])
	}
	d.count += uint64(len(elems))
	return d
}

func (d *MiMCDigest) Finish() *felt.Felt {
	if d.h == nil {
		d.h = mimc.NewMiMC()
	}
	count := felt.FromUint64(d.count)
	b := count.Bytes()
	_, _ = d.h.Write(b[:])
	return new(felt.Felt).SetBytes(d.h.Sum(nil))
}
