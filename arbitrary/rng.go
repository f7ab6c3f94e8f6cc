package arbitrary

import (
	"golang.org/x/crypto/chacha20"
)

// SeedSize is the number of stream bytes behind every sub-generator.
const SeedSize = chacha20.KeySize

// RNG is the ChaCha20 keystream under a 32-byte key with an all-zero nonce. It is the only
// source of randomness for the construction that owns it.
type RNG struct {
	cipher *chacha20.Cipher
}

func NewRNG(seed [SeedSize]byte) *RNG {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// key and nonce sizes are fixed at compile time
		panic(err)
	}
	return &RNG{cipher: c}
}

// Read fills p with keystream. It never fails.
func (r *RNG) Read(p []byte) (int, error) {
	clear(p)
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// RNG consumes a seed and returns the sub-generator it keys.
func (u *Unstructured) RNG() (*RNG, error) {
	seed, err := u.Seed()
	if err != nil {
		return nil, err
	}
	return NewRNG(seed), nil
}
