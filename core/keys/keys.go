// Package keys holds the key material of the payment system: signing key pairs on the
// BLS12-377 twisted Edwards curve and X25519 encryption key pairs, combined into user keys.
package keys

import (
	"io"

	"github.com/NethermindEth/aap-arbitrary/core/felt"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/mimc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards/eddsa"
	"github.com/pkg/errors"
)

const (
	VerKeySize    = felt.Bytes
	SignatureSize = 2 * felt.Bytes
	keyPairSize   = 2*felt.Bytes + 32
)

var (
	ErrBadSignature = errors.New("signature verification failed")
	ErrInvalidKey   = errors.New("invalid key encoding")
)

// KeyPair is a signing key pair.
type KeyPair struct {
	sk eddsa.PrivateKey
}

// GenerateKeyPair draws exactly 32 bytes from rng.
func GenerateKeyPair(rng io.Reader) (KeyPair, error) {
	sk, err := eddsa.GenerateKey(rng)
	if err != nil {
		return KeyPair{}, errors.Wrap(err, "generate signing key")
	}
	return KeyPair{sk: *sk}, nil
}

func (kp *KeyPair) VerKey() VerKey {
	return VerKey{pk: kp.sk.PublicKey}
}

// Sign signs the concatenation of the canonical encodings of msg.
func (kp *KeyPair) Sign(msg ...*felt.Felt) (Signature, error) {
	var sig Signature
	raw, err := kp.sk.Sign(encodeMessage(msg), mimc.NewMiMC())
	if err != nil {
		return sig, errors.Wrap(err, "sign")
	}
	copy(sig[:], raw)
	return sig, nil
}

func (kp KeyPair) MarshalBinary() ([]byte, error) {
	return kp.sk.Bytes(), nil
}

func (kp *KeyPair) UnmarshalBinary(data []byte) error {
	if len(data) != keyPairSize {
		return ErrInvalidKey
	}
	if _, err := kp.sk.SetBytes(data); err != nil {
		return errors.Wrap(ErrInvalidKey, err.Error())
	}
	return nil
}

// scalar returns the secret scalar reduced into the base field.
func (kp *KeyPair) scalar() felt.Felt {
	raw := kp.sk.Bytes()
	var s felt.Felt
	s.SetBytes(raw[felt.Bytes : 2*felt.Bytes])
	return s
}

// VerKey is the public half of a [KeyPair].
type VerKey struct {
	pk eddsa.PublicKey
}

func (vk *VerKey) Verify(sig Signature, msg ...*felt.Felt) error {
	ok, err := vk.pk.Verify(sig[:], encodeMessage(msg), mimc.NewMiMC())
	if err != nil {
		return errors.Wrap(ErrBadSignature, err.Error())
	}
	if !ok {
		return ErrBadSignature
	}
	return nil
}

// Coordinates returns the affine coordinates of the key point.
func (vk *VerKey) Coordinates() (x, y felt.Felt) {
	return *felt.NewFelt(&vk.pk.A.X), *felt.NewFelt(&vk.pk.A.Y)
}

func (vk *VerKey) Bytes() [VerKeySize]byte {
	return vk.pk.A.Bytes()
}

func (vk VerKey) MarshalBinary() ([]byte, error) {
	return vk.pk.Bytes(), nil
}

func (vk *VerKey) UnmarshalBinary(data []byte) error {
	if len(data) != VerKeySize {
		return ErrInvalidKey
	}
	if _, err := vk.pk.SetBytes(data); err != nil {
		return errors.Wrap(ErrInvalidKey, err.Error())
	}
	return nil
}

type Signature [SignatureSize]byte

func encodeMessage(msg []*felt.Felt) []byte {
	out := make([]byte, 0, len(msg)*felt.Bytes)
	for _, m := range msg {
		b := m.Bytes()
		out = append(out, b[:]...)
	}
	return out
}
