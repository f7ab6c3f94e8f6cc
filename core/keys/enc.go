package keys

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/curve25519"
)

const EncKeySize = curve25519.PointSize

// EncKey is an X25519 public key receivers publish for memo encryption.
type EncKey [EncKeySize]byte

type EncKeyPair struct {
	secret [curve25519.ScalarSize]byte
	public EncKey
}

// GenerateEncKeyPair draws exactly 32 bytes from rng.
func GenerateEncKeyPair(rng io.Reader) (EncKeyPair, error) {
	var kp EncKeyPair
	if _, err := io.ReadFull(rng, kp.secret[:]); err != nil {
		return kp, errors.Wrap(err, "generate encryption key")
	}
	pub, err := curve25519.X25519(kp.secret[:], curve25519.Basepoint)
	if err != nil {
		return kp, errors.Wrap(err, "derive encryption public key")
	}
	copy(kp.public[:], pub)
	return kp, nil
}

func (kp *EncKeyPair) Public() EncKey {
	return kp.public
}

// SharedSecret fails when peer is a low-order point.
func (kp *EncKeyPair) SharedSecret(peer EncKey) ([]byte, error) {
	return curve25519.X25519(kp.secret[:], peer[:])
}

func (kp EncKeyPair) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 2*EncKeySize)
	out = append(out, kp.secret[:]...)
	return append(out, kp.public[:]...), nil
}

func (kp *EncKeyPair) UnmarshalBinary(data []byte) error {
	if len(data) != 2*EncKeySize {
		return ErrInvalidKey
	}
	copy(kp.secret[:], data[:EncKeySize])
	pub, err := curve25519.X25519(kp.secret[:], curve25519.Basepoint)
	if err != nil {
		return errors.Wrap(ErrInvalidKey, err.Error())
	}
	if EncKey(pub) != EncKey(data[EncKeySize:]) {
		return errors.Wrap(ErrInvalidKey, "public key does not match secret")
	}
	copy(kp.public[:], pub)
	return nil
}
