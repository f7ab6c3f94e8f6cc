package keys

import (
	"io"

	"github.com/NethermindEth/aap-arbitrary/core/crypto"
	"github.com/NethermindEth/aap-arbitrary/core/felt"
)

// nullifierKeyDomain separates nullifier key derivation from other uses of the secret scalar.
var nullifierKeyDomain = felt.FromUint64(0x6e6b)

// UserAddress identifies a receiver. It is the verification key of the user's address key pair.
type UserAddress VerKey

func (a *UserAddress) VerKey() *VerKey {
	return (*VerKey)(a)
}

func (a *UserAddress) Coordinates() (x, y felt.Felt) {
	return a.VerKey().Coordinates()
}

func (a UserAddress) MarshalBinary() ([]byte, error) {
	return VerKey(a).MarshalBinary()
}

func (a *UserAddress) UnmarshalBinary(data []byte) error {
	return a.VerKey().UnmarshalBinary(data)
}

// UserPubKey is what a sender needs to create a record for a receiver.
type UserPubKey struct {
	Address UserAddress
	EncKey  EncKey
}

// UserKeyPair holds a user's address (signing) key pair and memo encryption key pair.
type UserKeyPair struct {
	addrKey KeyPair
	encKey  EncKeyPair
}

// GenerateUserKeyPair draws 32 bytes for the address key then 32 bytes for the encryption key.
func GenerateUserKeyPair(rng io.Reader) (UserKeyPair, error) {
	addrKey, err := GenerateKeyPair(rng)
	if err != nil {
		return UserKeyPair{}, err
	}
	encKey, err := GenerateEncKeyPair(rng)
	if err != nil {
		return UserKeyPair{}, err
	}
	return UserKeyPair{addrKey: addrKey, encKey: encKey}, nil
}

func (ukp *UserKeyPair) Address() UserAddress {
	return UserAddress(ukp.addrKey.VerKey())
}

func (ukp *UserKeyPair) PubKey() UserPubKey {
	return UserPubKey{
		Address: ukp.Address(),
		EncKey:  ukp.encKey.Public(),
	}
}

func (ukp *UserKeyPair) AddrKeyPair() *KeyPair {
	return &ukp.addrKey
}

func (ukp *UserKeyPair) EncKeyPair() *EncKeyPair {
	return &ukp.encKey
}

// NullifierKey is the secret used to compute nullifiers of records owned by this user.
func (ukp *UserKeyPair) NullifierKey() felt.Felt {
	s := ukp.addrKey.scalar()
	return *crypto.MiMC(&nullifierKeyDomain, &s)
}

func (ukp UserKeyPair) MarshalBinary() ([]byte, error) {
	addr, err := ukp.addrKey.MarshalBinary()
	if err != nil {
		return nil, err
	}
	enc, err := ukp.encKey.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(addr, enc...), nil
}

func (ukp *UserKeyPair) UnmarshalBinary(data []byte) error {
	if len(data) != keyPairSize+2*EncKeySize {
		return ErrInvalidKey
	}
	if err := ukp.addrKey.UnmarshalBinary(data[:keyPairSize]); err != nil {
		return err
	}
	return ukp.encKey.UnmarshalBinary(data[keyPairSize:])
}
