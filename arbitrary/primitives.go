package arbitrary

import (
	"github.com/NethermindEth/aap-arbitrary/core/felt"
	"github.com/NethermindEth/aap-arbitrary/core/keys"
	"github.com/NethermindEth/aap-arbitrary/core/structs"
	"github.com/NethermindEth/aap-arbitrary/encoder"
)

// Nullifier wraps [structs.Nullifier]. It is comparable, so it can key a map the same way the
// plain value can.
type Nullifier struct {
	inner structs.Nullifier
}

func WrapNullifier(n structs.Nullifier) Nullifier {
	return Nullifier{inner: n}
}

func (n *Nullifier) Arbitrary(u *Unstructured) error {
	rng, err := u.RNG()
	if err != nil {
		return err
	}
	inner, err := structs.RandomNullifierForTest(rng)
	if err != nil {
		return construction("nullifier", err)
	}
	n.inner = inner
	return nil
}

func (n Nullifier) Unwrap() structs.Nullifier {
	return n.inner
}

func (n Nullifier) MarshalCBOR() ([]byte, error) {
	return encoder.Marshal(n.inner)
}

func (n *Nullifier) UnmarshalCBOR(data []byte) error {
	return encoder.Unmarshal(data, &n.inner)
}

// BaseField wraps a uniformly sampled [felt.Felt].
type BaseField struct {
	inner felt.Felt
}

func (f *BaseField) Arbitrary(u *Unstructured) error {
	rng, err := u.RNG()
	if err != nil {
		return err
	}
	inner, err := felt.Random(rng)
	if err != nil {
		return construction("base field element", err)
	}
	f.inner = inner
	return nil
}

func (f BaseField) Unwrap() felt.Felt {
	return f.inner
}

func (f BaseField) MarshalCBOR() ([]byte, error) {
	return encoder.Marshal(f.inner)
}

func (f *BaseField) UnmarshalCBOR(data []byte) error {
	return encoder.Unmarshal(data, &f.inner)
}

type KeyPair struct {
	inner keys.KeyPair
}

func (kp *KeyPair) Arbitrary(u *Unstructured) error {
	rng, err := u.RNG()
	if err != nil {
		return err
	}
	inner, err := keys.GenerateKeyPair(rng)
	if err != nil {
		return construction("signing key pair", err)
	}
	kp.inner = inner
	return nil
}

func (kp KeyPair) Unwrap() keys.KeyPair {
	return kp.inner
}

func (kp KeyPair) MarshalCBOR() ([]byte, error) {
	return encoder.Marshal(kp.inner)
}

func (kp *KeyPair) UnmarshalCBOR(data []byte) error {
	return encoder.Unmarshal(data, &kp.inner)
}

// UserKeyPair wraps a full user key set: address signing key and encryption key.
type UserKeyPair struct {
	inner keys.UserKeyPair
}

func (ukp *UserKeyPair) Arbitrary(u *Unstructured) error {
	rng, err := u.RNG()
	if err != nil {
		return err
	}
	inner, err := keys.GenerateUserKeyPair(rng)
	if err != nil {
		return construction("user key pair", err)
	}
	ukp.inner = inner
	return nil
}

func (ukp UserKeyPair) Unwrap() keys.UserKeyPair {
	return ukp.inner
}

func (ukp UserKeyPair) MarshalCBOR() ([]byte, error) {
	return encoder.Marshal(ukp.inner)
}

func (ukp *UserKeyPair) UnmarshalCBOR(data []byte) error {
	return encoder.Unmarshal(data, &ukp.inner)
}

var freezeFlags = []structs.FreezeFlag{structs.Frozen, structs.Unfrozen}

// RecordOpening wraps a dummy record opening. The seed is read before the freeze selector.
type RecordOpening struct {
	inner structs.RecordOpening
}

func (ro *RecordOpening) Arbitrary(u *Unstructured) error {
	rng, err := u.RNG()
	if err != nil {
		return err
	}
	flag, err := Choose(u, freezeFlags)
	if err != nil {
		return err
	}
	inner, _, err := structs.DummyRecordOpening(rng, flag)
	if err != nil {
		return construction("record opening", err)
	}
	ro.inner = inner
	return nil
}

func (ro RecordOpening) Unwrap() structs.RecordOpening {
	return ro.inner
}

func (ro RecordOpening) MarshalCBOR() ([]byte, error) {
	return encoder.Marshal(ro.inner)
}

func (ro *RecordOpening) UnmarshalCBOR(data []byte) error {
	return encoder.Unmarshal(data, &ro.inner)
}
