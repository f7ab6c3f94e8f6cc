package arbitrary

import (
	"github.com/NethermindEth/aap-arbitrary/core/keys"
	"github.com/NethermindEth/aap-arbitrary/core/structs"
	"github.com/NethermindEth/aap-arbitrary/encoder"
)

// ReceiverMemo wraps a memo that encrypts an arbitrary record opening to its own owner. The
// memo's seed comes first, then the record opening's 33 bytes.
type ReceiverMemo struct {
	inner structs.ReceiverMemo
}

func (m *ReceiverMemo) Arbitrary(u *Unstructured) error {
	rng, err := u.RNG()
	if err != nil {
		return err
	}
	ro, err := Generate[RecordOpening](u)
	if err != nil {
		return err
	}
	inner, err := structs.NewReceiverMemo(rng, &ro.inner, nil)
	if err != nil {
		return construction("receiver memo", err)
	}
	m.inner = inner
	return nil
}

func (m ReceiverMemo) Unwrap() structs.ReceiverMemo {
	return m.inner
}

func (m ReceiverMemo) MarshalCBOR() ([]byte, error) {
	return encoder.Marshal(m.inner)
}

func (m *ReceiverMemo) UnmarshalCBOR(data []byte) error {
	return encoder.Unmarshal(data, &m.inner)
}

// UserAddress is the address of an arbitrary user key pair. The key pair is discarded.
type UserAddress struct {
	inner keys.UserAddress
}

func (a *UserAddress) Arbitrary(u *Unstructured) error {
	ukp, err := Generate[UserKeyPair](u)
	if err != nil {
		return err
	}
	a.inner = ukp.inner.Address()
	return nil
}

func (a UserAddress) Unwrap() keys.UserAddress {
	return a.inner
}

func (a UserAddress) MarshalCBOR() ([]byte, error) {
	return encoder.Marshal(a.inner)
}

func (a *UserAddress) UnmarshalCBOR(data []byte) error {
	return encoder.Unmarshal(data, &a.inner)
}
