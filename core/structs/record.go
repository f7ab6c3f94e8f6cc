package structs

import (
	"io"

	"github.com/NethermindEth/aap-arbitrary/core/crypto"
	"github.com/NethermindEth/aap-arbitrary/core/felt"
	"github.com/NethermindEth/aap-arbitrary/core/keys"
	"github.com/pkg/errors"
)

// BlindFactor hides the contents of a record commitment.
type BlindFactor felt.Felt

func (b *BlindFactor) Felt() *felt.Felt {
	return (*felt.Felt)(b)
}

func (b BlindFactor) MarshalBinary() ([]byte, error) {
	return felt.Felt(b).MarshalBinary()
}

func (b *BlindFactor) UnmarshalBinary(data []byte) error {
	return b.Felt().UnmarshalBinary(data)
}

// RecordCommitment is the leaf inserted into the record accumulator.
type RecordCommitment felt.Felt

func (c *RecordCommitment) Felt() *felt.Felt {
	return (*felt.Felt)(c)
}

func (c *RecordCommitment) String() string {
	return c.Felt().String()
}

// RecordOpening is the plaintext of a confidential record.
type RecordOpening struct {
	Amount   Amount
	AssetDef AssetDefinition
	PubKey   keys.UserPubKey
	Freeze   FreezeFlag
	Blind    BlindFactor
}

// NewRecordOpening draws a fresh blinding factor (64 bytes) from rng.
func NewRecordOpening(rng io.Reader, amount Amount, assetDef AssetDefinition,
	pubKey keys.UserPubKey, freeze FreezeFlag,
) (RecordOpening, error) {
	blind, err := felt.Random(rng)
	if err != nil {
		return RecordOpening{}, errors.Wrap(err, "record blind")
	}
	return RecordOpening{
		Amount:   amount,
		AssetDef: assetDef,
		PubKey:   pubKey,
		Freeze:   freeze,
		Blind:    BlindFactor(blind),
	}, nil
}

// DummyRecordOpening creates a zero-amount record of the dummy asset owned by a freshly
// generated user, who is returned alongside.
func DummyRecordOpening(rng io.Reader, freeze FreezeFlag) (RecordOpening, keys.UserKeyPair, error) {
	ukp, err := keys.GenerateUserKeyPair(rng)
	if err != nil {
		return RecordOpening{}, keys.UserKeyPair{}, errors.Wrap(err, "dummy record owner")
	}
	ro, err := NewRecordOpening(rng, 0, DummyAssetDefinition(), ukp.PubKey(), freeze)
	if err != nil {
		return RecordOpening{}, keys.UserKeyPair{}, err
	}
	return ro, ukp, nil
}

func (ro *RecordOpening) IsDummy() bool {
	return ro.Amount == 0 && ro.AssetDef.IsDummy()
}

func (ro *RecordOpening) Commitment() RecordCommitment {
	amount := felt.FromUint64(uint64(ro.Amount))
	policy := ro.AssetDef.Policy.Digest()
	addrX, addrY := ro.PubKey.Address.Coordinates()
	var encKey felt.Felt
	encKey.SetBytes(ro.PubKey.EncKey[:])
	freeze := felt.FromUint64(uint64(ro.Freeze))

	return RecordCommitment(*crypto.MiMCArray(
		&amount,
		ro.AssetDef.Code.Felt(),
		&policy,
		&addrX,
		&addrY,
		&encKey,
		&freeze,
		ro.Blind.Felt(),
	))
}

// Nullifier computes the nullifier of this record stored at leaf uid.
func (ro *RecordOpening) Nullifier(nk *felt.Felt, uid uint64) Nullifier {
	comm := ro.Commitment()
	return Nullify(nk, uid, &comm)
}
