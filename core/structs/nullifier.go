package structs

import (
	"io"

	"github.com/NethermindEth/aap-arbitrary/core/crypto"
	"github.com/NethermindEth/aap-arbitrary/core/felt"
)

// Nullifier is published when a record is spent. Nullifiers are comparable and can be used
// as map keys.
type Nullifier felt.Felt

func (n *Nullifier) Felt() *felt.Felt {
	return (*felt.Felt)(n)
}

func (n *Nullifier) Bytes() [felt.Bytes]byte {
	return n.Felt().Bytes()
}

func (n *Nullifier) String() string {
	return n.Felt().String()
}

func (n Nullifier) MarshalBinary() ([]byte, error) {
	return felt.Felt(n).MarshalBinary()
}

func (n *Nullifier) UnmarshalBinary(data []byte) error {
	return n.Felt().UnmarshalBinary(data)
}

func (n *Nullifier) MarshalJSON() ([]byte, error) {
	return n.Felt().MarshalJSON()
}

func (n *Nullifier) UnmarshalJSON(data []byte) error {
	return n.Felt().UnmarshalJSON(data)
}

// RandomNullifierForTest returns a nullifier that belongs to no record.
func RandomNullifierForTest(rng io.Reader) (Nullifier, error) {
	f, err := felt.Random(rng)
	if err != nil {
		return Nullifier{}, err
	}
	return Nullifier(f), nil
}

// Nullify derives the nullifier of the record with commitment comm stored at leaf uid,
// using the owner's nullifier key.
func Nullify(nk *felt.Felt, uid uint64, comm *RecordCommitment) Nullifier {
	uidFelt := felt.FromUint64(uid)
	return Nullifier(*crypto.MiMCArray(nk, &uidFelt, comm.Felt()))
}
