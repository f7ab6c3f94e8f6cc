package corpus

import (
	"fmt"
	"slices"

	"github.com/NethermindEth/aap-arbitrary/arbitrary"
	"github.com/pkg/errors"
)

var ErrUnknownKind = errors.New("unknown kind")

// GenerateFunc builds one value of a kind from u.
type GenerateFunc func(u *arbitrary.Unstructured) (any, error)

func generate[T any, PT interface {
	*T
	arbitrary.Arbitrary
}](u *arbitrary.Unstructured) (any, error) {
	return arbitrary.Generate[T, PT](u)
}

// Kinds maps the names used on the command line and in config files to generators.
var Kinds = map[string]GenerateFunc{
	"nullifier":          generate[arbitrary.Nullifier, *arbitrary.Nullifier],
	"basefield":          generate[arbitrary.BaseField, *arbitrary.BaseField],
	"keypair":            generate[arbitrary.KeyPair, *arbitrary.KeyPair],
	"user-keypair":       generate[arbitrary.UserKeyPair, *arbitrary.UserKeyPair],
	"user-address":       generate[arbitrary.UserAddress, *arbitrary.UserAddress],
	"record-opening":     generate[arbitrary.RecordOpening, *arbitrary.RecordOpening],
	"receiver-memo":      generate[arbitrary.ReceiverMemo, *arbitrary.ReceiverMemo],
	"merkle-tree":        generate[arbitrary.MerkleTree, *arbitrary.MerkleTree],
	"shaped-merkle-tree": generate[arbitrary.ShapedMerkleTree, *arbitrary.ShapedMerkleTree],
}

func KindNames() []string {
	names := make([]string, 0, len(Kinds))
	for name := range Kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func Lookup(kind string) (GenerateFunc, error) {
	gen, ok := Kinds[kind]
	if !ok {
		return nil, errors.Wrap(ErrUnknownKind, fmt.Sprintf("%q (known: %v)", kind, KindNames()))
	}
	return gen, nil
}
