package crypto

import "github.com/NethermindEth/aap-arbitrary/core/felt"

type Digest interface {
	Update(...*felt.Felt) Digest
	Finish() *felt.Felt
}
