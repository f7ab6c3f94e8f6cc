package structs

import (
	"github.com/NethermindEth/aap-arbitrary/core/crypto"
	"github.com/NethermindEth/aap-arbitrary/core/felt"
	"github.com/NethermindEth/aap-arbitrary/core/keys"
)

type Amount uint64

type AssetCode felt.Felt

var (
	NativeAssetCode = AssetCode(felt.FromUint64(1))
	DummyAssetCode  = AssetCode(felt.FromUint64(2))
)

func (c *AssetCode) Felt() *felt.Felt {
	return (*felt.Felt)(c)
}

func (c *AssetCode) String() string {
	return c.Felt().String()
}

func (c AssetCode) MarshalBinary() ([]byte, error) {
	return felt.Felt(c).MarshalBinary()
}

func (c *AssetCode) UnmarshalBinary(data []byte) error {
	return c.Felt().UnmarshalBinary(data)
}

// AssetPolicy lists who may audit and freeze records of an asset. A nil key means the role
// is not assigned.
type AssetPolicy struct {
	Auditor         *keys.VerKey
	Freezer         *keys.VerKey
	RevealMap       uint32
	RevealThreshold Amount
}

func (p *AssetPolicy) IsDefault() bool {
	return p.Auditor == nil && p.Freezer == nil && p.RevealMap == 0 && p.RevealThreshold == 0
}

// Digest commits to every field of the policy.
func (p *AssetPolicy) Digest() felt.Felt {
	elems := make([]*felt.Felt, 0, 6)
	for _, k := range []*keys.VerKey{p.Auditor, p.Freezer} {
		var x, y felt.Felt
		if k != nil {
			x, y = k.Coordinates()
		}
		elems = append(elems, &x, &y)
	}
	revealMap := felt.FromUint64(uint64(p.RevealMap))
	threshold := felt.FromUint64(uint64(p.RevealThreshold))
	elems = append(elems, &revealMap, &threshold)
	return *crypto.MiMCArray(elems...)
}

type AssetDefinition struct {
	Code   AssetCode
	Policy AssetPolicy
}

func NativeAssetDefinition() AssetDefinition {
	return AssetDefinition{Code: NativeAssetCode}
}

// DummyAssetDefinition is the asset type of records that only pad transactions.
func DummyAssetDefinition() AssetDefinition {
	return AssetDefinition{Code: DummyAssetCode}
}

func (d *AssetDefinition) IsNative() bool {
	return d.Code == NativeAssetCode && d.Policy.IsDefault()
}

func (d *AssetDefinition) IsDummy() bool {
	return d.Code == DummyAssetCode && d.Policy.IsDefault()
}
