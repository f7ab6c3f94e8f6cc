package utils

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/NethermindEth/aap-arbitrary/core/felt"
	"github.com/stretchr/testify/require"
)

func HexToFelt(t testing.TB, hex string) *felt.Felt {
	t.Helper()

	f, err := new(felt.Felt).SetString(hex)
	require.NoError(t, err)
	return f
}

// HexToBytes decodes hex with or without a 0x prefix.
func HexToBytes(t testing.TB, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	require.NoError(t, err)
	return b
}
