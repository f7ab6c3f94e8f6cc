package felt

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJson(t *testing.T) {
	var with Felt
	assert.NoError(t, with.UnmarshalJSON([]byte("0x4437ab")))

	var without Felt
	assert.NoError(t, without.UnmarshalJSON([]byte("4437ab")))
	assert.Equal(t, true, without.Equal(&with))

	var quoted Felt
	assert.NoError(t, quoted.UnmarshalJSON([]byte(`"0x4437ab"`)))
	assert.True(t, quoted.Equal(&with))
}

func TestMarshalJson(t *testing.T) {
	f := FromUint64(0x4437ab)
	b, err := f.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"0x4437ab"`, string(b))

	var back Felt
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, f, back)
}

func TestFeltCbor(t *testing.T) {
	val, err := Random(bytes.NewReader(bytes.Repeat([]byte{0xab}, wideBytes)))
	require.NoError(t, err)

	b, err := cbor.Marshal(val)
	assert.NoError(t, err)

	var unmarshaledFelt Felt
	assert.NoError(t, cbor.Unmarshal(b, &unmarshaledFelt))
	assert.Equal(t, val, unmarshaledFelt)
}

func TestUnmarshalBinary(t *testing.T) {
	t.Run("canonical", func(t *testing.T) {
		f := FromUint64(7)
		b, err := f.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, b, Bytes)

		var back Felt
		require.NoError(t, back.UnmarshalBinary(b))
		assert.Equal(t, f, back)
	})

	t.Run("value above modulus", func(t *testing.T) {
		var f Felt
		assert.ErrorIs(t, f.UnmarshalBinary(bytes.Repeat([]byte{0xff}, Bytes)), ErrNonCanonical)
	})

	t.Run("wrong length", func(t *testing.T) {
		var f Felt
		assert.ErrorIs(t, f.UnmarshalBinary([]byte{1, 2, 3}), ErrNonCanonical)
	})
}

func TestRandom(t *testing.T) {
	t.Run("same bytes give same element", func(t *testing.T) {
		src := bytes.Repeat([]byte{0x5a, 0x01}, wideBytes)
		a, err := Random(bytes.NewReader(src))
		require.NoError(t, err)
		b, err := Random(bytes.NewReader(src))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("short reader", func(t *testing.T) {
		_, err := Random(bytes.NewReader(make([]byte, wideBytes-1)))
		assert.Error(t, err)
	})
}

func TestArithmetic(t *testing.T) {
	two := FromUint64(2)
	three := FromUint64(3)

	sum := new(Felt).Add(&two, &three)
	want := FromUint64(5)
	assert.True(t, sum.Equal(&want))

	prod := new(Felt).Mul(&two, &three)
	want = FromUint64(6)
	assert.True(t, prod.Equal(&want))

	diff := new(Felt).Sub(prod, &three)
	assert.Equal(t, 0, diff.Cmp(&three))
	assert.True(t, Zero.IsZero())
}
