package keys_test

import (
	"bytes"
	"testing"

	"github.com/NethermindEth/aap-arbitrary/core/felt"
	"github.com/NethermindEth/aap-arbitrary/core/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(b byte, n int) *bytes.Reader {
	return bytes.NewReader(bytes.Repeat([]byte{b}, n))
}

func TestGenerateKeyPair(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a, err := keys.GenerateKeyPair(seeded(1, 32))
		require.NoError(t, err)
		b, err := keys.GenerateKeyPair(seeded(1, 32))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("different seeds", func(t *testing.T) {
		a, err := keys.GenerateKeyPair(seeded(1, 32))
		require.NoError(t, err)
		b, err := keys.GenerateKeyPair(seeded(2, 32))
		require.NoError(t, err)
		assert.NotEqual(t, a.VerKey(), b.VerKey())
	})

	t.Run("empty reader", func(t *testing.T) {
		_, err := keys.GenerateKeyPair(bytes.NewReader(nil))
		assert.Error(t, err)
	})
}

func TestSignVerify(t *testing.T) {
	kp, err := keys.GenerateKeyPair(seeded(7, 32))
	require.NoError(t, err)
	vk := kp.VerKey()

	msg := []*felt.Felt{new(felt.Felt).SetUint64(1), new(felt.Felt).SetUint64(2)}
	sig, err := kp.Sign(msg...)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, vk.Verify(sig, msg...))
	})

	t.Run("wrong message", func(t *testing.T) {
		assert.ErrorIs(t, vk.Verify(sig, msg[0]), keys.ErrBadSignature)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := keys.GenerateKeyPair(seeded(8, 32))
		require.NoError(t, err)
		otherVK := other.VerKey()
		assert.ErrorIs(t, otherVK.Verify(sig, msg...), keys.ErrBadSignature)
	})
}

func TestKeyPairBinary(t *testing.T) {
	kp, err := keys.GenerateKeyPair(seeded(3, 32))
	require.NoError(t, err)

	b, err := kp.MarshalBinary()
	require.NoError(t, err)

	var back keys.KeyPair
	require.NoError(t, back.UnmarshalBinary(b))
	assert.Equal(t, kp.VerKey(), back.VerKey())

	assert.ErrorIs(t, back.UnmarshalBinary(b[:10]), keys.ErrInvalidKey)
}

func TestVerKeyBinary(t *testing.T) {
	kp, err := keys.GenerateKeyPair(seeded(4, 32))
	require.NoError(t, err)
	vk := kp.VerKey()

	b, err := vk.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, keys.VerKeySize)

	var back keys.VerKey
	require.NoError(t, back.UnmarshalBinary(b))
	assert.Equal(t, vk, back)
}

func TestEncKeyPair(t *testing.T) {
	alice, err := keys.GenerateEncKeyPair(seeded(5, 32))
	require.NoError(t, err)
	bob, err := keys.GenerateEncKeyPair(seeded(6, 32))
	require.NoError(t, err)

	t.Run("shared secret agrees", func(t *testing.T) {
		ab, err := alice.SharedSecret(bob.Public())
		require.NoError(t, err)
		ba, err := bob.SharedSecret(alice.Public())
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
	})

	t.Run("low order peer", func(t *testing.T) {
		_, err := alice.SharedSecret(keys.EncKey{})
		assert.Error(t, err)
	})

	t.Run("binary round trip", func(t *testing.T) {
		b, err := alice.MarshalBinary()
		require.NoError(t, err)
		var back keys.EncKeyPair
		require.NoError(t, back.UnmarshalBinary(b))
		assert.Equal(t, alice, back)

		b[len(b)-1] ^= 1
		assert.ErrorIs(t, back.UnmarshalBinary(b), keys.ErrInvalidKey)
	})
}

func TestUserKeyPair(t *testing.T) {
	ukp, err := keys.GenerateUserKeyPair(seeded(9, 64))
	require.NoError(t, err)

	t.Run("consumes 64 bytes", func(t *testing.T) {
		_, err := keys.GenerateUserKeyPair(seeded(9, 63))
		assert.Error(t, err)
	})

	t.Run("address is the address verification key", func(t *testing.T) {
		addr := ukp.Address()
		assert.Equal(t, ukp.AddrKeyPair().VerKey(), *addr.VerKey())
		assert.Equal(t, addr, ukp.PubKey().Address)
		assert.Equal(t, ukp.EncKeyPair().Public(), ukp.PubKey().EncKey)
	})

	t.Run("nullifier key is stable", func(t *testing.T) {
		again, err := keys.GenerateUserKeyPair(seeded(9, 64))
		require.NoError(t, err)
		assert.Equal(t, ukp.NullifierKey(), again.NullifierKey())
	})

	t.Run("binary round trip", func(t *testing.T) {
		b, err := ukp.MarshalBinary()
		require.NoError(t, err)
		var back keys.UserKeyPair
		require.NoError(t, back.UnmarshalBinary(b))
		assert.Equal(t, ukp.PubKey(), back.PubKey())
		assert.Equal(t, ukp.NullifierKey(), back.NullifierKey())
	})
}
