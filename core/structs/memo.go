package structs

import (
	"crypto/cipher"
	"crypto/sha256"
	"io"

	"github.com/NethermindEth/aap-arbitrary/core/keys"
	"github.com/NethermindEth/aap-arbitrary/encoder"
	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrMemoEncrypt = errors.New("receiver memo: encryption failed")
	ErrMemoDecrypt = errors.New("receiver memo: decryption failed")
)

var memoKDFInfo = []byte("aap receiver memo v1")

// ReceiverMemo carries a record opening encrypted to the record owner's encryption key.
type ReceiverMemo struct {
	Ephemeral  keys.EncKey
	Ciphertext []byte
}

// NewReceiverMemo encrypts ro to ro.PubKey.EncKey, drawing 32 bytes from rng for the
// ephemeral key. label is bound as associated data and must be given again on decryption.
// It fails if the owner's encryption key is a low-order point.
func NewReceiverMemo(rng io.Reader, ro *RecordOpening, label []byte) (ReceiverMemo, error) {
	eph, err := keys.GenerateEncKeyPair(rng)
	if err != nil {
		return ReceiverMemo{}, errors.Wrap(ErrMemoEncrypt, err.Error())
	}
	shared, err := eph.SharedSecret(ro.PubKey.EncKey)
	if err != nil {
		return ReceiverMemo{}, errors.Wrap(ErrMemoEncrypt, err.Error())
	}

	plaintext, err := encoder.Marshal(ro)
	if err != nil {
		return ReceiverMemo{}, errors.Wrap(ErrMemoEncrypt, err.Error())
	}

	aead, err := memoCipher(shared, eph.Public(), ro.PubKey.EncKey)
	if err != nil {
		return ReceiverMemo{}, errors.Wrap(ErrMemoEncrypt, err.Error())
	}

	var nonce [chacha20poly1305.NonceSize]byte
	return ReceiverMemo{
		Ephemeral:  eph.Public(),
		Ciphertext: aead.Seal(nil, nonce[:], plaintext, label),
	}, nil
}

// Decrypt recovers the record opening with the owner's encryption key pair.
func (m *ReceiverMemo) Decrypt(encKey *keys.EncKeyPair, label []byte) (RecordOpening, error) {
	shared, err := encKey.SharedSecret(m.Ephemeral)
	if err != nil {
		return RecordOpening{}, errors.Wrap(ErrMemoDecrypt, err.Error())
	}
	aead, err := memoCipher(shared, m.Ephemeral, encKey.Public())
	if err != nil {
		return RecordOpening{}, errors.Wrap(ErrMemoDecrypt, err.Error())
	}

	var nonce [chacha20poly1305.NonceSize]byte
	plaintext, err := aead.Open(nil, nonce[:], m.Ciphertext, label)
	if err != nil {
		return RecordOpening{}, errors.Wrap(ErrMemoDecrypt, err.Error())
	}

	var ro RecordOpening
	if err := encoder.Unmarshal(plaintext, &ro); err != nil {
		return RecordOpening{}, errors.Wrap(ErrMemoDecrypt, err.Error())
	}
	return ro, nil
}

// memoCipher derives a key unique to the ephemeral key, so a fixed nonce is never reused.
func memoCipher(shared []byte, ephemeral, recipient keys.EncKey) (cipher.AEAD, error) {
	salt := make([]byte, 0, 2*keys.EncKeySize)
	salt = append(salt, ephemeral[:]...)
	salt = append(salt, recipient[:]...)

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared, salt, memoKDFInfo), key); err != nil {
		return nil, err
	}
	return chacha20poly1305.New(key)
}
