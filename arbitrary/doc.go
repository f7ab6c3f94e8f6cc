// Package arbitrary builds well-formed payment-system values out of a flat byte stream, for
// use by fuzz targets and property tests.
//
// A harness wraps its input in an [Unstructured] and asks for a wrapper type:
//
//	u := arbitrary.NewUnstructured(data)
//	memo, err := arbitrary.Generate[arbitrary.ReceiverMemo](u)
//	if err != nil {
//		return // stream too short, or the memo could not be built
//	}
//	use(memo.Unwrap())
//
// Every wrapper reads its randomness from the stream: primitive wrappers consume a 32-byte
// seed and expand it with ChaCha20, and composite wrappers consume their constituents from
// the same stream in order. The value produced is therefore a pure function of the bytes
// read, so a crashing input replays exactly.
//
// Byte cost per wrapper:
//
//	Nullifier, BaseField, KeyPair, UserKeyPair, UserAddress   32
//	RecordOpening                                             33 (seed, freeze selector)
//	ReceiverMemo                                              65 (seed, RecordOpening)
//	MerkleTree                                                480 (15 BaseField leaves)
//	ShapedMerkleTree                                          2 + 32 per leaf
package arbitrary
