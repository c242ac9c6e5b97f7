// Package crypto implements Ed25519 key material: generation, signing, verification
// and lossless encoding of keys and signatures as raw bytes, hex and bech32 strings.
//
// Every decoder comes in two flavours: UnmarshalX/DecodeX return an error describing
// the problem, XFrom... wrappers return option.Option and never fail loudly. Keys and
// signatures are immutable and safe for concurrent use.
package crypto

import (
	"crypto/subtle"
	"errors"

	"github.com/anyproto/any-keys/util/strkey"
)

var ErrIncorrectKeyType = errors.New("incorrect key type")

// Encodable is implemented by every value that has a bech32 form
type Encodable interface {
	// Raw returns the raw bytes of the value
	Raw() []byte
	// HRP returns the bech32 human-readable part for the value type
	HRP() strkey.HRP
}

// Key is an abstract interface for all types of keys
type Key interface {
	Encodable

	// Equals returns if the keys are equal
	Equals(Key) bool
}

// PrivKey is an interface for keys that should be used for signing
type PrivKey interface {
	Key

	// Sign signs the raw bytes and returns the signature
	Sign(msg []byte) Signature
	// GetPublic returns the associated public key
	GetPublic() PubKey
}

// PubKey is the public key used to verify the signatures
type PubKey interface {
	Key

	// Verify verifies the signed message and the signature
	Verify(data []byte, sig Signature) bool
	// String returns the bech32 representation of the key
	String() string
}

func KeyEquals(k1, k2 Key) bool {
	if k1.HRP() != k2.HRP() {
		return false
	}
	return subtle.ConstantTimeCompare(k1.Raw(), k2.Raw()) == 1
}
