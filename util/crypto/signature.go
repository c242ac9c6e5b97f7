package crypto

import (
	"crypto/ed25519"

	"github.com/anyproto/any-keys/util/strkey"
)

const SignatureSize = ed25519.SignatureSize

// Signature is an ed25519 signature: the encoded point R followed by the scalar S
type Signature [SignatureSize]byte

func (s Signature) Raw() []byte {
	return s[:]
}

func (s Signature) HRP() strkey.HRP {
	return strkey.SignatureHRP
}

// Equals compares two signatures byte by byte
func (s Signature) Equals(o Signature) bool {
	return s == o
}

// Verify is a shortcut for pub.Verify(msg, s)
func (s Signature) Verify(pub PubKey, msg []byte) bool {
	return pub.Verify(msg, s)
}

func (s Signature) String() string {
	return EncodeToString(s)
}
