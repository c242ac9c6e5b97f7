package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/anyproto/any-keys/util/strkey"
)

// Ed25519PrivKey is an ed25519 private key.
type Ed25519PrivKey struct {
	// seed followed by the public key, as crypto/ed25519 stores it
	privKey ed25519.PrivateKey
}

// Ed25519PubKey is an ed25519 public key.
type Ed25519PubKey struct {
	pubKey ed25519.PublicKey
}

// NewEd25519PrivKey wraps a crypto/ed25519 private key, the input is copied
func NewEd25519PrivKey(privKey ed25519.PrivateKey) PrivKey {
	return &Ed25519PrivKey{privKey: bytes.Clone(privKey)}
}

// NewEd25519PubKey wraps a crypto/ed25519 public key, the input is copied
func NewEd25519PubKey(pubKey ed25519.PublicKey) PubKey {
	return &Ed25519PubKey{pubKey: bytes.Clone(pubKey)}
}

func GenerateRandomEd25519KeyPair() (PrivKey, PubKey, error) {
	return GenerateEd25519Key(rand.Reader)
}

// GenerateEd25519Key generates a new ed25519 private and public key pair.
func GenerateEd25519Key(src io.Reader) (PrivKey, PubKey, error) {
	pub, priv, err := ed25519.GenerateKey(src)
	if err != nil {
		return nil, nil, err
	}

	return &Ed25519PrivKey{privKey: priv},
		&Ed25519PubKey{pubKey: pub},
		nil
}

// NewPrivKey generates a new random private key.
// It panics when the system random source fails.
func NewPrivKey() PrivKey {
	priv, _, err := GenerateRandomEd25519KeyPair()
	if err != nil {
		panic(fmt.Errorf("crypto: can't read from the random source: %w", err))
	}
	return priv
}

// Raw returns the 32-byte seed of the key.
func (k *Ed25519PrivKey) Raw() []byte {
	return k.privKey.Seed()
}

func (k *Ed25519PrivKey) HRP() strkey.HRP {
	return strkey.PrivKeyHRP
}

func (k *Ed25519PrivKey) pubKeyBytes() []byte {
	return k.privKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:]
}

// Equals compares two ed25519 private keys.
func (k *Ed25519PrivKey) Equals(o Key) bool {
	edk, ok := o.(*Ed25519PrivKey)
	if !ok {
		return KeyEquals(k, o)
	}

	return subtle.ConstantTimeCompare(k.privKey, edk.privKey) == 1
}

// GetPublic returns an ed25519 public key from a private key.
func (k *Ed25519PrivKey) GetPublic() PubKey {
	return &Ed25519PubKey{pubKey: k.pubKeyBytes()}
}

// Sign returns a signature from an input message.
func (k *Ed25519PrivKey) Sign(msg []byte) (sig Signature) {
	copy(sig[:], ed25519.Sign(k.privKey, msg))
	return
}

// Raw public key bytes.
func (k *Ed25519PubKey) Raw() []byte {
	return bytes.Clone(k.pubKey)
}

func (k *Ed25519PubKey) HRP() strkey.HRP {
	return strkey.PubKeyHRP
}

// Equals compares two ed25519 public keys.
func (k *Ed25519PubKey) Equals(o Key) bool {
	edk, ok := o.(*Ed25519PubKey)
	if !ok {
		return KeyEquals(k, o)
	}

	return bytes.Equal(k.pubKey, edk.pubKey)
}

// Verify checks a signature against the input data.
func (k *Ed25519PubKey) Verify(data []byte, sig Signature) bool {
	if len(k.pubKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(k.pubKey, data, sig[:])
}

func (k *Ed25519PubKey) String() string {
	return EncodeToString(k)
}
