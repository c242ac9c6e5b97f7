package crypto

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"

	"github.com/anyproto/any-keys/util/option"
	"github.com/anyproto/any-keys/util/strkey"
)

var (
	ErrInvalidKeyLength       = errors.New("invalid key length")
	ErrInvalidSignatureLength = errors.New("invalid signature length")
	ErrInvalidPoint           = errors.New("public key is not a valid curve point")
	ErrNonCanonicalSignature  = errors.New("signature scalar is not canonical")
	ErrInvalidHex             = errors.New("invalid hex string")
)

// UnmarshalEd25519PrivateKey returns a private key from its 32-byte seed.
func UnmarshalEd25519PrivateKey(data []byte) (PrivKey, error) {
	if len(data) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: expected ed25519 seed size to be %d, got %d", ErrInvalidKeyLength, ed25519.SeedSize, len(data))
	}
	return &Ed25519PrivKey{privKey: ed25519.NewKeyFromSeed(data)}, nil
}

// UnmarshalEd25519PublicKey returns a public key from input bytes.
func UnmarshalEd25519PublicKey(data []byte) (PubKey, error) {
	if len(data) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: expected ed25519 public key size to be %d, got %d", ErrInvalidKeyLength, ed25519.PublicKeySize, len(data))
	}
	if _, err := new(edwards25519.Point).SetBytes(data); err != nil {
		return nil, ErrInvalidPoint
	}
	return NewEd25519PubKey(data), nil
}

// UnmarshalSignature returns a signature from input bytes.
func UnmarshalSignature(data []byte) (sig Signature, err error) {
	if len(data) != SignatureSize {
		return sig, fmt.Errorf("%w: expected %d, got %d", ErrInvalidSignatureLength, SignatureSize, len(data))
	}
	// S must be below the group order, the same rule crypto/ed25519.Verify applies
	if _, err = edwards25519.NewScalar().SetCanonicalBytes(data[32:]); err != nil {
		return sig, ErrNonCanonicalSignature
	}
	copy(sig[:], data)
	return sig, nil
}

func DecodePrivKeyFromString(str string) (PrivKey, error) {
	raw, err := decodeString(strkey.PrivKeyHRP, str)
	if err != nil {
		return nil, err
	}
	return UnmarshalEd25519PrivateKey(raw)
}

func DecodePubKeyFromString(str string) (PubKey, error) {
	raw, err := decodeString(strkey.PubKeyHRP, str)
	if err != nil {
		return nil, err
	}
	return UnmarshalEd25519PublicKey(raw)
}

func DecodeSignatureFromString(str string) (Signature, error) {
	raw, err := decodeString(strkey.SignatureHRP, str)
	if err != nil {
		return Signature{}, err
	}
	return UnmarshalSignature(raw)
}

func DecodePrivKeyFromHex(str string) (PrivKey, error) {
	raw, err := decodeHex(str)
	if err != nil {
		return nil, err
	}
	return UnmarshalEd25519PrivateKey(raw)
}

func DecodePubKeyFromHex(str string) (PubKey, error) {
	raw, err := decodeHex(str)
	if err != nil {
		return nil, err
	}
	return UnmarshalEd25519PublicKey(raw)
}

func DecodeSignatureFromHex(str string) (Signature, error) {
	raw, err := decodeHex(str)
	if err != nil {
		return Signature{}, err
	}
	return UnmarshalSignature(raw)
}

func decodeString(hrp strkey.HRP, str string) ([]byte, error) {
	raw, err := strkey.Decode(hrp, str)
	if errors.Is(err, strkey.ErrInvalidHRP) {
		return nil, fmt.Errorf("%w: %w", ErrIncorrectKeyType, err)
	}
	return raw, err
}

func decodeHex(str string) ([]byte, error) {
	raw, err := hex.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return raw, nil
}

// PrivKeyFromBytes decodes a 32-byte seed, malformed input gives None
func PrivKeyFromBytes(data []byte) option.Option[PrivKey] {
	return option.FromResult(UnmarshalEd25519PrivateKey(data))
}

// PubKeyFromBytes decodes a 32-byte public key, malformed input gives None
func PubKeyFromBytes(data []byte) option.Option[PubKey] {
	return option.FromResult(UnmarshalEd25519PublicKey(data))
}

// SignatureFromBytes decodes a 64-byte signature, malformed input gives None
func SignatureFromBytes(data []byte) option.Option[Signature] {
	return option.FromResult(UnmarshalSignature(data))
}

// PrivKeyFromString decodes an ed25519_sk bech32 string, malformed input gives None
func PrivKeyFromString(str string) option.Option[PrivKey] {
	return option.FromResult(DecodePrivKeyFromString(str))
}

// PubKeyFromString decodes an ed25519_pk bech32 string, malformed input gives None
func PubKeyFromString(str string) option.Option[PubKey] {
	return option.FromResult(DecodePubKeyFromString(str))
}

// SignatureFromString decodes an ed25519_sig bech32 string, malformed input gives None
func SignatureFromString(str string) option.Option[Signature] {
	return option.FromResult(DecodeSignatureFromString(str))
}

func PrivKeyFromHex(str string) option.Option[PrivKey] {
	return option.FromResult(DecodePrivKeyFromHex(str))
}

func PubKeyFromHex(str string) option.Option[PubKey] {
	return option.FromResult(DecodePubKeyFromHex(str))
}

func SignatureFromHex(str string) option.Option[Signature] {
	return option.FromResult(DecodeSignatureFromHex(str))
}
