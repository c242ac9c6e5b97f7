package keystore

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	envelopeVersion = 1
	saltSize        = 16
)

var errCorruptedEnvelope = errors.New("corrupted key envelope")

// KDFParams are argon2id tunables, stored next to every sealed key
type KDFParams struct {
	Time    uint32 `yaml:"time"`
	Memory  uint32 `yaml:"memory"` // KiB
	Threads uint8  `yaml:"threads"`
}

func (p KDFParams) withDefaults() KDFParams {
	if p.Time == 0 {
		p.Time = 1
	}
	if p.Memory == 0 {
		p.Memory = 64 * 1024
	}
	if p.Threads == 0 {
		p.Threads = 4
	}
	return p
}

func (p KDFParams) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, p.Time, p.Memory, p.Threads, chacha20poly1305.KeySize)
}

// envelope is the sealed part of a key file
type envelope struct {
	V      int       `yaml:"v"`
	KDF    KDFParams `yaml:"kdf"`
	Salt   string    `yaml:"salt"`
	Nonce  string    `yaml:"nonce"`
	Cipher string    `yaml:"cipher"`
}

// seal encrypts secret under a key derived from passphrase, ad is authenticated but not encrypted
func seal(passphrase string, secret, ad []byte, params KDFParams) (env envelope, err error) {
	salt := make([]byte, saltSize)
	if _, err = rand.Read(salt); err != nil {
		return
	}
	key := params.deriveKey(passphrase, salt)
	defer wipe(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return
	}
	return envelope{
		V:      envelopeVersion,
		KDF:    params,
		Salt:   hex.EncodeToString(salt),
		Nonce:  hex.EncodeToString(nonce),
		Cipher: hex.EncodeToString(aead.Seal(nil, nonce, secret, ad)),
	}, nil
}

// open reverses seal, the caller must wipe the result
func open(passphrase string, env envelope, ad []byte) ([]byte, error) {
	if env.V > envelopeVersion {
		return nil, fmt.Errorf("unsupported envelope version %d", env.V)
	}
	salt, err := hex.DecodeString(env.Salt)
	if err != nil {
		return nil, errCorruptedEnvelope
	}
	nonce, err := hex.DecodeString(env.Nonce)
	if err != nil || len(nonce) != chacha20poly1305.NonceSize {
		return nil, errCorruptedEnvelope
	}
	ct, err := hex.DecodeString(env.Cipher)
	if err != nil {
		return nil, errCorruptedEnvelope
	}
	key := env.KDF.withDefaults().deriveKey(passphrase, salt)
	defer wipe(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, nonce, ct, ad)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
