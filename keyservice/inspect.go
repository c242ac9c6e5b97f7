package keyservice

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/anyproto/any-keys/util/crypto"
	"github.com/anyproto/any-keys/util/option"
	"github.com/anyproto/any-keys/util/strkey"
)

type Kind int

const (
	// KindKey is a 32-byte hex value that may be either a private or a public key
	KindKey Kind = iota
	KindPrivKey
	KindPubKey
	KindSignature
)

func (k Kind) String() string {
	switch k {
	case KindPrivKey:
		return "private key"
	case KindPubKey:
		return "public key"
	case KindSignature:
		return "signature"
	default:
		return "key"
	}
}

// HRP returns the bech32 tag of the kind, empty for KindKey
func (k Kind) HRP() strkey.HRP {
	switch k {
	case KindPrivKey:
		return strkey.PrivKeyHRP
	case KindPubKey:
		return strkey.PubKeyHRP
	case KindSignature:
		return strkey.SignatureHRP
	default:
		return ""
	}
}

type Encoding string

const (
	EncodingBech32 Encoding = "bech32"
	EncodingHex    Encoding = "hex"
	// EncodingBase58 is output only, it carries no type tag
	EncodingBase58 Encoding = "base58"
)

func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(s)); e {
	case EncodingBech32, EncodingHex, EncodingBase58:
		return e, nil
	}
	return "", fmt.Errorf("unknown encoding %q", s)
}

// Info describes a recognized key or signature
type Info struct {
	Kind     Kind
	Encoding Encoding
	Raw      []byte
}

// Encode returns the value in the given encoding
func (i Info) Encode(to Encoding) (string, error) {
	switch to {
	case EncodingHex:
		return hex.EncodeToString(i.Raw), nil
	case EncodingBase58:
		return base58.Encode(i.Raw), nil
	}
	if i.Kind == KindKey {
		return "", ErrAmbiguousKey
	}
	return strkey.Encode(i.Kind.HRP(), i.Raw)
}

func (s *service) Inspect(str string) option.Option[Info] {
	info, err := inspect(str)
	if err != nil {
		s.metrics.decodeFailure(KindKey)
		return option.None[Info]()
	}
	return option.Some(info)
}

func (s *service) Convert(str string, to Encoding, as Kind) (string, error) {
	info, err := inspect(str)
	if err != nil {
		s.metrics.decodeFailure(KindKey)
		return "", err
	}
	if info.Kind == KindKey && as != KindKey {
		if info, err = classify(as, info.Raw, EncodingHex); err != nil {
			return "", err
		}
	}
	return info.Encode(to)
}

func inspect(str string) (Info, error) {
	str = strings.TrimSpace(str)
	if isHex(str) {
		raw, err := hex.DecodeString(str)
		if err != nil {
			return Info{}, err
		}
		switch len(raw) {
		case crypto.SignatureSize:
			return classify(KindSignature, raw, EncodingHex)
		case 32:
			return Info{Kind: KindKey, Encoding: EncodingHex, Raw: raw}, nil
		}
		return Info{}, ErrUnrecognized
	}
	hrp, raw, err := strkey.DecodeAny(str)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrUnrecognized, err)
	}
	switch hrp {
	case strkey.PrivKeyHRP:
		return classify(KindPrivKey, raw, EncodingBech32)
	case strkey.PubKeyHRP:
		return classify(KindPubKey, raw, EncodingBech32)
	case strkey.SignatureHRP:
		return classify(KindSignature, raw, EncodingBech32)
	}
	return Info{}, fmt.Errorf("%w: unknown prefix '%s'", ErrUnrecognized, hrp)
}

// classify checks raw against the rules of kind
func classify(kind Kind, raw []byte, enc Encoding) (info Info, err error) {
	switch kind {
	case KindPrivKey:
		_, err = crypto.UnmarshalEd25519PrivateKey(raw)
	case KindPubKey:
		_, err = crypto.UnmarshalEd25519PublicKey(raw)
	case KindSignature:
		_, err = crypto.UnmarshalSignature(raw)
	default:
		err = ErrAmbiguousKey
	}
	if err != nil {
		return
	}
	return Info{Kind: kind, Encoding: enc, Raw: raw}, nil
}
