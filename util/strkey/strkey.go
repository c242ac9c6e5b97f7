// Package strkey encodes binary payloads as bech32 strings tagged with a human-readable part.
//
// Payloads are converted from 8-bit to 5-bit groups before encoding. Decoding does not
// apply the BIP-173 90 character limit because 64-byte signatures do not fit in it.
package strkey

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/bech32"
)

var (
	ErrInvalidHRP      = errors.New("unexpected human-readable part")
	ErrInvalidEncoding = errors.New("invalid bech32 encoding")
	ErrInvalidPayload  = errors.New("invalid bech32 payload")
)

// Encode returns the bech32 representation of src tagged with hrp
func Encode(hrp HRP, src []byte) (string, error) {
	words, err := bech32.ConvertBits(src, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return bech32.Encode(string(hrp), words)
}

// MustEncode is like Encode but panics on error
// Any byte slice converts to 5-bit groups, so it only panics on a broken hrp
func MustEncode(hrp HRP, src []byte) string {
	str, err := Encode(hrp, src)
	if err != nil {
		panic(err)
	}
	return str
}

// Decode decodes src and checks that its human-readable part equals expected
func Decode(expected HRP, src string) ([]byte, error) {
	hrp, data, err := DecodeAny(src)
	if err != nil {
		return nil, err
	}
	if hrp != expected {
		return nil, fmt.Errorf("%w: expected '%s', got '%s'", ErrInvalidHRP, expected, hrp)
	}
	return data, nil
}

// DecodeAny decodes src and returns its human-readable part along with the payload
func DecodeAny(src string) (HRP, []byte, error) {
	hrp, words, err := bech32.DecodeNoLimit(src)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	// non-zero padding bits are rejected, so every payload has a single valid encoding
	data, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return HRP(hrp), data, nil
}
