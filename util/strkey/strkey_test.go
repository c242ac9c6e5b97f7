package strkey

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 8032 test vector 1
const (
	testPubHex    = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	testPubBech32 = "ed25519_pk16adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqarpvg0"
	testSigHex    = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
	testSigBech32 = "ed25519_sig1u4tyxqxrvzk89yyxutxgqm5z32zgwlc7hrjajaxcw0sx2gjfq924lwyzzkg2xwavcc0rjuqulx6xh5jm7hc9jka7y3j4zs2r3eapqzc2huryh"
)

func TestEncode(t *testing.T) {
	pub, _ := hex.DecodeString(testPubHex)
	str, err := Encode(PubKeyHRP, pub)
	require.NoError(t, err)
	assert.Equal(t, testPubBech32, str)

	sig, _ := hex.DecodeString(testSigHex)
	str, err = Encode(SignatureHRP, sig)
	require.NoError(t, err)
	assert.Equal(t, testSigBech32, str)
	assert.Greater(t, len(str), 90)

	assert.Equal(t, "ed25519_pk1lu7x7nnc", MustEncode(PubKeyHRP, []byte{0xff}))
	assert.Equal(t, "ed25519_pk1ft8hv2", MustEncode(PubKeyHRP, nil))
}

func TestDecode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		res, err := Decode(PubKeyHRP, testPubBech32)
		require.NoError(t, err)
		assert.Equal(t, testPubHex, hex.EncodeToString(res))

		res, err = Decode(SignatureHRP, testSigBech32)
		require.NoError(t, err)
		assert.Equal(t, testSigHex, hex.EncodeToString(res))
	})
	t.Run("upper case", func(t *testing.T) {
		res, err := Decode(PubKeyHRP, strings.ToUpper(testPubBech32))
		require.NoError(t, err)
		assert.Equal(t, testPubHex, hex.EncodeToString(res))
	})
	t.Run("mixed case", func(t *testing.T) {
		_, err := Decode(PubKeyHRP, "ED25519_pk"+testPubBech32[len("ed25519_pk"):])
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})
	t.Run("wrong hrp", func(t *testing.T) {
		_, err := Decode(SignatureHRP, testPubBech32)
		require.ErrorIs(t, err, ErrInvalidHRP)
	})
	t.Run("corrupted checksum", func(t *testing.T) {
		corrupted := testPubBech32[:len(testPubBech32)-1] + "q"
		_, err := Decode(PubKeyHRP, corrupted)
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})
	t.Run("corrupted payload", func(t *testing.T) {
		b := []byte(testSigBech32)
		i := len("ed25519_sig1") + 10
		if b[i] == 'q' {
			b[i] = 'p'
		} else {
			b[i] = 'q'
		}
		_, err := Decode(SignatureHRP, string(b))
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})
	t.Run("non-zero padding", func(t *testing.T) {
		_, err := Decode(PubKeyHRP, "ed25519_pk1lars2xw2")
		require.ErrorIs(t, err, ErrInvalidPayload)
	})
	t.Run("garbage", func(t *testing.T) {
		for _, s := range []string{"", "ed25519_pk", "not bech32 at all", "ed25519_pk1bbbbbbbb"} {
			_, err := Decode(PubKeyHRP, s)
			assert.Error(t, err, s)
		}
	})
}

func TestDecodeAny(t *testing.T) {
	hrp, data, err := DecodeAny(testSigBech32)
	require.NoError(t, err)
	assert.Equal(t, SignatureHRP, hrp)
	assert.Len(t, data, 64)
	assert.True(t, hrp.IsKnown())
	assert.False(t, HRP("addr").IsKnown())
}
