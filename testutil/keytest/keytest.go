// Package keytest holds fixed keys and a ready to use config for tests.
package keytest

import (
	"encoding/hex"
	"path/filepath"

	"github.com/anyproto/any-keys/config"
	"github.com/anyproto/any-keys/keystore"
	"github.com/anyproto/any-keys/util/crypto"
)

// RFC 8032, section 7.1, test 1
const (
	SeedHex      = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	PubKeyHex    = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	SignatureHex = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"

	PrivKeyBech32   = "ed25519_sk1n4smr800l4dxpw5yft6f9mpvc3zyn3tf0vexjxts8wkqx89w0asq6u85wh"
	PubKeyBech32    = "ed25519_pk16adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqarpvg0"
	SignatureBech32 = "ed25519_sig1u4tyxqxrvzk89yyxutxgqm5z32zgwlc7hrjajaxcw0sx2gjfq924lwyzzkg2xwavcc0rjuqulx6xh5jm7hc9jka7y3j4zs2r3eapqzc2huryh"
)

// Message is the message SignatureHex was made over
var Message = []byte{}

func PrivKey() crypto.PrivKey {
	seed, err := hex.DecodeString(SeedHex)
	if err != nil {
		panic(err)
	}
	key, err := crypto.UnmarshalEd25519PrivateKey(seed)
	if err != nil {
		panic(err)
	}
	return key
}

func PubKey() crypto.PubKey {
	return PrivKey().GetPublic()
}

func Signature() crypto.Signature {
	return crypto.SignatureFromHex(SignatureHex).MustGet()
}

// FastKDF keeps argon2 cheap enough for tests
var FastKDF = keystore.KDFParams{Time: 1, Memory: 1024, Threads: 1}

// Config returns a config rooted at home with a cheap key derivation and no metric listener
func Config(home string) *config.Config {
	c := config.New(home)
	c.KeyStore = keystore.Config{
		Path: filepath.Join(home, "keys"),
		KDF:  FastKDF,
	}
	return c
}
