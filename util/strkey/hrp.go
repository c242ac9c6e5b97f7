package strkey

// HRP is the human-readable part of a bech32 string, it tags the type of the payload
type HRP string

// Tags match the Cardano serialization library
const (
	PrivKeyHRP   HRP = "ed25519_sk"
	PubKeyHRP    HRP = "ed25519_pk"
	SignatureHRP HRP = "ed25519_sig"
)

// KnownHRPs lists every tag this package is able to produce
var KnownHRPs = []HRP{PrivKeyHRP, PubKeyHRP, SignatureHRP}

// IsKnown reports whether the tag is one of KnownHRPs
func (h HRP) IsKnown() bool {
	for _, k := range KnownHRPs {
		if k == h {
			return true
		}
	}
	return false
}
