package crypto

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

const fingerprintSize = 10

// Fingerprint returns a short hex identifier of the public key, safe to show in logs
func Fingerprint(pub PubKey) string {
	sum := blake3.Sum256(pub.Raw())
	return hex.EncodeToString(sum[:fingerprintSize])
}
