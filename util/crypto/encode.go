package crypto

import (
	"encoding/hex"

	"github.com/anyproto/any-keys/util/strkey"
)

// EncodeToString returns the bech32 form of the value
func EncodeToString[T Encodable](v T) string {
	return strkey.MustEncode(v.HRP(), v.Raw())
}

// EncodeToHex returns the lower-case hex form of the raw bytes
func EncodeToHex[T Encodable](v T) string {
	return hex.EncodeToString(v.Raw())
}
