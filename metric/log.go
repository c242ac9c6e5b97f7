package metric

import (
	"time"

	"go.uber.org/zap"
)

func KeyName(val string) zap.Field {
	return zap.String("keyName", val)
}

// Fingerprint is the log-safe form of a public key
func Fingerprint(val string) zap.Field {
	return zap.String("fingerprint", val)
}

func TotalDur(val time.Duration) zap.Field {
	return zap.Int64("totalMs", val.Milliseconds())
}
