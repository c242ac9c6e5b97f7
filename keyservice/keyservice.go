//go:generate mockgen -destination mock_keyservice/mock_keyservice.go github.com/anyproto/any-keys/keyservice Service
package keyservice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/anyproto/any-keys/app"
	"github.com/anyproto/any-keys/app/filelog"
	"github.com/anyproto/any-keys/app/logger"
	"github.com/anyproto/any-keys/keystore"
	"github.com/anyproto/any-keys/metric"
	"github.com/anyproto/any-keys/util/crypto"
	"github.com/anyproto/any-keys/util/option"
)

const CName = "common.keyservice"

var log = logger.NewNamed(CName)

var (
	ErrUnrecognized = errors.New("input is not a key or a signature")
	ErrAmbiguousKey = errors.New("32 bytes may be a private or a public key")
)

func New() Service {
	return new(service)
}

type Service interface {
	// NewKey generates a random private key
	NewKey() crypto.PrivKey
	// NewMnemonic generates a phrase of the given word count
	NewMnemonic(words int) (crypto.Mnemonic, error)
	// DeriveKeys parses the phrase and derives keys for the account index
	DeriveKeys(words string, index uint32) (crypto.DerivationResult, error)

	Sign(key crypto.PrivKey, msg []byte) crypto.Signature
	Verify(pub crypto.PubKey, msg []byte, sig crypto.Signature) bool

	// ParsePrivKey accepts bech32 or hex input
	ParsePrivKey(str string) option.Option[crypto.PrivKey]
	// ParsePubKey accepts bech32 or hex input
	ParsePubKey(str string) option.Option[crypto.PubKey]
	// ParseSignature accepts bech32 or hex input
	ParseSignature(str string) option.Option[crypto.Signature]
	// Inspect recognizes any key or signature in bech32 or hex form
	Inspect(str string) option.Option[Info]
	// Convert re-encodes a key or signature, as resolves hex input of 32 bytes
	Convert(str string, to Encoding, as Kind) (string, error)

	StoreKey(name string, key crypto.PrivKey, passphrase string) (keystore.Entry, error)
	LoadKey(name, passphrase string) (crypto.PrivKey, error)
	KeyEntry(name string) (keystore.Entry, error)
	ListKeys() ([]keystore.Entry, error)
	DeleteKey(name string) error

	app.Component
}

type service struct {
	keyStore keystore.KeyStore
	audit    filelog.FileLogger
	metrics  *metrics
}

func (s *service) Init(a *app.App) (err error) {
	s.keyStore = a.MustComponent(keystore.CName).(keystore.KeyStore)
	s.audit, _ = a.Component(filelog.CName).(filelog.FileLogger)
	s.metrics = newMetrics()
	if m, ok := a.Component(metric.CName).(metric.Metric); ok {
		if err = s.metrics.register(m.Registry()); err != nil {
			return fmt.Errorf("can't register keyservice metrics: %w", err)
		}
	}
	return nil
}

func (s *service) Name() (name string) {
	return CName
}

func (s *service) NewKey() crypto.PrivKey {
	key := crypto.NewPrivKey()
	s.metrics.op(opGenerate)
	fp := metric.Fingerprint(crypto.Fingerprint(key.GetPublic()))
	log.Debug("key generated", fp)
	s.auditLog(opGenerate, fp)
	return key
}

func (s *service) NewMnemonic(words int) (crypto.Mnemonic, error) {
	m, err := crypto.NewMnemonicGenerator().WithWordCount(words)
	if err != nil {
		return "", err
	}
	s.metrics.op(opMnemonic)
	return m, nil
}

func (s *service) DeriveKeys(words string, index uint32) (res crypto.DerivationResult, err error) {
	start := time.Now()
	m, err := crypto.ParseMnemonic(words)
	if err != nil {
		return
	}
	if res, err = m.DeriveKeys(index); err != nil {
		return
	}
	s.metrics.op(opDerive)
	s.auditLog(opDerive, zap.Uint32("index", index), metric.Fingerprint(crypto.Fingerprint(res.Identity.GetPublic())))
	log.Debug("keys derived",
		zap.Uint32("index", index),
		metric.Fingerprint(crypto.Fingerprint(res.Identity.GetPublic())),
		metric.TotalDur(time.Since(start)),
	)
	return
}

func (s *service) Sign(key crypto.PrivKey, msg []byte) crypto.Signature {
	s.metrics.op(opSign)
	s.auditLog(opSign, metric.Fingerprint(crypto.Fingerprint(key.GetPublic())), zap.Int("size", len(msg)))
	return key.Sign(msg)
}

func (s *service) Verify(pub crypto.PubKey, msg []byte, sig crypto.Signature) bool {
	s.metrics.op(opVerify)
	ok := pub.Verify(msg, sig)
	s.metrics.verification(ok)
	if !ok {
		log.Debug("signature rejected", metric.Fingerprint(crypto.Fingerprint(pub)))
	}
	return ok
}

func (s *service) ParsePrivKey(str string) option.Option[crypto.PrivKey] {
	return checkParsed(s, KindPrivKey, str, crypto.DecodePrivKeyFromString, crypto.DecodePrivKeyFromHex)
}

func (s *service) ParsePubKey(str string) option.Option[crypto.PubKey] {
	return checkParsed(s, KindPubKey, str, crypto.DecodePubKeyFromString, crypto.DecodePubKeyFromHex)
}

func (s *service) ParseSignature(str string) option.Option[crypto.Signature] {
	return checkParsed(s, KindSignature, str, crypto.DecodeSignatureFromString, crypto.DecodeSignatureFromHex)
}

func (s *service) StoreKey(name string, key crypto.PrivKey, passphrase string) (keystore.Entry, error) {
	e, err := s.keyStore.Put(name, key, passphrase)
	if err != nil {
		return e, err
	}
	s.metrics.op(opStore)
	s.auditLog(opStore, metric.KeyName(name), metric.Fingerprint(crypto.Fingerprint(e.PubKey)))
	return e, nil
}

func (s *service) LoadKey(name, passphrase string) (crypto.PrivKey, error) {
	key, err := s.keyStore.Get(name, passphrase)
	if err != nil {
		log.Warn("can't load key", metric.KeyName(name), zap.Error(err))
		s.auditLog(opLoad+" failed", metric.KeyName(name), zap.Error(err))
		return nil, err
	}
	s.metrics.op(opLoad)
	s.auditLog(opLoad, metric.KeyName(name))
	return key, nil
}

func (s *service) KeyEntry(name string) (keystore.Entry, error) {
	return s.keyStore.Entry(name)
}

func (s *service) ListKeys() ([]keystore.Entry, error) {
	return s.keyStore.List()
}

func (s *service) DeleteKey(name string) error {
	if err := s.keyStore.Delete(name); err != nil {
		return err
	}
	s.metrics.op(opDelete)
	s.auditLog(opDelete, metric.KeyName(name))
	return nil
}

func (s *service) auditLog(msg string, fields ...zap.Field) {
	if s.audit == nil {
		return
	}
	s.audit.DoLog(func(l *zap.Logger) {
		l.Info(msg, fields...)
	})
}

func checkParsed[T any](s *service, kind Kind, str string, fromString, fromHex func(string) (T, error)) option.Option[T] {
	v, err := parse(str, fromString, fromHex)
	if err != nil {
		s.metrics.decodeFailure(kind)
		log.Debug("can't parse input", zap.String("kind", kind.String()), zap.Error(err))
		return option.None[T]()
	}
	return option.Some(v)
}

func parse[T any](str string, fromString, fromHex func(string) (T, error)) (T, error) {
	str = strings.TrimSpace(str)
	if isHex(str) {
		return fromHex(str)
	}
	return fromString(str)
}

func isHex(str string) bool {
	if str == "" || len(str)%2 != 0 {
		return false
	}
	for _, c := range str {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
