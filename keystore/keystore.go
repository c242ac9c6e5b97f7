// Package keystore keeps named ed25519 private keys on disk, one YAML file per key,
// each sealed with a passphrase.
package keystore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/anyproto/any-keys/app"
	"github.com/anyproto/any-keys/app/logger"
	"github.com/anyproto/any-keys/util/crypto"
)

const CName = "common.keystore"

const fileExt = ".yml"

var log = logger.NewNamed(CName)

var (
	ErrNotFound         = errors.New("key not found")
	ErrAlreadyExists    = errors.New("key already exists")
	ErrInvalidName      = errors.New("invalid key name")
	ErrWrongPassphrase  = errors.New("wrong passphrase or corrupted key")
	ErrEmptyPassphrase  = errors.New("empty passphrase")
	ErrKeyMismatch      = errors.New("stored public key does not match the private key")
	ErrStoreUnavailable = errors.New("keystore path is not configured")
)

var nameRe = regexp.MustCompile(`^[a-zA-Z0-9_-][a-zA-Z0-9_.-]{0,63}$`)

type Config struct {
	Path string    `yaml:"path"`
	KDF  KDFParams `yaml:"kdf"`
}

type configSource interface {
	GetKeyStore() Config
}

// Entry describes a stored key without its secret part
type Entry struct {
	Id      string
	Name    string
	PubKey  crypto.PubKey
	Created time.Time
}

type KeyStore interface {
	// Put seals key under passphrase and stores it as name
	Put(name string, key crypto.PrivKey, passphrase string) (Entry, error)
	// Get opens the named key
	Get(name, passphrase string) (crypto.PrivKey, error)
	// Entry returns the public part of the named key, no passphrase needed
	Entry(name string) (Entry, error)
	// List returns all entries sorted by name
	List() ([]Entry, error)
	Delete(name string) error
	app.Component
}

func New() KeyStore {
	return new(keyStore)
}

// NewWithConfig returns a keystore usable without an app
func NewWithConfig(conf Config) (KeyStore, error) {
	ks := new(keyStore)
	return ks, ks.configure(conf)
}

type keyFile struct {
	Id       string `yaml:"id"`
	Name     string `yaml:"name"`
	PubKey   string `yaml:"pubKey"`
	Created  string `yaml:"created"`
	envelope `yaml:",inline"`
}

func (f keyFile) entry() (e Entry, err error) {
	pub, err := crypto.DecodePubKeyFromString(f.PubKey)
	if err != nil {
		return e, fmt.Errorf("key %q: %w", f.Name, err)
	}
	created, err := time.Parse(time.RFC3339, f.Created)
	if err != nil {
		return e, fmt.Errorf("key %q: bad creation time: %w", f.Name, err)
	}
	return Entry{Id: f.Id, Name: f.Name, PubKey: pub, Created: created}, nil
}

type keyStore struct {
	path string
	kdf  KDFParams
	mu   sync.RWMutex
}

func (ks *keyStore) Init(a *app.App) (err error) {
	return ks.configure(a.MustComponent("config").(configSource).GetKeyStore())
}

func (ks *keyStore) Name() (name string) {
	return CName
}

func (ks *keyStore) configure(conf Config) error {
	if conf.Path == "" {
		return ErrStoreUnavailable
	}
	ks.path = conf.Path
	ks.kdf = conf.KDF.withDefaults()
	return nil
}

func (ks *keyStore) Put(name string, key crypto.PrivKey, passphrase string) (e Entry, err error) {
	if err = validateName(name); err != nil {
		return
	}
	if passphrase == "" {
		return e, ErrEmptyPassphrase
	}
	ks.mu.Lock()
	defer ks.mu.Unlock()

	fileName := ks.fileName(name)
	if _, err = os.Stat(fileName); err == nil {
		return e, ErrAlreadyExists
	} else if !errors.Is(err, os.ErrNotExist) {
		return e, err
	}
	if err = os.MkdirAll(ks.path, 0o700); err != nil {
		return
	}

	pubKey := key.GetPublic().String()
	seed := key.Raw()
	defer wipe(seed)
	env, err := seal(passphrase, seed, []byte(pubKey), ks.kdf)
	if err != nil {
		return
	}
	f := keyFile{
		Id:       uuid.NewString(),
		Name:     name,
		PubKey:   pubKey,
		Created:  time.Now().UTC().Format(time.RFC3339),
		envelope: env,
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return
	}
	if err = writeFile(fileName, data); err != nil {
		return
	}
	log.Info("key stored", zap.String("name", name), zap.String("id", f.Id), zap.String("fingerprint", crypto.Fingerprint(key.GetPublic())))
	return f.entry()
}

func (ks *keyStore) Get(name, passphrase string) (crypto.PrivKey, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	f, err := ks.readFile(name)
	if err != nil {
		return nil, err
	}
	seed, err := open(passphrase, f.envelope, []byte(f.PubKey))
	if err != nil {
		return nil, err
	}
	defer wipe(seed)
	key, err := crypto.UnmarshalEd25519PrivateKey(seed)
	if err != nil {
		return nil, err
	}
	if key.GetPublic().String() != f.PubKey {
		return nil, ErrKeyMismatch
	}
	return key, nil
}

func (ks *keyStore) Entry(name string) (Entry, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	f, err := ks.readFile(name)
	if err != nil {
		return Entry{}, err
	}
	return f.entry()
}

func (ks *keyStore) List() (entries []Entry, err error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	dirEntries, err := os.ReadDir(ks.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), fileExt) {
			continue
		}
		name := strings.TrimSuffix(de.Name(), fileExt)
		if validateName(name) != nil {
			continue
		}
		f, rerr := ks.readFile(name)
		if rerr != nil {
			log.Warn("skip unreadable key file", zap.String("file", de.Name()), zap.Error(rerr))
			continue
		}
		e, eerr := f.entry()
		if eerr != nil {
			log.Warn("skip broken key file", zap.String("file", de.Name()), zap.Error(eerr))
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return
}

func (ks *keyStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if err := os.Remove(ks.fileName(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	log.Info("key deleted", zap.String("name", name))
	return nil
}

func (ks *keyStore) fileName(name string) string {
	return filepath.Join(ks.path, name+fileExt)
}

func (ks *keyStore) readFile(name string) (f keyFile, err error) {
	if err = validateName(name); err != nil {
		return
	}
	data, err := os.ReadFile(ks.fileName(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, ErrNotFound
		}
		return
	}
	if err = yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("key %q: %w", name, err)
	}
	return
}

func validateName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// writeFile replaces the target atomically
func writeFile(name string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err = tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}
