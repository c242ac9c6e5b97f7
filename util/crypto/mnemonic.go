package crypto

import (
	"crypto/ed25519"
	"errors"
	"strings"

	"github.com/anyproto/go-slip10"
	"github.com/tyler-smith/go-bip39"
)

var (
	ErrInvalidWordCount = errors.New("error invalid word count for mnemonic")
	ErrInvalidMnemonic  = errors.New("error invalid mnemonic")
)

const (
	// https://github.com/satoshilabs/slips/blob/master/slip-0044.md
	accountPrefix = "m/44'/2046'"
)

type DerivationResult struct {
	// m/44'/2046'/index'
	MasterKey PrivKey
	// m/44'/2046'/index'/0'
	Identity   PrivKey
	MasterNode slip10.Node
}

type MnemonicGenerator struct{}

func NewMnemonicGenerator() MnemonicGenerator {
	return MnemonicGenerator{}
}

type Mnemonic string

// ParseMnemonic normalizes the whitespace between words and validates the checksum
func ParseMnemonic(words string) (Mnemonic, error) {
	m := Mnemonic(strings.Join(strings.Fields(words), " "))
	if !bip39.IsMnemonicValid(string(m)) {
		return "", ErrInvalidMnemonic
	}
	return m, nil
}

func (g MnemonicGenerator) WithWordCount(wc int) (Mnemonic, error) {
	size := 0
	switch wc {
	case 12:
		size = 128
	case 15:
		size = 160
	case 18:
		size = 192
	case 21:
		size = 224
	case 24:
		size = 256
	default:
		return "", ErrInvalidWordCount
	}
	return g.WithRandomEntropy(size)
}

func (g MnemonicGenerator) WithRandomEntropy(size int) (Mnemonic, error) {
	entropy, err := bip39.NewEntropy(size)
	if err != nil {
		return "", err
	}
	return g.WithEntropy(entropy)
}

func (g MnemonicGenerator) WithEntropy(b []byte) (Mnemonic, error) {
	mnemonic, err := bip39.NewMnemonic(b)
	if err != nil {
		return "", err
	}
	return Mnemonic(mnemonic), nil
}

// DeriveMasterNode derives a master node at the specified index
// Returns the node at path m/44'/2046'/index'
func (m Mnemonic) DeriveMasterNode(index uint32) (masterNode slip10.Node, err error) {
	seed, err := m.Seed()
	if err != nil {
		return
	}
	return DeriveMasterNodeFromSeed(seed, index)
}

// DeriveMasterNodeFromSeed derives a master node from a seed at the specified index
func DeriveMasterNodeFromSeed(seed []byte, index uint32) (masterNode slip10.Node, err error) {
	prefixNode, err := slip10.DeriveForPath(accountPrefix, seed)
	if err != nil {
		return
	}

	// m/44'/2046'/index'
	masterNode, err = prefixNode.Derive(slip10.FirstHardenedIndex + index)
	return
}

// DeriveKeysFromMasterNode derives master key and identity from a master node
func DeriveKeysFromMasterNode(masterNode slip10.Node) (res DerivationResult, err error) {
	res.MasterNode = masterNode

	res.MasterKey, err = genKey(masterNode)
	if err != nil {
		return
	}

	// m/44'/2046'/index'/0'
	identityNode, err := masterNode.Derive(slip10.FirstHardenedIndex)
	if err != nil {
		return
	}
	res.Identity, err = genKey(identityNode)
	return
}

func (m Mnemonic) DeriveKeys(index uint32) (res DerivationResult, err error) {
	masterNode, err := m.DeriveMasterNode(index)
	if err != nil {
		return
	}
	return DeriveKeysFromMasterNode(masterNode)
}

func (m Mnemonic) Seed() ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(string(m), "")
	if err != nil {
		if errors.Is(err, bip39.ErrInvalidMnemonic) {
			return nil, ErrInvalidMnemonic
		}
		return nil, err
	}
	return seed, nil
}

// genKey uses the first 32 bytes of the node key as the ed25519 seed
func genKey(node slip10.Node) (key PrivKey, err error) {
	seed := node.RawSeed()
	if len(seed) < ed25519.SeedSize {
		return nil, ErrInvalidKeyLength
	}
	return UnmarshalEd25519PrivateKey(seed[:ed25519.SeedSize])
}
