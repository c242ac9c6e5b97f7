package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anyproto/any-keys/app"
	"github.com/anyproto/any-keys/config"
	"github.com/anyproto/any-keys/keyservice"
	"github.com/anyproto/any-keys/keyservice/mock_keyservice"
	"github.com/anyproto/any-keys/keystore"
	"github.com/anyproto/any-keys/testutil/keytest"
	"github.com/anyproto/any-keys/util/crypto"
	"github.com/anyproto/any-keys/util/option"
)

func newFixture(t *testing.T) *fixture {
	t.Setenv(config.EnvPassphrase, "")
	ctrl := gomock.NewController(t)
	return &fixture{
		keys: mock_keyservice.NewKeyService(ctrl),
		home: t.TempDir(),
	}
}

type fixture struct {
	keys *mock_keyservice.MockService
	home string
}

func (fx *fixture) run(args ...string) (string, error) {
	return execute(func(a *app.App) { a.Register(fx.keys) }, append([]string{"--home", fx.home}, args...)...)
}

func execute(bootstrap func(a *app.App), args ...string) (string, error) {
	c := newCLI(bootstrap)
	defer c.stop()
	root := c.rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func testEntry(name string) keystore.Entry {
	return keystore.Entry{Id: "id", Name: name, PubKey: keytest.PubKey(), Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func TestGenerate(t *testing.T) {
	t.Run("print", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().NewKey().Return(keytest.PrivKey())
		out, err := fx.run("generate")
		require.NoError(t, err)
		assert.Equal(t, keytest.PrivKeyBech32+"\n", out)
	})
	t.Run("store", func(t *testing.T) {
		fx := newFixture(t)
		key := keytest.PrivKey()
		fx.keys.EXPECT().NewKey().Return(key)
		fx.keys.EXPECT().StoreKey("main", key, "pass").Return(testEntry("main"), nil)
		out, err := fx.run("generate", "--name", "main", "-p", "pass")
		require.NoError(t, err)
		assert.Equal(t, keytest.PubKeyBech32+"\n", out)
	})
	t.Run("store without passphrase", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.run("generate", "--name", "main")
		assert.ErrorIs(t, err, errPassphraseRequired)
	})
	t.Run("passphrase from env", func(t *testing.T) {
		fx := newFixture(t)
		t.Setenv(config.EnvPassphrase, "envpass")
		key := keytest.PrivKey()
		fx.keys.EXPECT().NewKey().Return(key)
		fx.keys.EXPECT().StoreKey("main", key, "envpass").Return(testEntry("main"), nil)
		_, err := fx.run("generate", "--name", "main")
		require.NoError(t, err)
	})
}

func TestPubkey(t *testing.T) {
	t.Run("from argument", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().ParsePrivKey(keytest.PrivKeyBech32).Return(option.Some(keytest.PrivKey()))
		out, err := fx.run("pubkey", keytest.PrivKeyBech32)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, keytest.PubKeyBech32, lines[0])
		assert.Equal(t, "hex: "+keytest.PubKeyHex, lines[1])
		assert.Equal(t, "fingerprint: "+crypto.Fingerprint(keytest.PubKey()), lines[2])
	})
	t.Run("from keystore", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().KeyEntry("main").Return(testEntry("main"), nil)
		out, err := fx.run("pubkey", "--name", "main")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, keytest.PubKeyBech32+"\n"))
	})
	t.Run("invalid", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().ParsePrivKey(keytest.PubKeyBech32).Return(option.None[crypto.PrivKey]())
		_, err := fx.run("pubkey", keytest.PubKeyBech32)
		assert.Error(t, err)
	})
	t.Run("no source", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.run("pubkey")
		assert.ErrorIs(t, err, errKeySource)
	})
}

func TestSign(t *testing.T) {
	key := keytest.PrivKey()
	sig := key.Sign([]byte("hello"))
	t.Run("key", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().ParsePrivKey(keytest.SeedHex).Return(option.Some(key))
		fx.keys.EXPECT().Sign(key, []byte("hello")).Return(sig)
		out, err := fx.run("sign", "hello", "--key", keytest.SeedHex)
		require.NoError(t, err)
		assert.Equal(t, sig.String()+"\n", out)
	})
	t.Run("stored key, hex output, hex message", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().LoadKey("main", "pass").Return(key, nil)
		fx.keys.EXPECT().Sign(key, []byte("hello")).Return(sig)
		out, err := fx.run("sign", "68656c6c6f", "--name", "main", "-p", "pass", "--hex", "--msg-hex")
		require.NoError(t, err)
		assert.Equal(t, crypto.EncodeToHex(sig)+"\n", out)
	})
	t.Run("wrong passphrase", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().LoadKey("main", "wrong").Return(nil, keystore.ErrWrongPassphrase)
		_, err := fx.run("sign", "hello", "--name", "main", "-p", "wrong")
		assert.ErrorIs(t, err, keystore.ErrWrongPassphrase)
	})
	t.Run("both sources", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.run("sign", "hello", "--name", "main", "--key", keytest.SeedHex)
		assert.Error(t, err)
	})
}

func TestVerify(t *testing.T) {
	pub := keytest.PubKey()
	sig := keytest.Signature()
	expectParse := func(fx *fixture) {
		fx.keys.EXPECT().ParsePubKey(keytest.PubKeyBech32).Return(option.Some(pub))
		fx.keys.EXPECT().ParseSignature(keytest.SignatureBech32).Return(option.Some(sig))
	}
	t.Run("valid", func(t *testing.T) {
		fx := newFixture(t)
		expectParse(fx)
		fx.keys.EXPECT().Verify(pub, []byte("msg"), sig).Return(true)
		out, err := fx.run("verify", keytest.PubKeyBech32, "msg", keytest.SignatureBech32)
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})
	t.Run("invalid", func(t *testing.T) {
		fx := newFixture(t)
		expectParse(fx)
		fx.keys.EXPECT().Verify(pub, []byte("msg"), sig).Return(false)
		out, err := fx.run("verify", keytest.PubKeyBech32, "msg", keytest.SignatureBech32)
		assert.ErrorIs(t, err, errInvalidSignature)
		assert.Equal(t, "invalid\n", out)
	})
	t.Run("malformed signature", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().ParsePubKey(keytest.PubKeyBech32).Return(option.Some(pub))
		fx.keys.EXPECT().ParseSignature("nope").Return(option.None[crypto.Signature]())
		_, err := fx.run("verify", keytest.PubKeyBech32, "msg", "nope")
		assert.Error(t, err)
	})
}

func TestInspect(t *testing.T) {
	fx := newFixture(t)
	fx.keys.EXPECT().Inspect(keytest.PubKeyBech32).Return(option.Some(keyservice.Info{
		Kind:     keyservice.KindPubKey,
		Encoding: keyservice.EncodingBech32,
		Raw:      keytest.PubKey().Raw(),
	}))
	fx.keys.EXPECT().Inspect("junk").Return(option.None[keyservice.Info]())

	out, err := fx.run("inspect", keytest.PubKeyBech32)
	require.NoError(t, err)
	assert.Equal(t, "type: public key\nencoding: bech32\nlength: 32\nhex: "+keytest.PubKeyHex+"\n", out)

	out, err = fx.run("inspect", "junk")
	require.NoError(t, err)
	assert.Equal(t, "absent\n", out)
}

func TestConvert(t *testing.T) {
	fx := newFixture(t)
	fx.keys.EXPECT().Convert(keytest.SeedHex, keyservice.EncodingBech32, keyservice.KindPrivKey).Return(keytest.PrivKeyBech32, nil)
	out, err := fx.run("convert", keytest.SeedHex, "--as", "sk")
	require.NoError(t, err)
	assert.Equal(t, keytest.PrivKeyBech32+"\n", out)

	_, err = fx.run("convert", keytest.SeedHex, "--to", "base64")
	assert.Error(t, err)
	_, err = fx.run("convert", keytest.SeedHex, "--as", "sig")
	assert.Error(t, err)
}

func TestMnemonic(t *testing.T) {
	const phrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	t.Run("new", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().NewMnemonic(24).Return(crypto.Mnemonic(phrase), nil)
		out, err := fx.run("mnemonic", "new", "--words", "24")
		require.NoError(t, err)
		assert.Equal(t, phrase+"\n", out)
	})
	t.Run("derive", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().DeriveKeys(phrase, uint32(3)).Return(crypto.DerivationResult{Identity: keytest.PrivKey()}, nil)
		out, err := fx.run(append([]string{"mnemonic", "derive", "--index", "3"}, strings.Fields(phrase)...)...)
		require.NoError(t, err)
		assert.Equal(t, keytest.PrivKeyBech32+"\n", out)
	})
	t.Run("derive and store", func(t *testing.T) {
		fx := newFixture(t)
		key := keytest.PrivKey()
		fx.keys.EXPECT().DeriveKeys(phrase, uint32(0)).Return(crypto.DerivationResult{Identity: key}, nil)
		fx.keys.EXPECT().StoreKey("acc", key, "pass").Return(testEntry("acc"), nil)
		out, err := fx.run("mnemonic", "derive", "--name", "acc", "-p", "pass", phrase)
		require.NoError(t, err)
		assert.Equal(t, keytest.PubKeyBech32+"\n", out)
	})
	t.Run("invalid", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().DeriveKeys("bad words", uint32(0)).Return(crypto.DerivationResult{}, crypto.ErrInvalidMnemonic)
		_, err := fx.run("mnemonic", "derive", "bad", "words")
		assert.ErrorIs(t, err, crypto.ErrInvalidMnemonic)
	})
}

func TestKeys(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().ListKeys().Return([]keystore.Entry{testEntry("a"), testEntry("b")}, nil)
		out, err := fx.run("keys", "list")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "a "))
		assert.Contains(t, lines[1], keytest.PubKeyBech32)
		assert.Contains(t, lines[1], "2024-01-02T03:04:05Z")
	})
	t.Run("export", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().LoadKey("a", "pass").Return(keytest.PrivKey(), nil)
		out, err := fx.run("keys", "export", "a", "-p", "pass")
		require.NoError(t, err)
		assert.Equal(t, keytest.PrivKeyBech32+"\n", out)
	})
	t.Run("delete", func(t *testing.T) {
		fx := newFixture(t)
		fx.keys.EXPECT().DeleteKey("a").Return(nil)
		fx.keys.EXPECT().DeleteKey("b").Return(keystore.ErrNotFound)
		out, err := fx.run("keys", "delete", "a")
		require.NoError(t, err)
		assert.Equal(t, "deleted a\n", out)
		_, err = fx.run("keys", "delete", "b")
		assert.ErrorIs(t, err, keystore.ErrNotFound)
	})
}

func TestEndToEnd(t *testing.T) {
	t.Setenv(config.EnvPassphrase, "")
	home := t.TempDir()
	confPath := filepath.Join(home, "config.yml")
	require.NoError(t, os.WriteFile(confPath, []byte("keyStore:\n  kdf:\n    time: 1\n    memory: 1024\n    threads: 1\n"), 0o600))
	run := func(args ...string) string {
		out, err := execute(Bootstrap, append([]string{"--config", confPath, "--home", home}, args...)...)
		require.NoError(t, err, args)
		return strings.TrimSpace(out)
	}

	pub := run("generate", "--name", "main", "-p", "secret")
	require.True(t, crypto.PubKeyFromString(pub).IsSome())
	assert.Contains(t, run("keys", "list"), pub)

	sig := run("sign", "hello", "--name", "main", "-p", "secret")
	assert.Equal(t, "valid", run("verify", pub, "hello", sig))

	_, err := execute(Bootstrap, "--config", confPath, "--home", home, "verify", pub, "other", sig)
	assert.ErrorIs(t, err, errInvalidSignature)

	secret := run("keys", "export", "main", "-p", "secret")
	assert.True(t, strings.HasPrefix(run("pubkey", secret), pub))
	assert.Equal(t, crypto.EncodeToHex(crypto.PubKeyFromString(pub).MustGet()), run("convert", pub, "--to", "hex"))

	run("keys", "delete", "main")
	assert.Empty(t, run("keys", "list"))
}
