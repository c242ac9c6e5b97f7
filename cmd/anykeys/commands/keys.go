package commands

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyproto/any-keys/util/crypto"
)

var errInvalidSignature = errors.New("signature is invalid")

func (c *cli) generateCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new private key",
		Long:  "Generate a new private key. Prints the secret key, or stores it under --name and prints the public key.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name != "" {
				if err := c.requirePassphrase(); err != nil {
					return err
				}
			}
			key := c.keys.NewKey()
			if name == "" {
				printLn(cmd, crypto.EncodeToString(key))
				return nil
			}
			e, err := c.keys.StoreKey(name, key, c.passphrase)
			if err != nil {
				return err
			}
			printLn(cmd, e.PubKey.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "store the key in the keystore under this name")
	return cmd
}

func (c *cli) pubkeyCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "pubkey [privkey]",
		Short: "Print the public key of a private key or a stored key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pub crypto.PubKey
			switch {
			case len(args) == 1:
				key, ok := c.keys.ParsePrivKey(args[0]).Get()
				if !ok {
					return fmt.Errorf("not a private key: %q", args[0])
				}
				pub = key.GetPublic()
			case name != "":
				e, err := c.keys.KeyEntry(name)
				if err != nil {
					return err
				}
				pub = e.PubKey
			default:
				return errKeySource
			}
			printLn(cmd, pub.String())
			printLn(cmd, "hex:", crypto.EncodeToHex(pub))
			printLn(cmd, "fingerprint:", crypto.Fingerprint(pub))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name of a stored key")
	return cmd
}

func (c *cli) signCmd() *cobra.Command {
	var (
		keyStr, name   string
		hexOut, hexMsg bool
	)
	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := message(args[0], hexMsg)
			if err != nil {
				return err
			}
			key, err := c.signingKey(keyStr, name)
			if err != nil {
				return err
			}
			sig := c.keys.Sign(key, msg)
			if hexOut {
				printLn(cmd, crypto.EncodeToHex(sig))
			} else {
				printLn(cmd, sig.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keyStr, "key", "", "private key, bech32 or hex")
	cmd.Flags().StringVar(&name, "name", "", "name of a stored key")
	cmd.Flags().BoolVar(&hexOut, "hex", false, "print the signature as hex")
	cmd.Flags().BoolVar(&hexMsg, "msg-hex", false, "the message is hex encoded")
	cmd.MarkFlagsMutuallyExclusive("key", "name")
	return cmd
}

func (c *cli) signingKey(keyStr, name string) (crypto.PrivKey, error) {
	switch {
	case keyStr != "":
		key, ok := c.keys.ParsePrivKey(keyStr).Get()
		if !ok {
			return nil, errors.New("--key is not a private key")
		}
		return key, nil
	case name != "":
		if err := c.requirePassphrase(); err != nil {
			return nil, err
		}
		return c.keys.LoadKey(name, c.passphrase)
	}
	return nil, errKeySource
}

func (c *cli) verifyCmd() *cobra.Command {
	var hexMsg bool
	cmd := &cobra.Command{
		Use:   "verify <pubkey> <message> <signature>",
		Short: "Verify a signature, exits with an error when it is invalid",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, ok := c.keys.ParsePubKey(args[0]).Get()
			if !ok {
				return fmt.Errorf("not a public key: %q", args[0])
			}
			msg, err := message(args[1], hexMsg)
			if err != nil {
				return err
			}
			sig, ok := c.keys.ParseSignature(args[2]).Get()
			if !ok {
				return fmt.Errorf("not a signature: %q", args[2])
			}
			if !c.keys.Verify(pub, msg, sig) {
				printLn(cmd, "invalid")
				return errInvalidSignature
			}
			printLn(cmd, "valid")
			return nil
		},
	}
	cmd.Flags().BoolVar(&hexMsg, "msg-hex", false, "the message is hex encoded")
	return cmd
}

func message(arg string, isHex bool) ([]byte, error) {
	if !isHex {
		return []byte(arg), nil
	}
	msg, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("message is not hex: %w", err)
	}
	return msg, nil
}
