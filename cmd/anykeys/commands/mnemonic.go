package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/anyproto/any-keys/util/crypto"
)

func (c *cli) mnemonicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate mnemonic phrases and derive keys from them",
	}

	var words int
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new mnemonic phrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.keys.NewMnemonic(words)
			if err != nil {
				return err
			}
			printLn(cmd, string(m))
			return nil
		},
	}
	newCmd.Flags().IntVar(&words, "words", 12, "number of words: 12, 15, 18, 21 or 24")

	var (
		index uint32
		name  string
	)
	deriveCmd := &cobra.Command{
		Use:   "derive <words...>",
		Short: "Derive the identity key of an account from a mnemonic phrase",
		Long:  "Derive the identity key at m/44'/2046'/index'/0'. Prints the secret key, or stores it under --name and prints the public key.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name != "" {
				if err := c.requirePassphrase(); err != nil {
					return err
				}
			}
			res, err := c.keys.DeriveKeys(strings.Join(args, " "), index)
			if err != nil {
				return err
			}
			if name == "" {
				printLn(cmd, crypto.EncodeToString(res.Identity))
				return nil
			}
			e, err := c.keys.StoreKey(name, res.Identity, c.passphrase)
			if err != nil {
				return err
			}
			printLn(cmd, e.PubKey.String())
			return nil
		},
	}
	deriveCmd.Flags().Uint32Var(&index, "index", 0, "account index")
	deriveCmd.Flags().StringVar(&name, "name", "", "store the key in the keystore under this name")

	cmd.AddCommand(newCmd, deriveCmd)
	return cmd
}
