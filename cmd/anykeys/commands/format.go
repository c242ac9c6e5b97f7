package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyproto/any-keys/keyservice"
)

func (c *cli) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <text>",
		Short: "Describe a key or signature given as bech32 or hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.keys.Inspect(args[0]).Match(func(info keyservice.Info) {
				printLn(cmd, "type:", info.Kind.String())
				printLn(cmd, "encoding:", string(info.Encoding))
				printLn(cmd, "length:", len(info.Raw))
				printLn(cmd, "hex:", hex.EncodeToString(info.Raw))
			}, func() {
				printLn(cmd, "absent")
			})
			return nil
		},
	}
}

func (c *cli) convertCmd() *cobra.Command {
	var to, as string
	cmd := &cobra.Command{
		Use:   "convert <text>",
		Short: "Re-encode a key or signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := keyservice.ParseEncoding(to)
			if err != nil {
				return err
			}
			kind, err := parseKind(as)
			if err != nil {
				return err
			}
			res, err := c.keys.Convert(args[0], enc, kind)
			if err != nil {
				return err
			}
			printLn(cmd, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", string(keyservice.EncodingBech32), "target encoding: bech32, hex or base58")
	cmd.Flags().StringVar(&as, "as", "", "type of a 32-byte hex input: sk or pk")
	return cmd
}

func parseKind(s string) (keyservice.Kind, error) {
	switch s {
	case "":
		return keyservice.KindKey, nil
	case "sk":
		return keyservice.KindPrivKey, nil
	case "pk":
		return keyservice.KindPubKey, nil
	}
	return keyservice.KindKey, fmt.Errorf("unknown key type %q, expected sk or pk", s)
}
