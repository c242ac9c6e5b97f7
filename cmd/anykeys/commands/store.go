package commands

import (
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/anyproto/any-keys/util/crypto"
)

func (c *cli) keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage stored keys",
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.keys.ListKeys()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				_, _ = w.Write([]byte(e.Name + "\t" + e.PubKey.String() + "\t" + crypto.Fingerprint(e.PubKey) + "\t" + e.Created.Format(time.RFC3339) + "\n"))
			}
			return w.Flush()
		},
	}
	exportCmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Print the secret key of a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			key, err := c.keys.LoadKey(args[0], c.passphrase)
			if err != nil {
				return err
			}
			printLn(cmd, crypto.EncodeToString(key))
			return nil
		},
	}
	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.keys.DeleteKey(args[0]); err != nil {
				return err
			}
			printLn(cmd, "deleted", args[0])
			return nil
		},
	}
	cmd.AddCommand(listCmd, exportCmd, deleteCmd)
	return cmd
}
