package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anyproto/any-keys/app"
	"github.com/anyproto/any-keys/app/filelog"
	"github.com/anyproto/any-keys/app/logger"
	"github.com/anyproto/any-keys/config"
	"github.com/anyproto/any-keys/keyservice"
	"github.com/anyproto/any-keys/keystore"
	"github.com/anyproto/any-keys/metric"
)

var log = logger.NewNamed("main")

var (
	errPassphraseRequired = errors.New("passphrase required (-p or " + config.EnvPassphrase + ")")
	errKeySource          = errors.New("either a key or --name is required")
)

// Bootstrap registers every component the commands need, config is registered before it
func Bootstrap(a *app.App) {
	a.Register(metric.New()).
		Register(filelog.New()).
		Register(keystore.New()).
		Register(keyservice.New())
}

func Execute() error {
	c := newCLI(Bootstrap)
	defer c.stop()
	return c.rootCmd().Execute()
}

type cli struct {
	bootstrap func(a *app.App)

	configPath string
	home       string
	passphrase string

	a    *app.App
	keys keyservice.Service
}

func newCLI(bootstrap func(a *app.App)) *cli {
	return &cli{bootstrap: bootstrap}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "anykeys",
		Short:             "Ed25519 keys and signatures",
		Version:           app.VersionDescription(),
		SilenceUsage:      true,
		PersistentPreRunE: c.start,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&c.home, "home", "", "data dir (default ~/.anykeys)")
	root.PersistentFlags().StringVarP(&c.passphrase, "passphrase", "p", "", "passphrase protecting stored keys")

	root.AddCommand(
		c.generateCmd(),
		c.pubkeyCmd(),
		c.signCmd(),
		c.verifyCmd(),
		c.inspectCmd(),
		c.convertCmd(),
		c.mnemonicCmd(),
		c.keysCmd(),
	)
	return root
}

func (c *cli) start(cmd *cobra.Command, args []string) (err error) {
	if err = config.LoadEnvFiles(".env"); err != nil {
		return err
	}
	conf := config.New("")
	if c.configPath != "" {
		if conf, err = config.NewFromFile(c.configPath); err != nil {
			return err
		}
		if err = config.LoadEnvFiles(filepath.Join(filepath.Dir(c.configPath), ".env")); err != nil {
			return err
		}
	}
	conf.ApplyEnv()
	if c.home != "" {
		conf.Home = c.home
	}
	if conf.Log.DefaultLevel == "" {
		conf.Log.DefaultLevel = "warn"
	}
	conf.GetLogger().ApplyGlobal()
	if c.passphrase == "" {
		c.passphrase = os.Getenv(config.EnvPassphrase)
	}

	c.a = new(app.App)
	c.a.Register(conf)
	c.bootstrap(c.a)
	if err = c.a.Start(cmd.Context()); err != nil {
		return err
	}
	c.keys = c.a.MustComponent(keyservice.CName).(keyservice.Service)
	return nil
}

func (c *cli) stop() {
	if c.a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.a.Close(ctx); err != nil {
		log.Warn("close error", zap.Error(err))
	}
	c.a = nil
}

func (c *cli) requirePassphrase() error {
	if c.passphrase == "" {
		return errPassphraseRequired
	}
	return nil
}

func printLn(cmd *cobra.Command, a ...any) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), a...)
}
