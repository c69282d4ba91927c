// Package main provides quillctl, an operator CLI of the publishing ledger.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Decentr-net/quill/internal/backend"
	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/schema"
	"github.com/Decentr-net/quill/internal/service"
	"github.com/Decentr-net/quill/internal/service/impl"
	"github.com/Decentr-net/quill/internal/session"
)

// nolint:gochecknoglobals
var (
	cfg        backend.Config
	app        schema.App
	fund       bool
	debug      bool
	logLevel   string
	migrations bool

	// opened in PersistentPreRunE
	be   *backend.Backend
	sess *session.Session
	srv  service.Service
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1) // nolint:gocritic
	}
}

var rootCmd = &cobra.Command{
	Use:   "quillctl",
	Short: "quillctl reads and writes entities of the publishing ledger",
	Long: `quillctl commits mutations (works, profiles, topics, follows, likes and responses)
to the ledger and reads current views of entities.

Example:
  quillctl --ledger badger --badger.dir data work add --title T --description D --author <profile> --content-file work.md
  quillctl --ledger irys --fund work list --top`,
	SilenceUsage:       true,
	PersistentPreRunE:  connect,
	PersistentPostRunE: disconnect,
}

func init() {
	f := rootCmd.PersistentFlags()

	f.StringVar(&cfg.Ledger, "ledger", backend.BadgerLedger, "ledger backend: memory, badger, postgres or irys")
	f.StringVar(&cfg.Address, "ledger.address", "local", "uploader address of local ledgers")
	f.Int64Var(&cfg.Balance, "ledger.balance", ledger.Unlimited, "wallet balance of local ledgers, -1 means unlimited")
	f.Uint64Var(&cfg.PricePerByte, "ledger.price-per-byte", 0, "upload price of local ledgers")
	f.StringVar(&cfg.BadgerDir, "badger.dir", "data", "badger database directory")
	f.StringVar(&cfg.Postgres, "postgres", "host=localhost port=5432 user=postgres password=root sslmode=disable", "postgres dsn")
	f.BoolVar(&migrations, "postgres.migrate", false, "migrate postgres ledger schema before running command")
	f.StringVar(&cfg.PostgresMigrations, "postgres.migrations", "scripts/migrations/postgres", "postgres migrations directory")
	f.StringVar(&cfg.Irys.NodeURL, "irys.node", "https://node1.irys.xyz", "irys node url")
	f.StringVar(&cfg.Irys.GatewayURL, "irys.gateway", "https://gateway.irys.xyz", "irys gateway url")
	f.StringVar(&cfg.Irys.BundlerURL, "irys.bundler", "http://localhost:3001", "signing bundler proxy url")
	f.StringVar(&cfg.Irys.Token, "irys.token", "ethereum", "payment token")
	f.DurationVar(&cfg.Irys.Timeout, "irys.timeout", 0, "timeout for requests to irys")

	f.StringVar(&app.Name, "app.name", "quill", "application name tag of records")
	f.StringVar(&app.Version, "app.version", "0.0.1", "application version tag of records")

	f.BoolVar(&fund, "fund", false, "pay for uploads before committing them")
	f.BoolVar(&debug, "debug", false, "dump full structures instead of json")
	f.StringVar(&logLevel, "log.level", "warning", "log level")

	rootCmd.AddCommand(workCmd, profileCmd, topicCmd, followCmd, likeCmd, responseCmd, recordCmd)
}

func connect(cmd *cobra.Command, _ []string) error {
	// post run is skipped when command fails
	if err := disconnect(cmd, nil); err != nil {
		return err
	}

	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(lvl)

	c := cfg
	if !migrations {
		c.PostgresMigrations = ""
	}

	be, err = backend.Open(cmd.Context(), c, nil)
	if err != nil {
		return err
	}

	sess, err = session.Connect(cmd.Context(), app, be.Ledger)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	srv = impl.New(sess)

	return nil
}

func disconnect(*cobra.Command, []string) error {
	if sess != nil {
		sess.Close()
		sess = nil
	}

	if be != nil {
		err := be.Close()
		be = nil

		return err
	}

	return nil
}

// output writes v to stdout as json or as a spew dump in debug mode.
func output(v interface{}) error {
	if debug {
		spew.Fdump(rootCmd.OutOrStdout(), v)
		return nil
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Fprintln(rootCmd.OutOrStdout(), string(b))

	return nil
}

func printReceipt(r *ledger.Receipt, err error) error {
	if err != nil {
		return err
	}

	return output(r)
}
