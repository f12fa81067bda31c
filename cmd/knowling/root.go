package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/knowling"
	"github.com/aretw0/knowling/internal/config"
	"github.com/aretw0/knowling/internal/platform"
	"github.com/aretw0/knowling/pkg/client"
	"github.com/aretw0/knowling/pkg/core"
	"github.com/aretw0/knowling/pkg/timeline"
)

var (
	verbose bool
	flags   config.Flags
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "knowling",
	Short: "Notes grouped by recency, titled by their first line",
	Long: `knowling manages a vault of Markdown notes, or a remote note service,
and lists them grouped into Today, Yesterday, Earlier this month and one
bucket per older month.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&flags.Vault, "vault", "", "Vault directory (default: nearest vault root or the working directory)")
	pf.StringVar(&flags.Remote, "remote", "", "Base URL of a remote note service")
	pf.StringVar(&flags.Locale, "locale", "", "Locale of bucket labels (e.g. en, pt-BR)")
	pf.StringVar(&flags.ConfigFile, "config", "", "Config file (default: knowling.yaml in the vault)")
}

// loadConfig resolves flags, environment and config file.
func loadConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	defaultVault := wd
	if root, err := knowling.FindVaultRoot(wd); err == nil {
		defaultVault = root
	}
	return config.Load(flags, defaultVault)
}

// backendOptions maps the configuration to knowling options and the URI to open.
func backendOptions(cfg *config.Config, extra ...knowling.Option) (string, []knowling.Option) {
	opts := []knowling.Option{knowling.WithLogger(slog.Default())}

	cal, ok := timeline.LookupCalendar(cfg.Locale)
	if !ok {
		slog.Warn("unsupported locale, using English", "locale", cfg.Locale)
	}
	opts = append(opts, knowling.WithCalendar(cal))

	uri := cfg.Vault
	if cfg.Remote != "" {
		uri = cfg.Remote
		opts = append(opts, knowling.WithAdapter(platform.AdapterHTTP))
	}
	return uri, append(opts, extra...)
}

// openClient opens the configured backend and wraps it in a client.
func openClient(extra ...knowling.Option) (*client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	uri, opts := backendOptions(cfg, extra...)
	return knowling.New(uri, opts...)
}

// openBackend opens the configured backend without a client.
func openBackend(extra ...knowling.Option) (core.Backend, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	uri, opts := backendOptions(cfg, extra...)
	return knowling.Open(uri, opts...)
}
