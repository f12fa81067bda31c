package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/knowling"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a knowling vault",
	Long: `Initialize a vault in --vault, or in the current directory. This creates
the directory and its .knowling marker, which later commands use to find the
vault root from any subdirectory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flags.Remote != "" {
			return fmt.Errorf("cannot initialize a remote note service")
		}
		path := flags.Vault
		if path == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			path = wd
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}

		if _, err := knowling.Open(path, knowling.WithLogger(slog.Default()), knowling.WithAutoInit(true)); err != nil {
			return fmt.Errorf("failed to initialize vault: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Initialized knowling vault in", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
