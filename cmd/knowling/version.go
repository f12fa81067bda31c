package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/knowling"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of knowling",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "knowling version %s\n", knowling.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
