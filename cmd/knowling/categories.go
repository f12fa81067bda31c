package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List every category in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClient()
		if err != nil {
			return err
		}

		res := c.Categories(cmd.Context())
		if res.Err != nil {
			return res.Err
		}
		for _, label := range res.Value {
			fmt.Fprintln(cmd.OutOrStdout(), label)
		}
		return nil
	},
}

var categorizeCmd = &cobra.Command{
	Use:   "categorize [id] [category...]",
	Short: "Replace the categories of a note",
	Long: `Replace the categories of a note. Categories already used in the vault are
matched ignoring case and keep their stored spelling. No categories clears them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClient()
		if err != nil {
			return err
		}

		res := c.SetCategories(cmd.Context(), args[0], args[1:])
		if res.Err != nil {
			return res.Err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note '%s' categories: %s\n", args[0], strings.Join(res.Value.Categories, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(categorizeCmd)
}
