package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/knowling"
)

var (
	writeID      string
	writeContent string
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Create or update a note",
	Long: `Create a note, or update it when --id is given.
The text comes from --content, or from stdin when --content is empty.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := writeContent
		if text == "" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text = string(data)
		}

		c, err := openClient(knowling.WithAutoInit(true))
		if err != nil {
			return err
		}

		res := c.UpsertNote(cmd.Context(), writeID, text)
		if res.Err != nil {
			return res.Err
		}
		if writeID != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Note '%s' updated.\n", writeID)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeID, "id", "", "ID of the note to update (empty creates a note)")
	writeCmd.Flags().StringVar(&writeContent, "content", "", "Note text")
}
