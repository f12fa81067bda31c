package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/knowling/pkg/core"
)

var readJSON bool

var readCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Read a note",
	Long:  `Read a note by its ID. Outputs the raw text by default, or the note as a JSON object with --json.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClient()
		if err != nil {
			return err
		}

		res := c.GetNote(cmd.Context(), args[0])
		if res.Err != nil {
			return res.Err
		}
		return printNote(cmd.OutOrStdout(), res.Value, readJSON)
	},
}

// printNote writes the note text, or the whole note as JSON.
func printNote(w io.Writer, note core.Note, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(note)
	}
	_, err := fmt.Fprint(w, note.Text)
	if err == nil && note.Text != "" && !strings.HasSuffix(note.Text, "\n") {
		_, err = fmt.Fprintln(w)
	}
	return err
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output in JSON format")
}
