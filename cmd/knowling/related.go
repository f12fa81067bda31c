package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/knowling/pkg/client"
	"github.com/aretw0/knowling/pkg/title"
)

var (
	relatedThreshold float64
	relatedJSON      bool
)

var relatedCmd = &cobra.Command{
	Use:   "related [id]",
	Short: "List notes similar to a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClient()
		if err != nil {
			return err
		}

		res := c.RelatedNotes(cmd.Context(), args[0], relatedThreshold)
		if res.Err != nil {
			return res.Err
		}

		out := cmd.OutOrStdout()
		if relatedJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(res.Value)
		}
		for _, r := range res.Value {
			fmt.Fprintf(out, "%.3f  %s  %s\n", r.Score, r.Note.ID, title.FirstLine(client.NoteTitle(r.Note.Text), 0))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(relatedCmd)
	relatedCmd.Flags().Float64Var(&relatedThreshold, "threshold", 0.2, "Minimum similarity score")
	relatedCmd.Flags().BoolVar(&relatedJSON, "json", false, "Output in JSON format")
}
