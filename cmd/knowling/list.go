package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/knowling/pkg/client"
	"github.com/aretw0/knowling/pkg/timeline"
	"github.com/aretw0/knowling/pkg/title"
)

var (
	listJSON bool
	listNow  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes grouped by recency",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		if listNow != "" {
			t, err := time.Parse(time.RFC3339, listNow)
			if err != nil {
				return fmt.Errorf("invalid --now: %w", err)
			}
			now = t
		}

		c, err := openClient()
		if err != nil {
			return err
		}

		res := c.GroupedNotes(cmd.Context(), now)
		if res.Err != nil {
			return res.Err
		}

		if listJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(res.Value)
		}
		printBuckets(cmd.OutOrStdout(), res.Value)
		return nil
	},
}

// printBuckets writes one header per bucket followed by "id  title" rows.
func printBuckets(w io.Writer, buckets []timeline.Bucket) {
	for i, b := range buckets {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, b.Label)
		for _, n := range b.Notes {
			fmt.Fprintf(w, "  %s  %s\n", n.ID, title.FirstLine(client.NoteTitle(n.Text), 0))
		}
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listNow, "now", "", "Reference instant in RFC 3339 (default: current time)")
}
