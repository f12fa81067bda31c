package knowling_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aretw0/knowling"
	"github.com/aretw0/knowling/pkg/client"
	"github.com/aretw0/knowling/pkg/title"
)

// Example_basic creates a vault, saves two notes a day apart and prints them
// grouped by recency.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "knowling-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	clock := now.AddDate(0, 0, -1)

	c, err := knowling.New(tmpDir,
		knowling.WithAutoInit(true),
		knowling.WithClock(func() time.Time { return clock }),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if res := c.UpsertNote(ctx, "", "# Groceries\nmilk, eggs"); res.Err != nil {
		log.Fatal(res.Err)
	}
	clock = now
	if res := c.UpsertNote(ctx, "", "Call the plumber about the kitchen sink"); res.Err != nil {
		log.Fatal(res.Err)
	}

	for _, b := range c.GroupedNotes(ctx, now).Value {
		fmt.Println(b.Label)
		for _, n := range b.Notes {
			fmt.Printf("  %s\n", title.FirstLine(client.NoteTitle(n.Text), 0))
		}
	}
	// Output:
	// Today
	//   Call the plumber about th
	// Yesterday
	//   Groceries
}
