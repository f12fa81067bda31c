// Package knowling is the composition root of the knowling notes core.
//
// It wires a note service backend into a client that a user interface drives:
// notes are listed and grouped into recency buckets ("Today", "Yesterday",
// "Earlier this month", then one bucket per month), titled from their first
// line, saved, deleted and related to each other by similarity.
//
// Backends:
//
//   - "fs" (default): a directory of Markdown files with YAML frontmatter.
//   - "http": a remote note service speaking the rpc package's JSON routes.
//   - any core.Backend injected with WithBackend.
//
// Usage:
//
//	c, err := knowling.New("./notes",
//		knowling.WithAutoInit(true),
//		knowling.WithLogger(logger),
//	)
//
//	id := c.UpsertNote(ctx, "", "# Groceries\nmilk").Value
//	for _, b := range c.GroupedNotes(ctx, time.Now()).Value {
//		fmt.Println(b.Label, len(b.Notes))
//	}
package knowling
