package fs

import (
	"context"
	"sort"
	"strings"

	"github.com/aretw0/knowling/pkg/core"
)

// SetCategories replaces the categories of a note. Labels are trimmed and
// de-duplicated ignoring case; a label already used in the vault keeps the
// spelling it was first stored with.
func (r *Repository) SetCategories(ctx context.Context, id string, labels []string) (core.Note, error) {
	if r.config.ReadOnly {
		return core.Note{}, core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return core.Note{}, err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	note, err := r.Get(ctx, id)
	if err != nil {
		return core.Note{}, err
	}
	known, err := r.Categories(ctx)
	if err != nil {
		return core.Note{}, err
	}

	note.Categories = resolveLabels(known, labels)
	note.Modified = max(r.config.Now().Unix(), note.Modified)
	if err := r.write(note); err != nil {
		return core.Note{}, err
	}
	r.config.Logger.Debug("note categorized", "id", id, "categories", note.Categories)
	return note, nil
}

// Categories returns every label used in the vault, sorted ignoring case.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	notes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var all []string
	for _, n := range notes {
		all = append(all, n.Categories...)
	}
	// List is newest first; resolve oldest first so the earliest spelling wins.
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	labels := resolveLabels(nil, all)
	sort.Slice(labels, func(i, j int) bool {
		return strings.ToLower(labels[i]) < strings.ToLower(labels[j])
	})
	return labels, nil
}

// resolveLabels returns labels without blanks or case-insensitive duplicates,
// replacing each with its spelling in known when present.
func resolveLabels(known, labels []string) []string {
	spelling := make(map[string]string, len(known))
	for _, k := range known {
		spelling[strings.ToLower(k)] = k
	}

	out := make([]string, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		key := strings.ToLower(label)
		if seen[key] {
			continue
		}
		seen[key] = true
		if stored, ok := spelling[key]; ok {
			label = stored
		}
		out = append(out, label)
	}
	return out
}

var _ core.Categorizer = (*Repository)(nil)
