package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/knowling/pkg/core"
)

var (
	fence     = []byte("---")
	openFence = []byte("---\n")
)

// frontmatter is the YAML header of a note file.
type frontmatter struct {
	ID         string   `yaml:"id"`
	Created    int64    `yaml:"created"`
	Modified   int64    `yaml:"modified"`
	Categories []string `yaml:"categories,omitempty"`
}

// parseNote reads a note file. Files without frontmatter are returned with
// only Text set; the caller fills identity and timestamps.
func parseNote(r io.Reader) (core.Note, bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Note{}, false, err
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(data, openFence) {
		return core.Note{Text: string(data)}, false, nil
	}

	rest := data[len(openFence):]
	var header, body []byte
	switch {
	case bytes.HasPrefix(rest, fence):
		// Empty header.
		body = rest[len(fence):]
	default:
		idx := bytes.Index(rest, []byte("\n---"))
		if idx == -1 {
			return core.Note{}, false, errors.New("frontmatter started but no closing delimiter found")
		}
		header = rest[:idx+1]
		body = rest[idx+1+len(fence):]
	}
	body = bytes.TrimPrefix(body, []byte("\n"))

	var fm frontmatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return core.Note{}, false, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return core.Note{
		ID:         fm.ID,
		Text:       string(body),
		Created:    fm.Created,
		Modified:   fm.Modified,
		Categories: fm.Categories,
	}, true, nil
}

// serializeNote renders a note as Markdown with a YAML frontmatter header.
func serializeNote(n core.Note) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(openFence)

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(frontmatter{ID: n.ID, Created: n.Created, Modified: n.Modified, Categories: n.Categories}); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}

	buf.Write(fence)
	buf.WriteString("\n")
	buf.WriteString(n.Text)
	return buf.Bytes(), nil
}
