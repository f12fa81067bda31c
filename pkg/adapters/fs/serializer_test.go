package fs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/knowling/pkg/core"
)

func TestSerializeNote_RoundTrip(t *testing.T) {
	notes := []core.Note{
		{ID: "a", Text: "# Groceries\nmilk\neggs", Created: 100, Modified: 200},
		{ID: "b", Text: "", Created: 1, Modified: 1},
		{ID: "c", Text: "\nstarts with a blank line\n---\nand a rule", Created: 5, Modified: 9},
		{ID: "d", Text: "labelled", Created: 3, Modified: 4, Categories: []string{"Home", "two words"}},
	}

	for _, n := range notes {
		t.Run(n.ID, func(t *testing.T) {
			data, err := serializeNote(n)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), "---\nid: "+n.ID+"\n"))

			got, hasHeader, err := parseNote(strings.NewReader(string(data)))
			require.NoError(t, err)
			assert.True(t, hasHeader)
			assert.Equal(t, n, got)
		})
	}
}

func TestParseNote(t *testing.T) {
	t.Run("Plain Markdown", func(t *testing.T) {
		got, hasHeader, err := parseNote(strings.NewReader("just text\nmore"))
		require.NoError(t, err)
		assert.False(t, hasHeader)
		assert.Equal(t, "just text\nmore", got.Text)
	})

	t.Run("CRLF Header", func(t *testing.T) {
		got, hasHeader, err := parseNote(strings.NewReader("---\r\nid: x\r\ncreated: 3\r\nmodified: 4\r\n---\r\nbody"))
		require.NoError(t, err)
		assert.True(t, hasHeader)
		assert.Equal(t, core.Note{ID: "x", Text: "body", Created: 3, Modified: 4}, got)
	})

	t.Run("Empty Header", func(t *testing.T) {
		got, hasHeader, err := parseNote(strings.NewReader("---\n---\nbody"))
		require.NoError(t, err)
		assert.True(t, hasHeader)
		assert.Equal(t, "body", got.Text)
	})

	t.Run("Unclosed Header", func(t *testing.T) {
		_, _, err := parseNote(strings.NewReader("---\nid: x\nbody"))
		assert.Error(t, err)
	})

	t.Run("Broken YAML", func(t *testing.T) {
		_, _, err := parseNote(strings.NewReader("---\nid: [x\n---\nbody"))
		assert.Error(t, err)
	})
}
