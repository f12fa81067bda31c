package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/knowling/pkg/core"
	"github.com/aretw0/knowling/pkg/timeline"
)

func TestPrintBuckets(t *testing.T) {
	buckets := []timeline.Bucket{
		{Label: "Today", Notes: []core.Note{
			{ID: "a", Text: "# A rather long heading that gets cut\nbody"},
		}},
		{Label: "May 2024", Notes: []core.Note{
			{ID: "b", Text: "short"},
			{ID: "c", Text: ""},
		}},
	}

	var buf bytes.Buffer
	printBuckets(&buf, buckets)

	want := "Today\n" +
		"  a  A rather long heading tha\n" +
		"\n" +
		"May 2024\n" +
		"  b  short\n" +
		"  c  \n"
	assert.Equal(t, want, buf.String())
}
