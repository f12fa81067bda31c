package fs

import (
	"math"
	"strings"
	"unicode"
)

// termFrequencies counts lower-cased letter/number runs in text.
func termFrequencies(text string) map[string]float64 {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tf := make(map[string]float64, len(words))
	for _, w := range words {
		tf[w]++
	}
	return tf
}

// cosine returns the cosine similarity of two term frequency vectors,
// in [0, 1]. Empty vectors score 0.
func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for term, wa := range a {
		dot += wa * b[term]
	}
	if dot == 0 {
		return 0
	}
	return dot / (norm(a) * norm(b))
}

func norm(v map[string]float64) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
