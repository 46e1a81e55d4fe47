// Package matching contains the ingredient-to-pantry matching engine:
// name normalization, an escalating match-strategy cascade, instance-counted
// availability calculation and similarity-ranked match suggestions.
package matching

import (
	"strings"
	"unicode"
)

// DefaultStopWords returns the built-in preparation/state adjectives that
// are stripped before comparison.
func DefaultStopWords() []string {
	return []string{
		"fresh", "dried", "chopped", "minced", "sliced", "diced",
		"whole", "ground", "powdered", "grated", "crushed",
		"finely", "roughly", "thinly", "thickly",
	}
}

// Normalizer canonicalizes free-text ingredient and product names for
// comparison. It is pure and deterministic; the stop-word list is injected
// so deployments can override it per locale.
type Normalizer struct {
	stopWords map[string]struct{}
}

// NewNormalizer creates a normalizer with the given stop-word list
func NewNormalizer(stopWords []string) *Normalizer {
	words := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		words[strings.ToLower(w)] = struct{}{}
	}
	return &Normalizer{stopWords: words}
}

// Normalize lower-cases the name, strips punctuation, removes stop words
// as whole words and collapses internal whitespace. Empty or
// whitespace-only input yields the empty string. Idempotent.
func (n *Normalizer) Normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if _, stop := n.stopWords[w]; !stop {
			kept = append(kept, w)
		}
	}

	return strings.Join(kept, " ")
}

// Keywords normalizes the name and splits it into match keywords: words
// longer than two characters, plus the last two words joined as one
// compound keyword when the name has more than two words. The compound
// captures product names like "olive oil" inside "extra virgin olive oil".
func (n *Normalizer) Keywords(name string) []string {
	words := strings.Fields(n.Normalize(name))

	var keywords []string
	for _, w := range words {
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
	}
	if len(words) > 2 {
		keywords = append(keywords, words[len(words)-2]+" "+words[len(words)-1])
	}

	return keywords
}
