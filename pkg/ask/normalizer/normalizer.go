package normalizer

import "strings"

// synonyms maps question vocabulary onto the canonical record-store terms,
// applied per whole token. Every replacement target is itself a fixed point,
// which keeps Normalize idempotent.
var synonyms = map[string]string{
	"bug":         "defect",
	"bugs":        "defects",
	"issue":       "defect",
	"issues":      "defects",
	"test":        "scenario",
	"tests":       "scenarios",
	"testcase":    "scenario",
	"testcases":   "scenarios",
	"evidence":    "proof",
	"proofs":      "proof",
	"screenshot":  "proof",
	"screenshots": "proof",
	"unresolved":  "open",
	"buggy":       "defective",
}

// Normalize canonicalizes raw question text: lower-case, trim, collapse
// whitespace, strip terminal punctuation and substitute synonyms token by
// token. It never fails; empty input yields an empty string.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.TrimRight(text, ".!?;:,")

	tokens := strings.Fields(text)
	for i, token := range tokens {
		if replacement, ok := synonyms[token]; ok {
			tokens[i] = replacement
		}
	}
	return strings.Join(tokens, " ")
}

// Tokens returns the token set of a normalized question.
func Tokens(normalized string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(normalized) {
		set[token] = true
	}
	return set
}
