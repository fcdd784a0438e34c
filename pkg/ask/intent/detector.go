package intent

import (
	"testdesk-be/pkg/ask/normalizer"
)

// Detection is the detector's verdict for one question.
type Detection struct {
	Intent Intent
	Score  int
}

// Detect scores the normalized question against every catalog entry and
// returns the best match. A trigger group counts when all of its tokens
// appear in the question's token set; longer groups contribute more, so
// specific phrasings beat generic keyword overlap. A strictly higher score is
// required to displace an earlier-declared intent, which makes the
// first-declared-wins tie-break stable across runs. Questions matching
// nothing resolve to UNKNOWN with score 0.
func Detect(normalized string) Detection {
	tokens := normalizer.Tokens(normalized)

	best := Detection{Intent: Unknown(), Score: 0}
	for _, in := range Catalog() {
		if in.Kind == KindUnknown {
			continue
		}
		score := 0
		for _, group := range in.Triggers {
			if containsAll(tokens, group) {
				score += len(group)
			}
		}
		if score > best.Score {
			best = Detection{Intent: in, Score: score}
		}
	}
	return best
}

func containsAll(tokens map[string]bool, group TriggerGroup) bool {
	for _, token := range group {
		if !tokens[token] {
			return false
		}
	}
	return true
}
