package explain

import (
	"strings"

	"testdesk-be/pkg/ask/intent"
	"testdesk-be/pkg/ask/retrieval"
)

// UnknownAnswer is the fixed reply for questions outside the supported
// vocabulary.
const UnknownAnswer = "I didn't quite understand that. Try asking about scenarios, defects, failed steps, or missing proofs."

// emptyAnswers are the canned replies for intents whose query matched nothing.
var emptyAnswers = map[intent.Kind]string{
	intent.KindListScenarios:       "No scenarios found.",
	intent.KindMostDefectsScenario: "No defects found.",
	intent.KindOpenDefects:         "No open defects.",
	intent.KindFailedSteps:         "No failed steps.",
	intent.KindNoProofSteps:        "All steps have proof uploaded.",
}

// fallbackText renders a deterministic answer straight from the fact bundle,
// one sentence per row. It is used whenever the generation service cannot be
// reached, so the user always gets an answer.
func fallbackText(bundle *retrieval.Bundle) string {
	if bundle.IsEmpty() {
		if text, ok := emptyAnswers[bundle.Kind]; ok {
			return text
		}
		return UnknownAnswer
	}

	var b strings.Builder
	b.WriteString("Here is what the test records show:\n")
	for _, row := range bundle.Rows {
		b.WriteString("- ")
		b.WriteString(row.Sentence())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
