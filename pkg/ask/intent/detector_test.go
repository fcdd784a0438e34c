package intent

import (
	"strings"
	"testing"

	"testdesk-be/pkg/ask/normalizer"

	"github.com/stretchr/testify/assert"
)

// Every trigger group, phrased verbatim, must detect its own intent.
func TestDetectTriggerGroupContainment(t *testing.T) {
	for _, in := range Catalog() {
		for _, group := range in.Triggers {
			question := strings.Join(group, " ")
			det := Detect(normalizer.Normalize(question))
			assert.Equal(t, in.Kind, det.Intent.Kind, "question: %q", question)
			assert.Greater(t, det.Score, 0)
		}
	}
}

func TestDetectNaturalPhrasings(t *testing.T) {
	cases := map[string]Kind{
		"show me all scenarios":               KindListScenarios,
		"what scenarios are there":            KindListScenarios,
		"which scenario has the most defects": KindMostDefectsScenario,
		"which scenario is worst":             KindMostDefectsScenario,
		"most buggy scenario":                 KindMostDefectsScenario,
		"highest defect count":                KindMostDefectsScenario,
		"show open bugs":                      KindOpenDefects,
		"unresolved defects":                  KindOpenDefects,
		"steps that failed":                   KindFailedSteps,
		"which steps are failing":             KindFailedSteps,
		"steps without proof":                 KindNoProofSteps,
		"which steps need evidence":           KindNoProofSteps,
	}
	for question, want := range cases {
		det := Detect(normalizer.Normalize(question))
		assert.Equal(t, want, det.Intent.Kind, "question: %q", question)
	}
}

func TestDetectUnknownForGibberish(t *testing.T) {
	det := Detect(normalizer.Normalize("asdlkj random text"))
	assert.Equal(t, KindUnknown, det.Intent.Kind)
	assert.Equal(t, 0, det.Score)
}

func TestDetectUnknownForEmptyInput(t *testing.T) {
	det := Detect("")
	assert.Equal(t, KindUnknown, det.Intent.Kind)
}

// A question satisfying groups of equal weight in two intents must resolve to
// the first-declared one, and the outcome must not vary between runs.
func TestDetectTieBreakFirstDeclaredWins(t *testing.T) {
	// "most defects" (MOST_DEFECTS_SCENARIO) and "open defects" (OPEN_DEFECTS)
	// both score 2 here; MOST_DEFECTS_SCENARIO is declared earlier.
	question := "most open defects"
	for i := 0; i < 50; i++ {
		det := Detect(normalizer.Normalize(question))
		assert.Equal(t, KindMostDefectsScenario, det.Intent.Kind)
	}
}

// Longer groups outrank shorter ones: specific phrasing beats generic overlap.
func TestDetectSpecificityWeighting(t *testing.T) {
	det := Detect(normalizer.Normalize("highest defect count"))
	assert.Equal(t, KindMostDefectsScenario, det.Intent.Kind)
	assert.Equal(t, 3, det.Score)
}
