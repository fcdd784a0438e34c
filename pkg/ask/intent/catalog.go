package intent

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies one of the closed set of question categories. Every kind
// except KindUnknown is bound to exactly one retrieval query.
type Kind string

const (
	KindListScenarios       Kind = "LIST_SCENARIOS"
	KindMostDefectsScenario Kind = "MOST_DEFECTS_SCENARIO"
	KindOpenDefects         Kind = "OPEN_DEFECTS"
	KindFailedSteps         Kind = "FAILED_STEPS"
	KindNoProofSteps        Kind = "NO_PROOF_STEPS"
	KindUnknown             Kind = "UNKNOWN"
)

// TriggerGroup is a set of tokens that must ALL appear in the normalized
// question for the group to count as evidence for its intent.
type TriggerGroup []string

// Intent is one entry of the static catalog.
type Intent struct {
	Kind        Kind
	Description string
	Triggers    []TriggerGroup
}

// catalog is the process-wide intent table. Declaration order is part of the
// contract: when two intents score equally, the first-declared one wins.
var catalog = []Intent{
	{
		Kind:        KindListScenarios,
		Description: "List all test scenarios",
		Triggers: []TriggerGroup{
			{"list", "scenarios"},
			{"show", "scenarios"},
			{"all", "scenarios"},
			{"what", "scenarios"},
		},
	},
	{
		Kind:        KindMostDefectsScenario,
		Description: "Find the scenario with the most defects",
		Triggers: []TriggerGroup{
			{"most", "defects"},
			{"worst", "scenario"},
			{"defective", "scenario"},
			{"highest", "defect", "count"},
		},
	},
	{
		Kind:        KindOpenDefects,
		Description: "List all open defects",
		Triggers: []TriggerGroup{
			{"open", "defects"},
			{"open", "defect"},
			{"pending", "defects"},
		},
	},
	{
		Kind:        KindFailedSteps,
		Description: "Find all failed test steps",
		Triggers: []TriggerGroup{
			{"failed", "steps"},
			{"failing", "steps"},
			{"failed", "step"},
		},
	},
	{
		Kind:        KindNoProofSteps,
		Description: "Find steps missing proof uploads",
		Triggers: []TriggerGroup{
			{"no", "proof"},
			{"without", "proof"},
			{"missing", "proof"},
			{"need", "proof"},
		},
	},
	{
		Kind:        KindUnknown,
		Description: "Question could not be classified",
	},
}

func init() {
	if err := validateCatalog(catalog); err != nil {
		panic(err)
	}
}

// Catalog returns the intent table in declaration order. Callers must not
// mutate the returned slice.
func Catalog() []Intent {
	return catalog
}

// Unknown returns the catalog's escape-hatch entry.
func Unknown() Intent {
	return catalog[len(catalog)-1]
}

// validateCatalog rejects a table where the same trigger token-set is
// declared by two intents. That would make detection order-dependent in a way
// the declared tie-break rule cannot paper over, so startup aborts.
func validateCatalog(intents []Intent) error {
	seen := make(map[string]Kind)
	for _, in := range intents {
		for _, group := range in.Triggers {
			key := groupKey(group)
			if owner, ok := seen[key]; ok && owner != in.Kind {
				return fmt.Errorf("intent catalog: trigger group [%s] declared by both %s and %s", key, owner, in.Kind)
			}
			seen[key] = in.Kind
		}
	}
	return nil
}

func groupKey(group TriggerGroup) string {
	tokens := make([]string, len(group))
	copy(tokens, group)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
