package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOrderIsStable(t *testing.T) {
	kinds := make([]Kind, 0, len(Catalog()))
	for _, in := range Catalog() {
		kinds = append(kinds, in.Kind)
	}
	assert.Equal(t, []Kind{
		KindListScenarios,
		KindMostDefectsScenario,
		KindOpenDefects,
		KindFailedSteps,
		KindNoProofSteps,
		KindUnknown,
	}, kinds)
}

func TestUnknownHasNoTriggers(t *testing.T) {
	assert.Equal(t, KindUnknown, Unknown().Kind)
	assert.Empty(t, Unknown().Triggers)
}

func TestValidateCatalogAcceptsCurrentTable(t *testing.T) {
	require.NoError(t, validateCatalog(catalog))
}

func TestValidateCatalogRejectsSharedTriggerGroup(t *testing.T) {
	bad := []Intent{
		{Kind: KindListScenarios, Triggers: []TriggerGroup{{"show", "scenarios"}}},
		// Same token set, different order: still the same group.
		{Kind: KindFailedSteps, Triggers: []TriggerGroup{{"scenarios", "show"}}},
	}
	err := validateCatalog(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trigger group")
}
