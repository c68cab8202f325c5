package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlantsInCanton(t *testing.T) {
	records := scenarioRecords()

	zurich := PlantsInCanton(records, "Zürich")
	if assert.Len(t, zurich, 2) {
		assert.Equal(t, Hydro, zurich[0].Source)
		assert.Equal(t, Solar, zurich[1].Source)
	}

	assert.Len(t, PlantsInCanton(records, "Bern"), 1)

	for _, canton := range []string{"Uri", "Atlantis", ""} {
		plants := PlantsInCanton(records, canton)
		assert.NotNil(t, plants)
		assert.Empty(t, plants, canton)
	}
}

func TestPlantsInCantonNormalizesName(t *testing.T) {
	decomposed := "Zu\u0308rich"
	assert.Len(t, PlantsInCanton(scenarioRecords(), decomposed), 2)
	assert.Len(t, PlantsInCanton(scenarioRecords(), " Zürich "), 2)
}

func TestLocated(t *testing.T) {
	records := mixedRecords()
	located := Located(records)

	assert.Len(t, located, 3)
	for _, record := range located {
		assert.True(t, record.HasLocation)
	}
	assert.Empty(t, Located(nil))
}
