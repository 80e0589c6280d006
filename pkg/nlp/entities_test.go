package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntitiesLeaveType(t *testing.T) {
	cases := []struct {
		utterance string
		want      string
	}{
		{"casual leave balance", "Casual Leave"},
		{"how many sick leave left", "Sick Leave"},
		{"medical leave remaining", "Sick Leave"},
		{"earned leave balance", "Earned Leave"},
		{"privilege leave balance", "Earned Leave"},
	}

	for _, tc := range cases {
		entities := ExtractEntities(Normalize(tc.utterance))
		assert.Equal(t, tc.want, entities[EntityLeaveType], "utterance %q", tc.utterance)
	}
}

func TestExtractEntitiesPercentage(t *testing.T) {
	entities := ExtractEntities(Normalize("is 12% pf deducted"))
	assert.Equal(t, "12", entities[EntityPercentage])
	assert.Empty(t, entities[EntityAmount])
}

func TestExtractEntitiesAmount(t *testing.T) {
	entities := ExtractEntities(Normalize("why is 50000 rs deducted from my salary"))
	assert.Equal(t, "50000", entities[EntityAmount])

	entities = ExtractEntities(Normalize("is my ctc 6 lakhs"))
	assert.Equal(t, "6", entities[EntityAmount])
}

func TestExtractEntitiesBareNumberIsNotAmount(t *testing.T) {
	for _, utterance := range []string{"leave balance 2024", "why is 50000 my base salary"} {
		entities := ExtractEntities(Normalize(utterance))
		assert.Empty(t, entities[EntityAmount], "utterance %q", utterance)
	}
}

func TestExtractEntitiesNone(t *testing.T) {
	entities := ExtractEntities(Normalize("who is my manager"))
	assert.Empty(t, entities)
}
