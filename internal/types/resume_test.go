package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeRecord_NormalizeReplacesNilSlices(t *testing.T) {
	record := &ResumeRecord{
		Experience: []Experience{{Title: "Engineer"}},
	}

	record.Normalize()

	assert.NotNil(t, record.Skills)
	assert.NotNil(t, record.Education)
	assert.NotNil(t, record.Certifications)
	assert.NotNil(t, record.Languages)
	assert.NotNil(t, record.Experience[0].Responsibilities)
	assert.NotNil(t, record.Experience[0].Achievements)
}

func TestResumeRecord_NormalizeKeepsData(t *testing.T) {
	record := &ResumeRecord{
		Name:   "Jane",
		Skills: []string{"Go"},
	}

	record.Normalize()

	assert.Equal(t, "Jane", record.Name)
	assert.Equal(t, []string{"Go"}, record.Skills)
}

func TestResumeRecord_MarshalsWithStableShape(t *testing.T) {
	record := &ResumeRecord{}
	record.Normalize()

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"name", "contact", "summary", "skills", "experience", "education", "certifications", "languages"} {
		assert.Contains(t, decoded, key)
	}
	// Empty slices serialize as [], not null.
	assert.Equal(t, []any{}, decoded["skills"])
}

func TestResumeRecord_CloneIsDeep(t *testing.T) {
	original := &ResumeRecord{
		Name:   "Jane",
		Skills: []string{"Go"},
		Experience: []Experience{
			{Title: "Engineer", Responsibilities: []string{"Build"}},
		},
		Education: []Education{{Degree: "BSc"}},
	}

	clone := original.Clone()
	clone.Name = "Changed"
	clone.Skills[0] = "Rust"
	clone.Experience[0].Responsibilities[0] = "Changed"
	clone.Education[0].Degree = "Changed"

	assert.Equal(t, "Jane", original.Name)
	assert.Equal(t, "Go", original.Skills[0])
	assert.Equal(t, "Build", original.Experience[0].Responsibilities[0])
	assert.Equal(t, "BSc", original.Education[0].Degree)
}
