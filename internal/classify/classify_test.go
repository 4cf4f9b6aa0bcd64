package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhle/cv-match/internal/types"
)

func TestClassify(t *testing.T) {
	makeJobs := func(n int) []types.JobDescription {
		jobs := make([]types.JobDescription, n)
		for i := range jobs {
			jobs[i] = types.JobDescription{Title: "Engineer", Company: "Acme"}
		}
		return jobs
	}

	tests := []struct {
		name    string
		history *types.InteractionHistory
		want    UserClass
	}{
		{
			name:    "nil history",
			history: nil,
			want:    Cold,
		},
		{
			name:    "empty history",
			history: &types.InteractionHistory{},
			want:    Cold,
		},
		{
			name:    "negative count",
			history: &types.InteractionHistory{InteractionCount: -1, JobDescriptions: makeJobs(6)},
			want:    Cold,
		},
		{
			name:    "count just below threshold",
			history: &types.InteractionHistory{InteractionCount: 4, JobDescriptions: makeJobs(4)},
			want:    Cold,
		},
		{
			name:    "count at threshold",
			history: &types.InteractionHistory{InteractionCount: 5, JobDescriptions: makeJobs(5)},
			want:    Warm,
		},
		{
			name:    "count high but few job descriptions",
			history: &types.InteractionHistory{InteractionCount: 10, JobDescriptions: makeJobs(2)},
			want:    Cold,
		},
		{
			name:    "count above threshold",
			history: &types.InteractionHistory{InteractionCount: 12, JobDescriptions: makeJobs(12)},
			want:    Warm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.history))
		})
	}
}
