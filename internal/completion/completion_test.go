package completion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/cv-match/internal/classify"
	"github.com/minhle/cv-match/internal/llm/llmtest"
	"github.com/minhle/cv-match/internal/types"
)

func TestComplete_SimpleMode(t *testing.T) {
	mock := llmtest.NewClient(`{"summary": "Experienced backend engineer", "skills": ["Go"]}`)
	base := &types.ResumeRecord{Name: "Jane Doe"}

	merged, err := Complete(context.Background(), mock, base, classify.Cold, nil)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", merged.Name)
	assert.Equal(t, "Experienced backend engineer", merged.Summary)
	assert.Equal(t, []string{"Go"}, merged.Skills)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.NotContains(t, calls[0].Prompt, "Jobs the user interacted with")
}

func TestComplete_InteractiveModeCarriesHistory(t *testing.T) {
	mock := llmtest.NewClient(`{"skills": ["Kubernetes"]}`)
	base := &types.ResumeRecord{Name: "Jane Doe"}
	history := &types.InteractionHistory{
		InteractionCount: 6,
		JobDescriptions: []types.JobDescription{
			{Title: "Platform Engineer", Company: "Acme", RequiredSkills: []string{"Go", "Kubernetes", "AWS", "Terraform"}},
			{Title: "SRE", Company: "Beta"},
		},
	}

	merged, err := Complete(context.Background(), mock, base, classify.Warm, history)

	require.NoError(t, err)
	assert.Contains(t, merged.Skills, "Kubernetes")

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, "1. Platform Engineer at Acme: Go, Kubernetes, AWS")
	assert.Contains(t, calls[0].Prompt, "2. SRE at Beta")
	assert.NotContains(t, calls[0].Prompt, "Terraform")
}

func TestComplete_InteractiveCapsHistoryAtFive(t *testing.T) {
	mock := llmtest.NewClient(`{}`)
	jobs := make([]types.JobDescription, 7)
	for i := range jobs {
		jobs[i] = types.JobDescription{Title: "Engineer", Company: "Acme"}
	}
	history := &types.InteractionHistory{InteractionCount: 7, JobDescriptions: jobs}

	_, err := Complete(context.Background(), mock, &types.ResumeRecord{}, classify.Warm, history)

	require.NoError(t, err)
	prompt := mock.Calls()[0].Prompt
	assert.Contains(t, prompt, "5. Engineer at Acme")
	assert.NotContains(t, prompt, "6. Engineer at Acme")
}

func TestComplete_ModelFailure(t *testing.T) {
	mock := llmtest.NewErrClient(errors.New("connection reset"))

	_, err := Complete(context.Background(), mock, &types.ResumeRecord{}, classify.Cold, nil)

	var completionErr *CompletionError
	require.ErrorAs(t, err, &completionErr)
}

func TestComplete_UnmergeableResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "no JSON at all", response: "I cannot complete this resume."},
		{name: "wrong types", response: `{"skills": "not an array"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llmtest.NewClient(tt.response)

			_, err := Complete(context.Background(), mock, &types.ResumeRecord{}, classify.Cold, nil)

			var completionErr *CompletionError
			require.ErrorAs(t, err, &completionErr)
		})
	}
}
