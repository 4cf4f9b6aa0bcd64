package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/cv-match/internal/llm"
	"github.com/minhle/cv-match/internal/llm/llmtest"
	"github.com/minhle/cv-match/internal/logger"
	"github.com/minhle/cv-match/internal/parsing"
	"github.com/minhle/cv-match/internal/types"
)

const strongResumeJSON = `{
	"name": "Jane Doe",
	"contact": {"email": "jane@example.com", "phone": "555-1234", "location": "Berlin"},
	"summary": "Backend engineer with eight years of experience.",
	"skills": ["Go", "PostgreSQL", "Kubernetes", "Docker", "AWS"],
	"experience": [
		{"title": "Senior Engineer", "company": "Acme", "responsibilities": ["Built services"]},
		{"title": "Engineer", "company": "Beta", "achievements": ["Cut latency in half"]}
	],
	"education": [{"degree": "BSc", "institution": "TU Berlin"}],
	"certifications": ["CKA"],
	"languages": ["English", "German"]
}`

const matchJSON = `{
	"overall_score": 80,
	"skills_match_score": 85,
	"experience_match_score": 75,
	"education_match_score": 70,
	"strengths": ["Solid Go experience"],
	"gaps": ["Limited cloud exposure"],
	"suggestions": ["Highlight infrastructure work"]
}`

func strongRecord(t *testing.T) *types.ResumeRecord {
	t.Helper()
	record, err := parsing.ParseResume(context.Background(), llmtest.NewClient(strongResumeJSON), "resume text")
	require.NoError(t, err)
	return record
}

// scoreHandler answers completion calls with empty additions and scoring
// calls with the canned match. failTitles marks jobs whose scoring call
// should fail.
func scoreHandler(failTitles ...string) func(prompt string, tier llm.ModelTier) (string, error) {
	return func(prompt string, _ llm.ModelTier) (string, error) {
		if strings.Contains(prompt, "expert HR recruiter") {
			for _, title := range failTitles {
				if strings.Contains(prompt, title) {
					return "", errors.New("503 service unavailable")
				}
			}
			return matchJSON, nil
		}
		return `{}`, nil
	}
}

func newTestPipeline(mock *llmtest.Client) *Pipeline {
	return New(mock, logger.NewNop(), DefaultOptions())
}

func TestParse_EmptyTextFailsWithoutModelCall(t *testing.T) {
	mock := llmtest.NewClient(strongResumeJSON)
	p := newTestPipeline(mock)

	_, err := p.Parse(context.Background(), "   \n  ")

	var parseErr *parsing.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Zero(t, mock.CallCount())
}

func TestParse_ReturnsNormalizedRecord(t *testing.T) {
	mock := llmtest.NewClient(`{"name": "Jane Doe"}`)
	p := newTestPipeline(mock)

	record, err := p.Parse(context.Background(), "Jane Doe resume")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", record.Name)
	assert.NotNil(t, record.Skills)
	assert.NotNil(t, record.Experience)
}

func TestScore_MatchesMirrorInputOrder(t *testing.T) {
	mock := &llmtest.Client{Handler: scoreHandler()}
	p := newTestPipeline(mock)

	jobs := []types.JobDescription{
		{Title: "Backend Engineer", Company: "Acme"},
		{Title: "Platform Engineer", Company: "Beta"},
		{Title: "SRE", Company: "Gamma"},
	}

	response, err := p.Score(context.Background(), ScoreRequest{
		Record: strongRecord(t),
		Jobs:   jobs,
	})

	require.NoError(t, err)
	require.Len(t, response.Matches, 3)
	for i, job := range jobs {
		assert.Equal(t, job.Title, response.Matches[i].JobTitle)
		assert.Equal(t, job.Company, response.Matches[i].Company)
	}
	assert.Equal(t, "Jane Doe", response.ResumeName)
	assert.True(t, response.Deterministic)
	assert.Equal(t, MethodSimple, response.CompletionMethod)
	assert.Equal(t, "cold", response.UserClass)
}

func TestScore_FailedJobIsolatedAsErrorEntry(t *testing.T) {
	mock := &llmtest.Client{Handler: scoreHandler("Platform Engineer")}
	p := newTestPipeline(mock)

	jobs := []types.JobDescription{
		{Title: "Backend Engineer", Company: "Acme"},
		{Title: "Platform Engineer", Company: "Beta"},
		{Title: "SRE", Company: "Gamma"},
	}

	response, err := p.Score(context.Background(), ScoreRequest{
		Record: strongRecord(t),
		Jobs:   jobs,
	})

	require.NoError(t, err)
	require.Len(t, response.Matches, 3)

	assert.Empty(t, response.Matches[0].Error)
	assert.Equal(t, 80.0, response.Matches[0].OverallScore)

	assert.NotEmpty(t, response.Matches[1].Error)
	assert.Equal(t, "Platform Engineer", response.Matches[1].JobTitle)
	assert.Zero(t, response.Matches[1].OverallScore)

	assert.Empty(t, response.Matches[2].Error)
	assert.Equal(t, "SRE", response.Matches[2].JobTitle)
}

func TestScore_WarmHistorySelectsInteractiveMethod(t *testing.T) {
	var sawInteractive bool
	mock := &llmtest.Client{Handler: func(prompt string, _ llm.ModelTier) (string, error) {
		if strings.Contains(prompt, "Jobs the user interacted with") {
			sawInteractive = true
		}
		if strings.Contains(prompt, "expert HR recruiter") {
			return matchJSON, nil
		}
		return `{}`, nil
	}}
	p := newTestPipeline(mock)

	jobs := make([]types.JobDescription, 5)
	for i := range jobs {
		jobs[i] = types.JobDescription{Title: "Engineer", Company: "Acme"}
	}
	history := &types.InteractionHistory{InteractionCount: 6, JobDescriptions: jobs}

	response, err := p.Score(context.Background(), ScoreRequest{
		Record:  strongRecord(t),
		Jobs:    jobs[:1],
		History: history,
	})

	require.NoError(t, err)
	assert.True(t, sawInteractive)
	assert.Equal(t, MethodInteractive, response.CompletionMethod)
	assert.Equal(t, "warm", response.UserClass)
	assert.Equal(t, 6, response.InteractionCount)
}

func TestScore_WeakResumeTriggersRefinement(t *testing.T) {
	var refineCalls int
	mock := &llmtest.Client{Handler: func(prompt string, _ llm.ModelTier) (string, error) {
		switch {
		case strings.Contains(prompt, "expert at refining resumes"):
			refineCalls++
			return `{}`, nil
		case strings.Contains(prompt, "expert HR recruiter"):
			return matchJSON, nil
		default:
			return `{}`, nil
		}
	}}
	p := newTestPipeline(mock)

	weak := &types.ResumeRecord{Name: "Jane Doe"}
	response, err := p.Score(context.Background(), ScoreRequest{
		Record: weak,
		Jobs:   []types.JobDescription{{Title: "Engineer", Company: "Acme"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, refineCalls)
	require.Len(t, response.Matches, 1)
	assert.NotEmpty(t, response.ResumeWeaknesses)
}

func TestScore_StrongResumeSkipsRefinement(t *testing.T) {
	var refineCalls int
	mock := &llmtest.Client{Handler: func(prompt string, _ llm.ModelTier) (string, error) {
		switch {
		case strings.Contains(prompt, "expert at refining resumes"):
			refineCalls++
			return `{}`, nil
		case strings.Contains(prompt, "expert HR recruiter"):
			return matchJSON, nil
		default:
			return `{}`, nil
		}
	}}
	p := newTestPipeline(mock)

	_, err := p.Score(context.Background(), ScoreRequest{
		Record: strongRecord(t),
		Jobs:   []types.JobDescription{{Title: "Engineer", Company: "Acme"}},
	})

	require.NoError(t, err)
	assert.Zero(t, refineCalls)
}

func TestScore_ParsesRawTextWhenNoRecordGiven(t *testing.T) {
	mock := &llmtest.Client{Handler: func(prompt string, _ llm.ModelTier) (string, error) {
		switch {
		case strings.Contains(prompt, "expert CV parser"):
			return strongResumeJSON, nil
		case strings.Contains(prompt, "expert HR recruiter"):
			return matchJSON, nil
		default:
			return `{}`, nil
		}
	}}
	p := newTestPipeline(mock)

	response, err := p.Score(context.Background(), ScoreRequest{
		ResumeText: "Jane Doe, backend engineer...",
		Jobs:       []types.JobDescription{{Title: "Engineer", Company: "Acme"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", response.ResumeName)
}

func TestScore_CompletionFailureAbortsRun(t *testing.T) {
	mock := llmtest.NewErrClient(errors.New("connection refused"))
	p := newTestPipeline(mock)

	_, err := p.Score(context.Background(), ScoreRequest{
		Record: strongRecord(t),
		Jobs:   []types.JobDescription{{Title: "Engineer", Company: "Acme"}},
	})

	require.Error(t, err)
}

func TestScore_CancelledContextAbortsScoring(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := &llmtest.Client{Handler: scoreHandler()}
	p := newTestPipeline(mock)

	_, err := p.Score(ctx, ScoreRequest{
		Record: strongRecord(t),
		Jobs:   []types.JobDescription{{Title: "Engineer", Company: "Acme"}},
	})

	require.Error(t, err)
}

func TestScore_DoesNotMutateCallerRecord(t *testing.T) {
	mock := &llmtest.Client{Handler: func(prompt string, _ llm.ModelTier) (string, error) {
		switch {
		case strings.Contains(prompt, "expert HR recruiter"):
			return matchJSON, nil
		default:
			return `{"skills": ["Injected Skill"]}`, nil
		}
	}}
	p := newTestPipeline(mock)

	record := strongRecord(t)
	skillsBefore := append([]string(nil), record.Skills...)

	_, err := p.Score(context.Background(), ScoreRequest{
		Record: record,
		Jobs:   []types.JobDescription{{Title: "Engineer", Company: "Acme"}},
	})

	require.NoError(t, err)
	assert.Equal(t, skillsBefore, record.Skills)
}
