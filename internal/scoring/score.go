// Package scoring produces a match score for one resume against one job
// description. Scoring always runs at temperature zero so repeated requests
// over the same inputs return the same scores.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minhle/cv-match/internal/llm"
	"github.com/minhle/cv-match/internal/prompts"
	"github.com/minhle/cv-match/internal/schemas"
	"github.com/minhle/cv-match/internal/skills"
	"github.com/minhle/cv-match/internal/types"
)

// Input carries everything one scoring call needs besides the job itself.
type Input struct {
	Record           *types.ResumeRecord
	QualityScore     float64
	CompletionMethod string
	Ontology         *skills.Ontology
}

// modelMatch is the shape the model is asked to return.
type modelMatch struct {
	OverallScore         float64  `json:"overall_score"`
	SkillsMatchScore     float64  `json:"skills_match_score"`
	ExperienceMatchScore float64  `json:"experience_match_score"`
	EducationMatchScore  float64  `json:"education_match_score"`
	Strengths            []string `json:"strengths"`
	Gaps                 []string `json:"gaps"`
	Suggestions          []string `json:"suggestions"`
}

// ScoreJob scores one resume-job pair. All four scores are clamped into
// [0, 100] regardless of what the model returns.
func ScoreJob(ctx context.Context, client llm.Client, in Input, job types.JobDescription) (*types.JobMatchResult, error) {
	resumeJSON, err := json.MarshalIndent(in.Record, "", "  ")
	if err != nil {
		return nil, &ScoringError{Message: "cannot encode resume", Cause: err}
	}

	gapContext := ""
	if in.Ontology != nil {
		gap := in.Ontology.AnalyzeGap(in.Record.Skills, job.RequiredSkills)
		gapContext = gap.FormatForPrompt()
	}

	template := prompts.MustGet("lgir.json", "score-match")
	prompt := prompts.Format(template, map[string]string{
		"QualityLabel":    qualityLabel(in.QualityScore),
		"Method":          in.CompletionMethod,
		"ResumeContext":   string(resumeJSON),
		"JobContext":      formatJob(job),
		"SkillGapContext": gapContext,
	})

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ScoringError{Message: "model call failed", Cause: err}
	}

	jsonText := llm.ExtractJSON(responseText)
	if jsonText == "" {
		return nil, &ScoringError{Message: "no JSON object in model response"}
	}

	if err := schemas.Validate(schemas.JobMatch, []byte(jsonText)); err != nil {
		return nil, &ScoringError{Message: "model response does not match score shape", Cause: err}
	}

	var match modelMatch
	if err := json.Unmarshal([]byte(jsonText), &match); err != nil {
		return nil, &ScoringError{Message: "model response does not match score shape", Cause: err}
	}

	return &types.JobMatchResult{
		JobTitle:             job.Title,
		Company:              job.Company,
		OverallScore:         Clamp(match.OverallScore),
		SkillsMatchScore:     Clamp(match.SkillsMatchScore),
		ExperienceMatchScore: Clamp(match.ExperienceMatchScore),
		EducationMatchScore:  Clamp(match.EducationMatchScore),
		Strengths:            emptyIfNil(match.Strengths),
		Gaps:                 emptyIfNil(match.Gaps),
		Suggestions:          emptyIfNil(match.Suggestions),
	}, nil
}

// Clamp bounds a score to the [0, 100] range.
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func qualityLabel(score float64) string {
	switch {
	case score >= 80:
		return "high"
	case score >= 60:
		return "adequate"
	default:
		return "limited"
	}
}

func formatJob(job types.JobDescription) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\nCompany: %s\n", job.Title, job.Company)
	if len(job.RequiredSkills) > 0 {
		fmt.Fprintf(&sb, "Required skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	}
	if len(job.Requirements) > 0 {
		fmt.Fprintf(&sb, "Requirements:\n- %s\n", strings.Join(job.Requirements, "\n- "))
	}
	if len(job.Responsibilities) > 0 {
		fmt.Fprintf(&sb, "Responsibilities:\n- %s\n", strings.Join(job.Responsibilities, "\n- "))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
