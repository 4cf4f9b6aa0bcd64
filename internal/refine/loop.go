// Package refine iteratively improves a low-coverage ResumeRecord. Each
// iteration asks the model to strengthen the weak sections, merges the
// answer additively, and re-checks coverage with the same deterministic
// assessment that triggered refinement.
package refine

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/minhle/cv-match/internal/completion"
	"github.com/minhle/cv-match/internal/llm"
	"github.com/minhle/cv-match/internal/prompts"
	"github.com/minhle/cv-match/internal/quality"
	"github.com/minhle/cv-match/internal/schemas"
	"github.com/minhle/cv-match/internal/types"
)

// DefaultMaxIterations bounds the refinement loop.
const DefaultMaxIterations = 3

// Result carries the refined record together with its final assessment and
// how many iterations were spent.
type Result struct {
	Record     *types.ResumeRecord
	Assessment types.QualityAssessment
	Iterations int
}

// Refine runs up to maxIterations improvement rounds on the record. It keeps
// the best-scoring record seen so far and returns it even when the threshold
// is never reached; an exhausted loop is a best-effort answer, not a failure.
func Refine(ctx context.Context, client llm.Client, record *types.ResumeRecord, assessment types.QualityAssessment, threshold float64, maxIterations int) (*Result, error) {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	best := record.Clone()
	bestAssessment := assessment
	current := record

	for iteration := 1; iteration <= maxIterations; iteration++ {
		if !assessment.NeedsRefinement {
			break
		}

		refined, err := refineOnce(ctx, client, current, assessment.WeakAreas)
		if err != nil {
			return nil, err
		}

		merged := completion.MergeAdditive(current, refined)
		assessment = quality.Assess(merged, threshold)
		current = merged

		if assessment.Score > bestAssessment.Score {
			best = merged
			bestAssessment = assessment
		}

		if !assessment.NeedsRefinement {
			return &Result{Record: merged, Assessment: assessment, Iterations: iteration}, nil
		}

		if iteration == maxIterations {
			return &Result{Record: best, Assessment: bestAssessment, Iterations: iteration}, nil
		}
	}

	return &Result{Record: best, Assessment: bestAssessment, Iterations: 0}, nil
}

func refineOnce(ctx context.Context, client llm.Client, record *types.ResumeRecord, weakAreas []string) (*types.ResumeRecord, error) {
	recordJSON, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, &RefinementError{Message: "cannot encode resume", Cause: err}
	}

	template := prompts.MustGet("lgir.json", "refine-resume")
	prompt := prompts.Format(template, map[string]string{
		"ResumeJSON": string(recordJSON),
		"WeakAreas":  strings.Join(weakAreas, ", "),
	})

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &RefinementError{Message: "model call failed", Cause: err}
	}

	jsonText := llm.ExtractJSON(responseText)
	if jsonText == "" {
		return nil, &RefinementError{Message: "no JSON object in model response"}
	}

	if err := schemas.Validate(schemas.ResumeRecord, []byte(jsonText)); err != nil {
		return nil, &RefinementError{Message: "model response does not match resume shape", Cause: err}
	}

	var refined types.ResumeRecord
	if err := json.Unmarshal([]byte(jsonText), &refined); err != nil {
		return nil, &RefinementError{Message: "model response does not match resume shape", Cause: err}
	}

	return &refined, nil
}
