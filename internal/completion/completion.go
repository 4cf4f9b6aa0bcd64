// Package completion fills gaps in a ResumeRecord with plausible inferred
// content. It never overwrites fields the candidate actually stated.
package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minhle/cv-match/internal/classify"
	"github.com/minhle/cv-match/internal/llm"
	"github.com/minhle/cv-match/internal/prompts"
	"github.com/minhle/cv-match/internal/schemas"
	"github.com/minhle/cv-match/internal/types"
)

// maxHistoryJobs caps how many prior job descriptions feed the interactive prompt
const maxHistoryJobs = 5

// maxSkillsPerJob caps the required skills quoted per prior job
const maxSkillsPerJob = 3

// Complete augments a record with inferred attributes. The mode is picked by
// the user class: Cold runs on the record alone, Warm additionally feeds the
// user's prior job descriptions to bias inference toward their interests.
// The returned record preserves every populated field of the input.
func Complete(ctx context.Context, client llm.Client, record *types.ResumeRecord, class classify.UserClass, history *types.InteractionHistory) (*types.ResumeRecord, error) {
	recordJSON, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, &CompletionError{Message: "cannot encode resume", Cause: err}
	}

	var prompt string
	if class == classify.Warm && history != nil {
		template := prompts.MustGet("lgir.json", "complete-interactive")
		prompt = prompts.Format(template, map[string]string{
			"ResumeJSON":      string(recordJSON),
			"InterestContext": buildInterestContext(history.JobDescriptions),
		})
	} else {
		template := prompts.MustGet("lgir.json", "complete-simple")
		prompt = prompts.Format(template, map[string]string{
			"ResumeJSON": string(recordJSON),
		})
	}

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &CompletionError{Message: "model call failed", Cause: err}
	}

	inferred, err := decodeInferred(responseText)
	if err != nil {
		return nil, err
	}

	return MergeAdditive(record, inferred), nil
}

// buildInterestContext renders the user's prior jobs as a numbered list of
// titles, companies, and leading required skills.
func buildInterestContext(jobs []types.JobDescription) string {
	var sb strings.Builder
	for i, job := range jobs {
		if i >= maxHistoryJobs {
			break
		}
		skills := job.RequiredSkills
		if len(skills) > maxSkillsPerJob {
			skills = skills[:maxSkillsPerJob]
		}
		fmt.Fprintf(&sb, "%d. %s at %s: %s\n", i+1, job.Title, job.Company, strings.Join(skills, ", "))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func decodeInferred(responseText string) (*types.ResumeRecord, error) {
	jsonText := llm.ExtractJSON(responseText)
	if jsonText == "" {
		return nil, &CompletionError{Message: "no JSON object in model response"}
	}

	if err := schemas.Validate(schemas.ResumeRecord, []byte(jsonText)); err != nil {
		return nil, &CompletionError{Message: "model response cannot be merged", Cause: err}
	}

	var inferred types.ResumeRecord
	if err := json.Unmarshal([]byte(jsonText), &inferred); err != nil {
		return nil, &CompletionError{Message: "model response cannot be merged", Cause: err}
	}

	return &inferred, nil
}
