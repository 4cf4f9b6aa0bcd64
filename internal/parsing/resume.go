// Package parsing converts raw resume text into a structured ResumeRecord
// using LLM extraction.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/minhle/cv-match/internal/llm"
	"github.com/minhle/cv-match/internal/prompts"
	"github.com/minhle/cv-match/internal/schemas"
	"github.com/minhle/cv-match/internal/types"
)

// ParseResume extracts a ResumeRecord from raw resume text.
// Empty input fails before any model call is made.
func ParseResume(ctx context.Context, client llm.Client, resumeText string) (*types.ResumeRecord, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &ParseError{Message: "resume text is empty"}
	}

	prompt := buildParsePrompt(resumeText)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ParseError{Message: "model call failed", Cause: err}
	}

	return coerceRecord(responseText)
}

// buildParsePrompt constructs the extraction prompt
func buildParsePrompt(resumeText string) string {
	template := prompts.MustGet("lgir.json", "parse-resume")
	return prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})
}

// coerceRecord validates the model response against the ResumeRecord schema
// and unmarshals it. Unknown fields are dropped; missing fields default to
// empty via Normalize.
func coerceRecord(responseText string) (*types.ResumeRecord, error) {
	jsonText := llm.ExtractJSON(responseText)
	if jsonText == "" {
		return nil, &SchemaError{Message: "no JSON object in model response"}
	}

	if err := schemas.Validate(schemas.ResumeRecord, []byte(jsonText)); err != nil {
		return nil, &SchemaError{Message: "model response does not match resume schema", Cause: err}
	}

	var record types.ResumeRecord
	if err := json.Unmarshal([]byte(jsonText), &record); err != nil {
		return nil, &SchemaError{Message: "cannot decode model response", Cause: err}
	}

	record.Normalize()
	return &record, nil
}
