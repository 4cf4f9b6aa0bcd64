package server

import (
	"errors"
	"net/http"

	"github.com/minhle/cv-match/internal/completion"
	"github.com/minhle/cv-match/internal/extract"
	"github.com/minhle/cv-match/internal/parsing"
	"github.com/minhle/cv-match/internal/refine"
	"github.com/minhle/cv-match/internal/schemas"
	"github.com/minhle/cv-match/internal/scoring"
)

// HTTPStatus maps pipeline errors to response codes. Bad input is 400,
// a model answer the service cannot coerce is 422, and everything that
// failed while talking to the model is 502.
func HTTPStatus(err error) int {
	var extractErr *extract.ExtractionError
	if errors.As(err, &extractErr) {
		return http.StatusBadRequest
	}

	var schemaErr *parsing.SchemaError
	if errors.As(err, &schemaErr) {
		return http.StatusUnprocessableEntity
	}
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity
	}

	var parseErr *parsing.ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Cause == nil {
			// Rejected before any model call, the input itself was bad.
			return http.StatusBadRequest
		}
		return http.StatusBadGateway
	}

	var completionErr *completion.CompletionError
	var refinementErr *refine.RefinementError
	var scoringErr *scoring.ScoringError
	if errors.As(err, &completionErr) || errors.As(err, &refinementErr) || errors.As(err, &scoringErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
