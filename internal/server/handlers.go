package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/minhle/cv-match/internal/extract"
	"github.com/minhle/cv-match/internal/pipeline"
	"github.com/minhle/cv-match/internal/types"
)

var validate = validator.New()

// maxPDFBytes caps uploaded resume PDFs at 10 MB.
const maxPDFBytes = 10 << 20

type parseTextRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

type scoreRequest struct {
	Resume             *types.ResumeRecord       `json:"resume"`
	ResumeText         string                    `json:"resume_text"`
	TargetJobs         []types.JobDescription    `json:"target_jobs" validate:"required,min=1"`
	InteractionHistory *types.InteractionHistory `json:"interaction_history"`
}

// handleParsePDF extracts text from an uploaded PDF and parses it into a
// structured resume. The file goes in a multipart field named "file".
func (s *Server) handleParsePDF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPDFBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPDFBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "cannot read uploaded file")
		return
	}
	if len(data) > maxPDFBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "file exceeds 10MB limit")
		return
	}

	text, err := extract.Text(data)
	if err != nil {
		s.log.Warn("pdf extraction failed", zap.String("filename", header.Filename), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.runParse(r.Context(), w, text)
}

// handleParseText parses raw resume text into a structured resume.
func (s *Server) handleParseText(w http.ResponseWriter, r *http.Request) {
	var req parseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	s.runParse(r.Context(), w, req.ResumeText)
}

func (s *Server) runParse(ctx context.Context, w http.ResponseWriter, text string) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	record, err := s.pipeline.Parse(ctx, text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleScore runs the full pipeline and scores the resume against each
// target job. Individual job failures show up as error entries inside a 200
// response; only base-resume failures produce an error status.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "target_jobs must contain at least one job")
		return
	}
	if req.Resume == nil && strings.TrimSpace(req.ResumeText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "either resume or resume_text is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	response, err := s.pipeline.Score(ctx, pipeline.ScoreRequest{
		Record:     req.Resume,
		ResumeText: req.ResumeText,
		Jobs:       req.TargetJobs,
		History:    req.InteractionHistory,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if r.URL.Query().Get("sort") == "score" {
		sortByScore(response.Matches)
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// sortByScore ranks matches by overall score, highest first. Failed entries
// sink to the bottom.
func sortByScore(matches []types.JobMatchResult) {
	sort.SliceStable(matches, func(i, j int) bool {
		if (matches[i].Error != "") != (matches[j].Error != "") {
			return matches[i].Error == ""
		}
		return matches[i].OverallScore > matches[j].OverallScore
	})
}
