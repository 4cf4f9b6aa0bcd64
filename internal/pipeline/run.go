// Package pipeline chains the parsing, completion, quality, refinement, and
// scoring stages into the two flows the service exposes: parse a resume, or
// parse-complete-refine then score it against a set of jobs.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/minhle/cv-match/internal/classify"
	"github.com/minhle/cv-match/internal/completion"
	"github.com/minhle/cv-match/internal/llm"
	"github.com/minhle/cv-match/internal/parsing"
	"github.com/minhle/cv-match/internal/quality"
	"github.com/minhle/cv-match/internal/refine"
	"github.com/minhle/cv-match/internal/scoring"
	"github.com/minhle/cv-match/internal/skills"
	"github.com/minhle/cv-match/internal/types"
)

// Pipeline run states, logged at each transition.
const (
	StateReceived       = "received"
	StateClassified     = "classified"
	StateCompleted      = "completed"
	StateQualityChecked = "quality_checked"
	StateRefining       = "refining"
	StateScoring        = "scoring"
	StateDone           = "done"
	StateFailed         = "failed"
)

// Completion method labels reported in responses.
const (
	MethodSimple      = "simple"
	MethodInteractive = "interactive"
)

// Options tunes pipeline behavior.
type Options struct {
	QualityThreshold float64
	MaxIterations    int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		QualityThreshold: quality.DefaultThreshold,
		MaxIterations:    refine.DefaultMaxIterations,
	}
}

// Pipeline owns the model client and the skill ontology shared by runs.
type Pipeline struct {
	client   llm.Client
	ontology *skills.Ontology
	opts     Options
	log      *zap.Logger
}

// New builds a pipeline.
func New(client llm.Client, log *zap.Logger, opts Options) *Pipeline {
	if opts.QualityThreshold <= 0 {
		opts.QualityThreshold = quality.DefaultThreshold
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = refine.DefaultMaxIterations
	}
	return &Pipeline{
		client:   client,
		ontology: skills.NewOntology(),
		opts:     opts,
		log:      log,
	}
}

// Parse runs the parser stage alone on raw resume text.
func (p *Pipeline) Parse(ctx context.Context, resumeText string) (*types.ResumeRecord, error) {
	runID := uuid.NewString()
	log := p.log.With(zap.String("run_id", runID))
	log.Info("pipeline state", zap.String("state", StateReceived), zap.Int("text_len", len(resumeText)))

	record, err := parsing.ParseResume(ctx, p.client, resumeText)
	if err != nil {
		log.Warn("pipeline state", zap.String("state", StateFailed), zap.Error(err))
		return nil, err
	}

	log.Info("pipeline state", zap.String("state", StateDone), zap.String("resume_name", record.Name))
	return record, nil
}

// ScoreRequest is the input of a full scoring run. Exactly one of Record and
// ResumeText must be set; when Record is nil the text is parsed first.
type ScoreRequest struct {
	Record     *types.ResumeRecord
	ResumeText string
	Jobs       []types.JobDescription
	History    *types.InteractionHistory
}

// Score runs the full flow and scores the resume against every job. Failures
// before the scoring fan-out abort the run; a single job failing only turns
// its slot into an error entry.
func (p *Pipeline) Score(ctx context.Context, req ScoreRequest) (*types.ScoreResponse, error) {
	runID := uuid.NewString()
	log := p.log.With(zap.String("run_id", runID))
	log.Info("pipeline state", zap.String("state", StateReceived), zap.Int("jobs", len(req.Jobs)))

	record := req.Record
	if record == nil {
		parsed, err := parsing.ParseResume(ctx, p.client, req.ResumeText)
		if err != nil {
			log.Warn("pipeline state", zap.String("state", StateFailed), zap.Error(err))
			return nil, err
		}
		record = parsed
	} else {
		record = record.Clone()
		record.Normalize()
	}

	class := classify.Classify(req.History)
	interactionCount := 0
	if req.History != nil {
		interactionCount = req.History.InteractionCount
	}
	log.Info("pipeline state", zap.String("state", StateClassified), zap.String("user_class", string(class)))

	method := MethodSimple
	if class == classify.Warm {
		method = MethodInteractive
	}

	completed, err := completion.Complete(ctx, p.client, record, class, req.History)
	if err != nil {
		log.Warn("pipeline state", zap.String("state", StateFailed), zap.Error(err))
		return nil, err
	}
	log.Info("pipeline state", zap.String("state", StateCompleted), zap.String("method", method))

	assessment := quality.Assess(completed, p.opts.QualityThreshold)
	log.Info("pipeline state", zap.String("state", StateQualityChecked),
		zap.Float64("score", assessment.Score),
		zap.Bool("needs_refinement", assessment.NeedsRefinement))

	refined := false
	if assessment.NeedsRefinement {
		log.Info("pipeline state", zap.String("state", StateRefining), zap.Strings("weak_areas", assessment.WeakAreas))
		result, err := refine.Refine(ctx, p.client, completed, assessment, p.opts.QualityThreshold, p.opts.MaxIterations)
		if err != nil {
			log.Warn("pipeline state", zap.String("state", StateFailed), zap.Error(err))
			return nil, err
		}
		completed = result.Record
		assessment = result.Assessment
		refined = result.Iterations > 0
	}

	log.Info("pipeline state", zap.String("state", StateScoring))
	matches, err := p.scoreAll(ctx, completed, assessment.Score, method, req.Jobs)
	if err != nil {
		log.Warn("pipeline state", zap.String("state", StateFailed), zap.Error(err))
		return nil, err
	}

	analysis := overallAnalysis(method, class, assessment, refined, matches)

	log.Info("pipeline state", zap.String("state", StateDone))
	return &types.ScoreResponse{
		ResumeName:         completed.Name,
		Matches:            matches,
		OverallSuggestions: analysis.suggestions,
		ResumeStrengths:    analysis.strengths,
		ResumeWeaknesses:   analysis.weaknesses,
		CompletionMethod:   method,
		UserClass:          string(class),
		InteractionCount:   interactionCount,
		Deterministic:      true,
	}, nil
}

// scoreAll fans out one scoring call per job. Each goroutine writes only its
// own slot so the output order always mirrors the input order. Context
// cancellation is the only error that crosses job boundaries.
func (p *Pipeline) scoreAll(ctx context.Context, record *types.ResumeRecord, qualityScore float64, method string, jobs []types.JobDescription) ([]types.JobMatchResult, error) {
	in := scoring.Input{
		Record:           record,
		QualityScore:     qualityScore,
		CompletionMethod: method,
		Ontology:         p.ontology,
	}

	matches := make([]types.JobMatchResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)

	for i, job := range jobs {
		g.Go(func() error {
			result, err := scoring.ScoreJob(gctx, p.client, in, job)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				p.log.Warn("job scoring failed",
					zap.String("job_title", job.Title),
					zap.Error(err))
				matches[i] = types.JobMatchResult{
					JobTitle:    job.Title,
					Company:     job.Company,
					Strengths:   []string{},
					Gaps:        []string{},
					Suggestions: []string{},
					Error:       err.Error(),
				}
				return nil
			}
			matches[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}

type analysisSummary struct {
	strengths   []string
	weaknesses  []string
	suggestions []string
}

// overallAnalysis derives response-level strengths, weaknesses, and
// suggestions from the run itself. No model call; the same run always yields
// the same summary.
func overallAnalysis(method string, class classify.UserClass, assessment types.QualityAssessment, refined bool, matches []types.JobMatchResult) analysisSummary {
	var a analysisSummary

	if assessment.Score >= 80 {
		a.strengths = append(a.strengths, "Resume covers all major sections thoroughly")
	} else if assessment.Score >= quality.DefaultThreshold {
		a.strengths = append(a.strengths, "Resume covers the essential sections")
	}
	if method == MethodInteractive {
		a.strengths = append(a.strengths, fmt.Sprintf("Profile enriched from %s user interaction history", string(class)))
	}

	for _, area := range assessment.WeakAreas {
		a.weaknesses = append(a.weaknesses, fmt.Sprintf("Limited %s information", area))
	}
	if refined && assessment.NeedsRefinement {
		a.suggestions = append(a.suggestions, "Add more detail to the weak sections listed; automatic enrichment could not fully close the gaps")
	}

	failed := 0
	var bestTitle string
	bestScore := -1.0
	for _, m := range matches {
		if m.Error != "" {
			failed++
			continue
		}
		if m.OverallScore > bestScore {
			bestScore = m.OverallScore
			bestTitle = m.JobTitle
		}
	}
	if bestTitle != "" && bestScore >= 70 {
		a.suggestions = append(a.suggestions, fmt.Sprintf("Strongest match: %s (%.0f)", bestTitle, bestScore))
	}
	if failed > 0 {
		a.suggestions = append(a.suggestions, fmt.Sprintf("%d of %d jobs could not be scored; retry those entries", failed, len(matches)))
	}

	if a.strengths == nil {
		a.strengths = []string{}
	}
	if a.weaknesses == nil {
		a.weaknesses = []string{}
	}
	if a.suggestions == nil {
		a.suggestions = []string{}
	}
	return a
}
