package types

// QualityAssessment is the transient output of the quality detector.
// One is produced per refinement iteration and discarded after use.
type QualityAssessment struct {
	Score           float64  `json:"score"` // 0-100
	NeedsRefinement bool     `json:"needs_refinement"`
	WeakAreas       []string `json:"weak_areas"`
}

// JobMatchResult holds the scoring outcome for one (resume, job) pair.
// A non-empty Error marks a per-job failure entry; the score fields are
// zero in that case.
type JobMatchResult struct {
	JobTitle             string   `json:"job_title"`
	Company              string   `json:"company"`
	OverallScore         float64  `json:"overall_score"`
	SkillsMatchScore     float64  `json:"skills_match_score"`
	ExperienceMatchScore float64  `json:"experience_match_score"`
	EducationMatchScore  float64  `json:"education_match_score"`
	Strengths            []string `json:"strengths"`
	Gaps                 []string `json:"gaps"`
	Suggestions          []string `json:"suggestions"`
	Error                string   `json:"error,omitempty"`
}

// ScoreResponse is the aggregated result of a score request. Matches are
// ordered exactly as the input job list, one entry per job.
type ScoreResponse struct {
	ResumeName         string           `json:"resume_name"`
	Matches            []JobMatchResult `json:"matches"`
	OverallSuggestions []string         `json:"overall_suggestions"`
	ResumeStrengths    []string         `json:"resume_strengths"`
	ResumeWeaknesses   []string         `json:"resume_weaknesses"`
	CompletionMethod   string           `json:"completion_method"`
	UserClass          string           `json:"user_class"`
	InteractionCount   int              `json:"interaction_count"`
	Deterministic      bool             `json:"deterministic"`
}
