package types

// JobDescription represents a target job posting supplied by the caller.
// It is read-only to the pipeline.
type JobDescription struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	RequiredSkills   []string `json:"required_skills"`
}

// InteractionHistory carries the jobs a user has previously engaged with.
// Consumed only by the interaction classifier and interactive completion.
type InteractionHistory struct {
	JobDescriptions  []JobDescription `json:"job_descriptions"`
	InteractionCount int              `json:"interaction_count"`
}
