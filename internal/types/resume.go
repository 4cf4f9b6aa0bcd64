// Package types provides type definitions for structured data used throughout the cv-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord represents a structured resume extracted from raw text.
// Absent data is represented as empty values, never omitted keys, so the
// record always marshals with a stable shape.
type ResumeRecord struct {
	Name           string       `json:"name"`
	Contact        ContactInfo  `json:"contact"`
	Summary        string       `json:"summary"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages"`
}

// ContactInfo holds the candidate's contact details
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// Experience represents a single work experience entry
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
}

// Education represents a single education entry
type Education struct {
	Degree         string  `json:"degree"`
	Institution    string  `json:"institution"`
	GraduationYear int     `json:"graduation_year"`
	GPA            float64 `json:"gpa"`
}

// Normalize replaces nil slices with empty ones so the record always
// serializes with every key present. It never drops populated data.
func (r *ResumeRecord) Normalize() {
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	for i := range r.Experience {
		if r.Experience[i].Responsibilities == nil {
			r.Experience[i].Responsibilities = []string{}
		}
		if r.Experience[i].Achievements == nil {
			r.Experience[i].Achievements = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
}

// Clone returns a deep copy of the record. Stages that augment a resume
// operate on a clone so the caller's record is never mutated in place.
func (r *ResumeRecord) Clone() *ResumeRecord {
	cp := *r
	cp.Skills = copyStrings(r.Skills)
	cp.Certifications = copyStrings(r.Certifications)
	cp.Languages = copyStrings(r.Languages)
	cp.Experience = make([]Experience, len(r.Experience))
	for i, exp := range r.Experience {
		cp.Experience[i] = exp
		cp.Experience[i].Responsibilities = copyStrings(exp.Responsibilities)
		cp.Experience[i].Achievements = copyStrings(exp.Achievements)
	}
	cp.Education = make([]Education, len(r.Education))
	copy(cp.Education, r.Education)
	return &cp
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
