package completion

import (
	"strings"

	"github.com/minhle/cv-match/internal/types"
)

// MergeAdditive folds inferred fields into a copy of the base record.
// The merge is additive-only: a field already populated in base is never
// replaced, list entries are appended with case-insensitive dedupe, and
// existing entries are never modified.
func MergeAdditive(base, inferred *types.ResumeRecord) *types.ResumeRecord {
	merged := base.Clone()
	merged.Normalize()
	if inferred == nil {
		return merged
	}

	if merged.Name == "" {
		merged.Name = inferred.Name
	}
	if merged.Summary == "" {
		merged.Summary = inferred.Summary
	}
	mergeContact(&merged.Contact, inferred.Contact)

	merged.Skills = appendMissing(merged.Skills, inferred.Skills)
	merged.Certifications = appendMissing(merged.Certifications, inferred.Certifications)
	merged.Languages = appendMissing(merged.Languages, inferred.Languages)

	for _, exp := range inferred.Experience {
		if !hasExperience(merged.Experience, exp) {
			exp.Responsibilities = appendMissing(nil, exp.Responsibilities)
			exp.Achievements = appendMissing(nil, exp.Achievements)
			merged.Experience = append(merged.Experience, exp)
		}
	}
	for _, edu := range inferred.Education {
		if !hasEducation(merged.Education, edu) {
			merged.Education = append(merged.Education, edu)
		}
	}

	return merged
}

func mergeContact(dst *types.ContactInfo, src types.ContactInfo) {
	if dst.Email == "" {
		dst.Email = src.Email
	}
	if dst.Phone == "" {
		dst.Phone = src.Phone
	}
	if dst.Location == "" {
		dst.Location = src.Location
	}
	if dst.LinkedIn == "" {
		dst.LinkedIn = src.LinkedIn
	}
	if dst.GitHub == "" {
		dst.GitHub = src.GitHub
	}
}

// appendMissing appends items not already present, comparing case-insensitively
func appendMissing(dst, src []string) []string {
	if dst == nil {
		dst = []string{}
	}
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[normalizeKey(s)] = true
	}
	for _, s := range src {
		key := normalizeKey(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		dst = append(dst, strings.TrimSpace(s))
	}
	return dst
}

func hasExperience(entries []types.Experience, candidate types.Experience) bool {
	for _, e := range entries {
		if normalizeKey(e.Title) == normalizeKey(candidate.Title) &&
			normalizeKey(e.Company) == normalizeKey(candidate.Company) {
			return true
		}
	}
	return false
}

func hasEducation(entries []types.Education, candidate types.Education) bool {
	for _, e := range entries {
		if normalizeKey(e.Degree) == normalizeKey(candidate.Degree) &&
			normalizeKey(e.Institution) == normalizeKey(candidate.Institution) {
			return true
		}
	}
	return false
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
