// Package quality scores how well a ResumeRecord covers the sections a
// reviewer expects. The check is fully deterministic; the same function
// decides whether a record enters refinement and whether a refined record
// is good enough to stop.
package quality

import (
	"strings"

	"github.com/minhle/cv-match/internal/types"
)

// DefaultThreshold is the coverage score below which a record is
// considered in need of refinement.
const DefaultThreshold = 60.0

// Section weights. They sum to 100 so the score reads as a percentage.
const (
	weightName           = 10.0
	weightContact        = 10.0
	weightSummary        = 15.0
	weightSkills         = 20.0
	weightExperience     = 25.0
	weightEducation      = 10.0
	weightCertifications = 5.0
	weightLanguages      = 5.0
)

const (
	skillsTarget     = 5
	experienceTarget = 2
)

// Assess computes the coverage score of a record against the given threshold
// and names the sections that hold the score down.
func Assess(record *types.ResumeRecord, threshold float64) types.QualityAssessment {
	var score float64
	var weak []string

	if strings.TrimSpace(record.Name) != "" {
		score += weightName
	} else {
		weak = append(weak, "name")
	}

	if contactScore := scoreContact(record.Contact); contactScore > 0 {
		score += weightContact * contactScore
	} else {
		weak = append(weak, "contact")
	}

	if strings.TrimSpace(record.Summary) != "" {
		score += weightSummary
	} else {
		weak = append(weak, "summary")
	}

	score += weightSkills * partial(len(record.Skills), skillsTarget)
	if len(record.Skills) < skillsTarget {
		weak = append(weak, "skills")
	}

	expScore := scoreExperience(record.Experience)
	score += weightExperience * expScore
	if expScore < 1 {
		weak = append(weak, "experience")
	}

	if len(record.Education) > 0 {
		score += weightEducation
	} else {
		weak = append(weak, "education")
	}

	if len(record.Certifications) > 0 {
		score += weightCertifications
	} else {
		weak = append(weak, "certifications")
	}

	if len(record.Languages) > 0 {
		score += weightLanguages
	} else {
		weak = append(weak, "languages")
	}

	return types.QualityAssessment{
		Score:           score,
		NeedsRefinement: score < threshold,
		WeakAreas:       weak,
	}
}

// scoreContact returns the filled fraction of the contact fields that
// matter for reachability. Email alone counts for half.
func scoreContact(contact types.ContactInfo) float64 {
	var score float64
	if strings.TrimSpace(contact.Email) != "" {
		score += 0.5
	}
	if strings.TrimSpace(contact.Phone) != "" {
		score += 0.25
	}
	if strings.TrimSpace(contact.Location) != "" || strings.TrimSpace(contact.LinkedIn) != "" || strings.TrimSpace(contact.GitHub) != "" {
		score += 0.25
	}
	return score
}

// scoreExperience rewards both the number of entries and how substantiated
// each one is. An entry with responsibilities or achievements counts fully,
// a bare title-and-company entry counts half.
func scoreExperience(entries []types.Experience) float64 {
	if len(entries) == 0 {
		return 0
	}
	var filled float64
	for _, entry := range entries {
		if len(entry.Responsibilities) > 0 || len(entry.Achievements) > 0 {
			filled += 1.0
		} else {
			filled += 0.5
		}
	}
	score := filled / experienceTarget
	if score > 1 {
		score = 1
	}
	return score
}

func partial(have, want int) float64 {
	if have >= want {
		return 1
	}
	return float64(have) / float64(want)
}
