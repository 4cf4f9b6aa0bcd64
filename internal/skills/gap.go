package skills

import (
	"fmt"
	"strings"
)

// GapAnalysis compares a candidate's skills to a job's required skills in
// canonical terms.
type GapAnalysis struct {
	Matched      []string
	Missing      []string
	RelatedHints []string
	MatchPercent float64
}

// AnalyzeGap normalizes both skill lists through the ontology and reports
// which required skills the candidate has, which are missing, and which
// missing skills sit close to something the candidate already knows.
func (o *Ontology) AnalyzeGap(resumeSkills, requiredSkills []string) GapAnalysis {
	have := make(map[string]bool, len(resumeSkills))
	for _, raw := range resumeSkills {
		canonical := o.Normalize(raw)
		if canonical != "" {
			have[normalizeKey(canonical)] = true
		}
	}

	var analysis GapAnalysis
	seen := make(map[string]bool, len(requiredSkills))
	for _, raw := range requiredSkills {
		canonical := o.Normalize(raw)
		key := normalizeKey(canonical)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		if have[key] {
			analysis.Matched = append(analysis.Matched, canonical)
			continue
		}
		analysis.Missing = append(analysis.Missing, canonical)

		if entry, ok := o.Lookup(canonical); ok {
			for _, related := range entry.Related {
				if have[normalizeKey(related)] {
					analysis.RelatedHints = append(analysis.RelatedHints, fmt.Sprintf("%s (has related %s)", canonical, related))
					break
				}
			}
		}
	}

	total := len(analysis.Matched) + len(analysis.Missing)
	if total > 0 {
		analysis.MatchPercent = 100 * float64(len(analysis.Matched)) / float64(total)
	}
	return analysis
}

// FormatForPrompt renders the analysis as compact lines for a model prompt.
func (a GapAnalysis) FormatForPrompt() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Skill match: %.0f%%\n", a.MatchPercent)
	if len(a.Matched) > 0 {
		fmt.Fprintf(&sb, "Matched skills: %s\n", strings.Join(a.Matched, ", "))
	}
	if len(a.Missing) > 0 {
		fmt.Fprintf(&sb, "Missing skills: %s\n", strings.Join(a.Missing, ", "))
	}
	if len(a.RelatedHints) > 0 {
		fmt.Fprintf(&sb, "Adjacent experience: %s\n", strings.Join(a.RelatedHints, "; "))
	}
	return strings.TrimRight(sb.String(), "\n")
}
