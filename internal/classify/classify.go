// Package classify buckets users by the volume of their interaction history.
// The classification selects the resume completion mode downstream.
package classify

import "github.com/minhle/cv-match/internal/types"

// UserClass is a two-valued classification of a user's interaction history
type UserClass string

const (
	// Cold marks a user with no or insufficient interaction history
	Cold UserClass = "cold"
	// Warm marks a user whose history is deep enough to bias completion
	Warm UserClass = "warm"
)

// WarmThreshold is the number of prior interactions (and carried job
// descriptions) required to classify a user as warm.
const WarmThreshold = 5

// Classify is a pure function over the interaction history; it never calls
// the model. A nil history, a negative count, or a history that does not
// carry enough prior job descriptions all classify as Cold.
func Classify(history *types.InteractionHistory) UserClass {
	if history == nil {
		return Cold
	}
	if history.InteractionCount < WarmThreshold {
		return Cold
	}
	if len(history.JobDescriptions) < WarmThreshold {
		return Cold
	}
	return Warm
}
