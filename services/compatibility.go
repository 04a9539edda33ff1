package services

import (
	"fmt"
	"math"
	"strings"

	"collabmate_server/models"
	"collabmate_server/utils"
)

// Score weights. Each term is capped by its weight before summation, so a
// perfect overlap across every category plus zero distance totals 110 before
// the final clamp to 100.
const (
	skillWeight       = 40
	interestWeight    = 25
	personalityWeight = 15
	workStyleWeight   = 10
	locationWeight    = 20

	// MaxJitter bounds the random tie-breaking bonus added to every score.
	MaxJitter = 5

	// MinQualifyingScore is the retention threshold: only candidates scoring
	// strictly above it are persisted as matches.
	MinQualifyingScore = 50
)

// CompatibilityResult holds the outcome of scoring one candidate against
// the requesting user.
type CompatibilityResult struct {
	Score        int
	Reason       string
	CommonSkills []string
}

// ScoreCompatibility computes a 0-100 compatibility score between the
// requesting user and a candidate, plus a human-readable reason. jitter is
// the tie-breaking bonus in [0, MaxJitter); callers pass 0 for a
// deterministic result.
func ScoreCompatibility(user, candidate *models.UserProfile, jitter float64) CompatibilityResult {
	commonSkills := commonTags(user.Skills, candidate.Skills)
	commonInterests := commonTags(user.Interests, candidate.Interests)
	commonPersonality := commonTags(user.PersonalityTags, candidate.PersonalityTags)
	commonWorkStyle := commonTags(user.WorkStyle, candidate.WorkStyle)

	skillScore := overlapTerm(len(commonSkills), len(user.Skills), skillWeight)
	interestScore := overlapTerm(len(commonInterests), len(user.Interests), interestWeight)
	personalityScore := overlapTerm(len(commonPersonality), len(user.PersonalityTags), personalityWeight)
	workStyleScore := overlapTerm(len(commonWorkStyle), len(user.WorkStyle), workStyleWeight)

	locationScore := 0.0
	if user.HasCoordinates() && candidate.HasCoordinates() {
		distance := utils.CalculateDistance(user.Latitude, user.Longitude, candidate.Latitude, candidate.Longitude)
		maxDistance := user.MaxDistance
		if maxDistance <= 0 {
			maxDistance = models.DefaultMaxDistance
		}
		if distance <= maxDistance {
			locationScore = math.Max(0, locationWeight-(distance/maxDistance)*locationWeight)
		}
	}

	total := skillScore + interestScore + personalityScore + workStyleScore + locationScore + jitter
	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}

	reason := buildReason(commonSkills, commonInterests, commonPersonality, commonWorkStyle, locationScore > 0)

	return CompatibilityResult{
		Score:        score,
		Reason:       reason,
		CommonSkills: commonSkills,
	}
}

// overlapTerm scales a shared-tag count against the requester's own tag
// count. The max(n,1) denominator keeps an empty category at 0 instead of
// dividing by zero.
func overlapTerm(common, total int, weight float64) float64 {
	denom := total
	if denom < 1 {
		denom = 1
	}
	return float64(common) / float64(denom) * weight
}

// commonTags returns the values present in both lists, preserving the order
// of the first.
func commonTags(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, tag := range b {
		inB[tag] = struct{}{}
	}
	common := []string{}
	for _, tag := range a {
		if _, ok := inB[tag]; ok {
			common = append(common, tag)
		}
	}
	return common
}

// buildReason picks the most specific template for the overlap shape, naming
// at most the first two or three shared items per category.
func buildReason(skills, interests, personality, workStyle []string, nearby bool) string {
	var reason string
	switch {
	case len(skills) > 0 && len(interests) > 0 && len(personality) > 0:
		reason = fmt.Sprintf("Amazing match! Skills: %s, interests: %s, personality: %s",
			joinFirst(skills, 2), joinFirst(interests, 2), joinFirst(personality, 2))
	case len(skills) > 0 && len(personality) > 0:
		reason = fmt.Sprintf("Great match! Technical skills in %s and similar personality: %s",
			joinFirst(skills, 2), joinFirst(personality, 2))
	case len(skills) > 0:
		reason = fmt.Sprintf("Great technical match with shared skills in %s", joinFirst(skills, 3))
	case len(personality) > 0:
		reason = fmt.Sprintf("Personality match! You both are %s", joinFirst(personality, 3))
	case len(interests) > 0:
		reason = fmt.Sprintf("Similar interests in %s - great for collaboration", joinFirst(interests, 3))
	default:
		reason = "Complementary skills could lead to innovative projects together"
	}

	if len(workStyle) > 0 {
		reason += fmt.Sprintf(" • Compatible work styles: %s", joinFirst(workStyle, 2))
	}
	if nearby {
		reason += " • Located nearby for potential in-person collaboration"
	}

	return reason
}

func joinFirst(tags []string, n int) string {
	if len(tags) > n {
		tags = tags[:n]
	}
	return strings.Join(tags, ", ")
}
