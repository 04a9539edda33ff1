package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"collabmate_server/models"
)

const (
	// CandidatePageSize caps how many recently active profiles one
	// generation run scores.
	CandidatePageSize = 20

	// MatchPageSize caps how many matches a user sees on the dashboard.
	MatchPageSize = 10
)

// ProfileStore is the slice of the profile service the match generator
// depends on.
type ProfileStore interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	GetActiveProfiles(ctx context.Context, excludeID string, limit int) ([]models.UserProfile, error)
}

// MatchStore persists and retrieves generated matches.
type MatchStore interface {
	SaveMatch(ctx context.Context, match models.Match) error
	GetMatchesByUser(ctx context.Context, userID string, limit int) ([]models.Match, error)
	DeleteMatchesByUser(ctx context.Context, userID string) error
}

// MatchService regenerates and reads compatibility matches. Stores are
// injected so tests can substitute fakes, and the jitter source is
// overridable for deterministic scoring.
type MatchService struct {
	Profiles ProfileStore
	Matches  MatchStore

	// Jitter returns the random tie-breaking bonus in [0, MaxJitter).
	// Defaults to math/rand when nil.
	Jitter func() float64

	// One generation at a time per user: clear-then-insert is not
	// transactional, so concurrent runs for the same owner must not
	// interleave.
	genLocks sync.Map
}

func NewMatchService(profiles ProfileStore, matches MatchStore) *MatchService {
	return &MatchService{
		Profiles: profiles,
		Matches:  matches,
		Jitter:   func() float64 { return rand.Float64() * MaxJitter },
	}
}

func (s *MatchService) jitter() float64 {
	if s.Jitter == nil {
		return rand.Float64() * MaxJitter
	}
	return s.Jitter()
}

func (s *MatchService) lockUser(userID string) *sync.Mutex {
	mu, _ := s.genLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// GenerateMatches recomputes the full match set for a user against the most
// recently active candidates: prior matches are cleared, every candidate is
// scored, and only qualifying scores are persisted. Individual candidate
// failures are logged and skipped so one bad row never aborts the batch.
// Returns the regenerated matches joined with live profiles, best first.
func (s *MatchService) GenerateMatches(ctx context.Context, userID string) ([]models.MatchWithProfile, error) {
	if userID == "" {
		return nil, errors.New("userId is required")
	}

	mu := s.lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	user, err := s.Profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requesting user %s: %w", userID, err)
	}

	candidates, err := s.Profiles.GetActiveProfiles(ctx, userID, CandidatePageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate pool: %w", err)
	}

	if err := s.Matches.DeleteMatchesByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear previous matches: %w", err)
	}

	if len(candidates) == 0 {
		log.Printf("No candidates found for matching user %s", userID)
		return []models.MatchWithProfile{}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	saved := 0
	for _, candidate := range candidates {
		if candidate.UserID == "" || candidate.UserID == userID {
			continue
		}

		result := ScoreCompatibility(user, &candidate, s.jitter())
		if result.Score <= MinQualifyingScore {
			continue
		}

		match := models.Match{
			UserID:             userID,
			MatchedUserID:      candidate.UserID,
			CompatibilityScore: result.Score,
			Reason:             result.Reason,
			CommonSkills:       result.CommonSkills,
			CreatedAt:          now,
		}
		if err := s.Matches.SaveMatch(ctx, match); err != nil {
			log.Printf("Failed to save match %s -> %s, skipping: %v", userID, candidate.UserID, err)
			continue
		}
		saved++
	}
	log.Printf("Generated %d matches for user %s from %d candidates", saved, userID, len(candidates))

	return s.GetMatches(ctx, userID)
}

// GetMatches returns a user's stored matches in descending score order,
// joined with the current profile of each matched user. Matches whose
// profile no longer exists are skipped.
func (s *MatchService) GetMatches(ctx context.Context, userID string) ([]models.MatchWithProfile, error) {
	if userID == "" {
		return nil, errors.New("userId is required")
	}

	matches, err := s.Matches.GetMatchesByUser(ctx, userID, MatchPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	enriched := make([]models.MatchWithProfile, 0, len(matches))
	for _, match := range matches {
		profile, err := s.Profiles.GetUserProfile(ctx, match.MatchedUserID)
		if err != nil {
			if !errors.Is(err, ErrProfileNotFound) {
				log.Printf("Failed to fetch profile %s for match, skipping: %v", match.MatchedUserID, err)
			}
			continue
		}
		enriched = append(enriched, models.MatchWithProfile{
			Match:   match,
			Profile: *profile,
		})
	}

	return enriched, nil
}
