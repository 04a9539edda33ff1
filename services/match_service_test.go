package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"collabmate_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileStore struct {
	profiles   map[string]*models.UserProfile
	candidates []models.UserProfile
	poolErr    error
}

func (f *fakeProfileStore) GetUserProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

func (f *fakeProfileStore) GetActiveProfiles(_ context.Context, excludeID string, limit int) ([]models.UserProfile, error) {
	if f.poolErr != nil {
		return nil, f.poolErr
	}
	out := []models.UserProfile{}
	for _, c := range f.candidates {
		if c.UserID != excludeID {
			out = append(out, c)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMatchStore struct {
	mu           sync.Mutex
	matches      map[string]models.Match // keyed by matchedUserId
	failSaveFor  map[string]bool
	deleteCalled int
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{matches: map[string]models.Match{}, failSaveFor: map[string]bool{}}
}

func (f *fakeMatchStore) SaveMatch(_ context.Context, match models.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSaveFor[match.MatchedUserID] {
		return errors.New("simulated store failure")
	}
	f.matches[match.MatchedUserID] = match
	return nil
}

func (f *fakeMatchStore) GetMatchesByUser(_ context.Context, userID string, limit int) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Match{}
	for _, m := range f.matches {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompatibilityScore > out[j].CompatibilityScore
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeMatchStore) DeleteMatchesByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalled++
	for id, m := range f.matches {
		if m.UserID == userID {
			delete(f.matches, id)
		}
	}
	return nil
}

func newTestMatchService(profiles *fakeProfileStore, matches *fakeMatchStore) *MatchService {
	svc := NewMatchService(profiles, matches)
	svc.Jitter = func() float64 { return 0 } // deterministic scores
	return svc
}

// strongCandidate builds a profile that fully overlaps the requester's
// skills, interests, tags and work style.
func strongCandidate(id string) models.UserProfile {
	return models.UserProfile{
		UserID:          id,
		Skills:          []string{"Go", "React"},
		Interests:       []string{"AI"},
		PersonalityTags: []string{"curious"},
		WorkStyle:       []string{"async"},
	}
}

func testRequester() *models.UserProfile {
	p := strongCandidate("requester")
	return &p
}

func TestGenerateMatchesEmptyCandidatePool(t *testing.T) {
	profiles := &fakeProfileStore{
		profiles: map[string]*models.UserProfile{"requester": testRequester()},
	}
	store := newFakeMatchStore()
	svc := newTestMatchService(profiles, store)

	matches, err := svc.GenerateMatches(context.Background(), "requester")
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Equal(t, 1, store.deleteCalled, "prior matches must still be cleared")
}

func TestGenerateMatchesKeepsOnlyQualifyingScores(t *testing.T) {
	good := strongCandidate("good")
	bad := models.UserProfile{UserID: "bad", Skills: []string{"COBOL"}}

	profiles := &fakeProfileStore{
		profiles: map[string]*models.UserProfile{
			"requester": testRequester(),
			"good":      &good,
			"bad":       &bad,
		},
		candidates: []models.UserProfile{good, bad},
	}
	store := newFakeMatchStore()
	svc := newTestMatchService(profiles, store)

	matches, err := svc.GenerateMatches(context.Background(), "requester")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "good", matches[0].MatchedUserID)
	assert.Greater(t, matches[0].CompatibilityScore, MinQualifyingScore)
	assert.Equal(t, []string{"Go", "React"}, matches[0].CommonSkills)
	assert.NotEmpty(t, matches[0].Reason)
	assert.Equal(t, "good", matches[0].Profile.UserID)
}

func TestGenerateMatchesOrdersAndCapsResults(t *testing.T) {
	requester := &models.UserProfile{
		UserID: "requester",
		Skills: []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11", "s12"},
		// Shared across all candidates: 25 + 15 + 10 = 50 base points, so
		// every candidate qualifies and skill overlap alone ranks them.
		Interests:       []string{"AI"},
		PersonalityTags: []string{"curious"},
		WorkStyle:       []string{"async"},
	}

	profiles := &fakeProfileStore{profiles: map[string]*models.UserProfile{"requester": requester}}
	for i := 1; i <= 12; i++ {
		c := models.UserProfile{
			UserID:          fmt.Sprintf("candidate-%02d", i),
			Skills:          requester.Skills[:i],
			Interests:       requester.Interests,
			PersonalityTags: requester.PersonalityTags,
			WorkStyle:       requester.WorkStyle,
		}
		profiles.candidates = append(profiles.candidates, c)
		clone := c
		profiles.profiles[c.UserID] = &clone
	}

	store := newFakeMatchStore()
	svc := newTestMatchService(profiles, store)

	matches, err := svc.GenerateMatches(context.Background(), "requester")
	require.NoError(t, err)

	assert.Len(t, matches, MatchPageSize, "page is capped even when more candidates qualify")
	assert.Len(t, store.matches, 12, "every qualifying candidate is persisted")
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].CompatibilityScore, matches[i].CompatibilityScore,
			"matches must be in descending score order")
	}
	assert.Equal(t, "candidate-12", matches[0].MatchedUserID)
}

func TestGenerateMatchesSkipsFailingCandidates(t *testing.T) {
	first := strongCandidate("first")
	second := strongCandidate("second")

	profiles := &fakeProfileStore{
		profiles: map[string]*models.UserProfile{
			"requester": testRequester(),
			"first":     &first,
			"second":    &second,
		},
		candidates: []models.UserProfile{first, second},
	}
	store := newFakeMatchStore()
	store.failSaveFor["first"] = true
	svc := newTestMatchService(profiles, store)

	matches, err := svc.GenerateMatches(context.Background(), "requester")
	require.NoError(t, err, "a single candidate failure must not abort the batch")
	require.Len(t, matches, 1)
	assert.Equal(t, "second", matches[0].MatchedUserID)
}

func TestGenerateMatchesReplacesPriorMatches(t *testing.T) {
	profiles := &fakeProfileStore{
		profiles: map[string]*models.UserProfile{"requester": testRequester()},
	}
	store := newFakeMatchStore()
	store.matches["stale"] = models.Match{
		UserID:             "requester",
		MatchedUserID:      "stale",
		CompatibilityScore: 99,
	}
	svc := newTestMatchService(profiles, store)

	matches, err := svc.GenerateMatches(context.Background(), "requester")
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Empty(t, store.matches, "stale matches must be gone after regeneration")
}

func TestGenerateMatchesUnknownRequester(t *testing.T) {
	svc := newTestMatchService(&fakeProfileStore{profiles: map[string]*models.UserProfile{}}, newFakeMatchStore())

	_, err := svc.GenerateMatches(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGenerateMatchesRequiresUserID(t *testing.T) {
	svc := newTestMatchService(&fakeProfileStore{}, newFakeMatchStore())

	_, err := svc.GenerateMatches(context.Background(), "")
	assert.Error(t, err)
}

func TestGetMatchesSkipsDeletedProfiles(t *testing.T) {
	alive := strongCandidate("alive")
	profiles := &fakeProfileStore{
		profiles: map[string]*models.UserProfile{
			"requester": testRequester(),
			"alive":     &alive,
		},
	}
	store := newFakeMatchStore()
	store.matches["alive"] = models.Match{UserID: "requester", MatchedUserID: "alive", CompatibilityScore: 80}
	store.matches["deleted"] = models.Match{UserID: "requester", MatchedUserID: "deleted", CompatibilityScore: 90}
	svc := newTestMatchService(profiles, store)

	matches, err := svc.GetMatches(context.Background(), "requester")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "alive", matches[0].MatchedUserID)
}

func TestGenerateMatchesConcurrentRunsForSameUser(t *testing.T) {
	good := strongCandidate("good")
	profiles := &fakeProfileStore{
		profiles: map[string]*models.UserProfile{
			"requester": testRequester(),
			"good":      &good,
		},
		candidates: []models.UserProfile{good},
	}
	store := newFakeMatchStore()
	svc := newTestMatchService(profiles, store)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GenerateMatches(context.Background(), "requester")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Regeneration is serialized per user, so the final state is exactly
	// one row per qualifying candidate.
	matches, err := svc.GetMatches(context.Background(), "requester")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
