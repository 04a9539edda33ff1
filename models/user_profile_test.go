package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	p := UserProfile{UserID: "u1"}
	p.ApplyDefaults()

	assert.Equal(t, "Anonymous User", p.DisplayName)
	assert.Equal(t, "Developer", p.Title)
	assert.Equal(t, "Beginner", p.Experience)
	assert.Equal(t, float64(DefaultMaxDistance), p.MaxDistance)
	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Interests)
	assert.NotNil(t, p.PersonalityTags)
	assert.NotNil(t, p.WorkStyle)
}

func TestApplyDefaultsKeepsExistingValues(t *testing.T) {
	p := UserProfile{
		UserID:      "u1",
		DisplayName: "Ada",
		MaxDistance: 25,
		Skills:      []string{"Go"},
	}
	p.ApplyDefaults()

	assert.Equal(t, "Ada", p.DisplayName)
	assert.Equal(t, 25.0, p.MaxDistance)
	assert.Equal(t, []string{"Go"}, p.Skills)
}

func TestHasCoordinates(t *testing.T) {
	assert.False(t, (&UserProfile{}).HasCoordinates())
	assert.False(t, (&UserProfile{Latitude: 60.1}).HasCoordinates())
	assert.True(t, (&UserProfile{Latitude: 60.1, Longitude: 24.9}).HasCoordinates())
}

func TestComputeProfileStrength(t *testing.T) {
	empty := UserProfile{UserID: "u1"}
	assert.Equal(t, 20, empty.ComputeProfileStrength())

	full := UserProfile{
		UserID:          "u1",
		DisplayName:     "Ada",
		Title:           "Engineer",
		Bio:             "I build things",
		Skills:          []string{"Go"},
		Interests:       []string{"AI"},
		PersonalityTags: []string{"curious"},
		WorkStyle:       []string{"async"},
		Latitude:        60.1,
		Longitude:       24.9,
		Github:          "ada",
	}
	assert.Equal(t, 100, full.ComputeProfileStrength())

	partial := UserProfile{UserID: "u1", DisplayName: "Ada", Skills: []string{"Go"}}
	strength := partial.ComputeProfileStrength()
	assert.Greater(t, strength, 20)
	assert.Less(t, strength, 100)
}
