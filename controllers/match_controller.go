package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"collabmate_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles match generation and retrieval
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController initializes the match controller
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// GenerateMatches regenerates the match set for a user and returns it
func (c *MatchController) GenerateMatches(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	matches, err := c.MatchService.GenerateMatches(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to generate matches for %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to generate matches"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Matches generated successfully",
		"matches": matches,
	})
}

// GetMatches returns a user's stored matches, best first
func (c *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	matches, err := c.MatchService.GetMatches(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to fetch matches for %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to fetch matches"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}
