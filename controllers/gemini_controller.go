package controllers

import (
	"encoding/json"
	"net/http"

	"collabmate_server/services"
)

// GeminiController exposes AI text-generation endpoints. Every handler
// returns 200 with fallback copy when generation fails; the AI features are
// best-effort by design.
type GeminiController struct {
	GeminiService *services.GeminiService
}

// NewGeminiController initializes the gemini controller
func NewGeminiController(geminiService *services.GeminiService) *GeminiController {
	return &GeminiController{GeminiService: geminiService}
}

// HandleChatSuggestion generates a collaboration hint for a chat message
func (c *GeminiController) HandleChatSuggestion(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Message      string `json:"message"`
		SenderName   string `json:"senderName"`
		ReceiverName string `json:"receiverName"`
		Context      string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Message == "" {
		http.Error(w, `{"error": "message is required"}`, http.StatusBadRequest)
		return
	}

	suggestion := c.GeminiService.GenerateChatSuggestion(r.Context(), request.Message, request.SenderName, request.ReceiverName, request.Context)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"suggestion": suggestion})
}

// HandleProjectSuggestion generates a portfolio project idea
func (c *GeminiController) HandleProjectSuggestion(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Skills    []string `json:"skills"`
		Interests []string `json:"interests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	suggestion := c.GeminiService.GenerateProjectSuggestion(r.Context(), request.Skills, request.Interests)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(suggestion)
}

// HandleAsk answers a free-form collaboration question
func (c *GeminiController) HandleAsk(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Question string `json:"question"`
		Context  string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Question == "" {
		http.Error(w, `{"error": "question is required"}`, http.StatusBadRequest)
		return
	}

	answer := c.GeminiService.GenerateAnswer(r.Context(), request.Question, request.Context)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"answer": answer})
}
