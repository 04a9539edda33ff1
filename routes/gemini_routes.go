package routes

import (
	"collabmate_server/controllers"
	"collabmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterGeminiRoutes sets up AI text-generation routes under /api/gemini
func RegisterGeminiRoutes(r *mux.Router, geminiService *services.GeminiService) {
	controller := controllers.NewGeminiController(geminiService)

	geminiRouter := r.PathPrefix("/api/gemini").Subrouter()

	geminiRouter.HandleFunc("/chat-suggestion", controller.HandleChatSuggestion).Methods("POST")
	geminiRouter.HandleFunc("/project-suggestion", controller.HandleProjectSuggestion).Methods("POST")
	geminiRouter.HandleFunc("/ask", controller.HandleAsk).Methods("POST")
}
