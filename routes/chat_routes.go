package routes

import (
	"collabmate_server/controllers"
	"collabmate_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat operations under /api/messages
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, geminiService *services.GeminiService, socket *socketio.Server) {
	controller := controllers.NewChatController(chatService, geminiService, socket)

	chatRouter := r.PathPrefix("/api/messages").Subrouter()

	chatRouter.HandleFunc("", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("", controller.HandleSendMessage).Methods("POST")
}
