package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"collabmate_server/models"
	"collabmate_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// ChatController handles chat messages between matched users
type ChatController struct {
	ChatService   *services.ChatService
	GeminiService *services.GeminiService
	Socket        *socketio.Server
}

// NewChatController initializes the chat controller
func NewChatController(chatService *services.ChatService, geminiService *services.GeminiService, socket *socketio.Server) *ChatController {
	return &ChatController{ChatService: chatService, GeminiService: geminiService, Socket: socket}
}

// HandleGetMessages fetches messages between two users
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	partnerID := r.URL.Query().Get("partnerId")
	if userID == "" || partnerID == "" {
		http.Error(w, `{"error": "userId and partnerId are required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	messages, err := c.ChatService.GetMessages(r.Context(), userID, partnerID, limit)
	if err != nil {
		log.Printf("Failed to fetch messages: %v", err)
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleSendMessage stores a message and broadcasts it to the conversation
// room. When the sender asks for an AI assist, a suggestion message is
// appended to the same conversation.
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		models.Message
		SenderName   string `json:"senderName"`
		ReceiverName string `json:"receiverName"`
		WithAIAssist bool   `json:"withAiAssist"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	stored, err := c.ChatService.SendMessage(r.Context(), request.Message)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusBadRequest)
		return
	}
	c.broadcast(stored)

	response := map[string]interface{}{
		"message": stored,
	}

	if request.WithAIAssist && c.GeminiService != nil {
		suggestionText := c.GeminiService.GenerateChatSuggestion(r.Context(), stored.Content, request.SenderName, request.ReceiverName, "")
		suggestion, err := c.ChatService.SendMessage(r.Context(), models.Message{
			SenderID:   stored.SenderID,
			ReceiverID: stored.ReceiverID,
			Content:    suggestionText,
			Type:       models.MessageTypeSuggestion,
		})
		if err != nil {
			log.Printf("Failed to store AI suggestion: %v", err)
		} else {
			c.broadcast(suggestion)
			response["suggestion"] = suggestion
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (c *ChatController) broadcast(message *models.Message) {
	if c.Socket == nil {
		return
	}
	c.Socket.BroadcastToRoom("/", message.ConversationID, "newMessage", message)
}
