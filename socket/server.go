package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server used for realtime chat.
// Clients join a room per conversation id and receive newMessage events for
// that conversation.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, conversationID string) {
		if conversationID == "" {
			log.Println("Invalid conversationId in join request")
			return
		}
		log.Printf("Socket %s joined conversation %s", s.ID(), conversationID)
		s.Join(conversationID)
	})

	server.OnEvent("/", "leave", func(s socketio.Conn, conversationID string) {
		s.Leave(conversationID)
	})

	server.OnEvent("/", "sendMessage", func(s socketio.Conn, message map[string]interface{}) {
		conversationID, _ := message["conversationId"].(string)
		if conversationID == "" {
			log.Println("sendMessage missing conversationId")
			return
		}
		server.BroadcastToRoom("/", conversationID, "newMessage", message)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Printf("Socket error: %v", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("Socket disconnected:", s.ID(), reason)
	})

	return server
}
