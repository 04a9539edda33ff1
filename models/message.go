package models

type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"` // Partition Key
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`           // Sort Key
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	ReceiverID     string `dynamodbav:"receiverId" json:"receiverId"`
	Content        string `dynamodbav:"content" json:"content"`
	Type           string `dynamodbav:"type" json:"type"` // "text" or "suggestion"
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"

// Message types
const (
	MessageTypeText       = "text"
	MessageTypeSuggestion = "suggestion" // AI-generated collaboration hint
)
