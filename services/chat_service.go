package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"collabmate_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatService struct
type ChatService struct {
	Dynamo *DynamoService
}

// ConversationID returns the canonical id for a user pair: the two ids
// sorted and joined, so either participant derives the same value.
func ConversationID(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + "#" + userB
}

// SendMessage stores a new message, stamping id and createdAt
func (s *ChatService) SendMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	if message.SenderID == "" || message.ReceiverID == "" || message.Content == "" {
		return nil, errors.New("senderId, receiverId and content are required")
	}

	if message.MessageID == "" {
		message.MessageID = uuid.New().String()
	}
	if message.Type == "" {
		message.Type = models.MessageTypeText
	}
	message.ConversationID = ConversationID(message.SenderID, message.ReceiverID)
	message.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		log.Printf("Failed to store message in conversation %s: %v", message.ConversationID, err)
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	return &message, nil
}

// GetMessages fetches messages between two users, newest first
func (s *ChatService) GetMessages(ctx context.Context, userA, userB string, limit int) ([]models.Message, error) {
	conversationID := ConversationID(userA, userB)

	keyCondition := "#conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}
	expressionNames := map[string]string{
		"#conversationId": "conversationId",
	}

	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt > messages[j].CreatedAt
	})

	return messages, nil
}
