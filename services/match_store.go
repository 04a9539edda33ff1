package services

import (
	"context"
	"fmt"
	"sort"

	"collabmate_server/models"
	"collabmate_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoMatchStore persists generated matches in the Matches table, keyed by
// (userId, matchedUserId). Saving is an upsert on that pair, so regenerating
// never produces duplicate rows for the same candidate.
type DynamoMatchStore struct {
	Dynamo *DynamoService
}

// SaveMatch upserts a single match row
func (ms *DynamoMatchStore) SaveMatch(ctx context.Context, match models.Match) error {
	return ms.Dynamo.PutItem(ctx, models.MatchesTable, match)
}

// GetMatchesByUser returns a user's matches ordered by descending
// compatibility score, capped at limit.
func (ms *DynamoMatchStore) GetMatchesByUser(ctx context.Context, userID string, limit int) ([]models.Match, error) {
	keyCondition := "#userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	expressionNames := map[string]string{
		"#userId": "userId",
	}

	items, err := ms.Dynamo.QueryItems(ctx, models.MatchesTable, keyCondition, expressionValues, expressionNames, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to parse matches: %w", err)
	}

	// The sort key is matchedUserId, not the score, so order client-side.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompatibilityScore > matches[j].CompatibilityScore
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// DeleteMatchesByUser removes every match owned by a user
func (ms *DynamoMatchStore) DeleteMatchesByUser(ctx context.Context, userID string) error {
	keyCondition := "#userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	expressionNames := map[string]string{
		"#userId": "userId",
	}

	items, err := ms.Dynamo.QueryItems(ctx, models.MatchesTable, keyCondition, expressionValues, expressionNames, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch matches for deletion: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	writeRequests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		matchedUserID := utils.ExtractString(item, "matchedUserId")
		if matchedUserID == "" {
			continue
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"userId":        &types.AttributeValueMemberS{Value: userID},
					"matchedUserId": &types.AttributeValueMemberS{Value: matchedUserID},
				},
			},
		})
	}

	return ms.Dynamo.BatchWriteItems(ctx, models.MatchesTable, writeRequests)
}
