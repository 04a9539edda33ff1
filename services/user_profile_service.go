package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"collabmate_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrProfileNotFound is returned when a user profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

type UserProfileService struct {
	Dynamo *DynamoService
}

// AddUserProfile stores a new user profile, stamping timestamps and the
// computed profile strength.
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.UserID == "" {
		return nil, errors.New("userId is required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if profile.CreatedAt == "" {
		profile.CreatedAt = now
	}
	profile.LastActive = now
	profile.ApplyDefaults()
	profile.ProfileStrength = profile.ComputeProfileStrength()

	if err := ups.Dynamo.PutItem(ctx, models.UsersTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	profile.ApplyDefaults()
	return &profile, nil
}

// GetActiveProfiles returns up to limit profiles ordered by most recent
// activity, excluding the given user. This is the candidate pool for match
// generation and the browse page for the dashboard.
func (ups *UserProfileService) GetActiveProfiles(ctx context.Context, excludeID string, limit int) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := ups.Dynamo.ScanWithFilter(ctx, models.UsersTable, func(item map[string]types.AttributeValue) bool {
		if idAttr, ok := item["userId"].(*types.AttributeValueMemberS); ok {
			return idAttr.Value != excludeID
		}
		return false
	}, nil, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active profiles: %w", err)
	}

	// DynamoDB scans have no ordering, so sort by recency here.
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].LastActive > profiles[j].LastActive
	})

	if limit > 0 && len(profiles) > limit {
		profiles = profiles[:limit]
	}

	for i := range profiles {
		profiles[i].ApplyDefaults()
	}
	return profiles, nil
}

// UpdateUserProfile applies a partial update and recomputes the profile
// strength from the stored result.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("userId is required")
	}
	if len(updates) == 0 {
		return ups.GetUserProfile(ctx, userID)
	}

	// Never allow the key itself to be rewritten.
	delete(updates, "userId")
	updates["lastActive"] = time.Now().UTC().Format(time.RFC3339)

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for k, v := range updates {
		attrValue, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal update for field '%s': %w", k, err)
		}
		updateExpression += " #" + k + " = :" + k + ","
		expressionAttributeValues[":"+k] = attrValue
		expressionAttributeNames["#"+k] = k
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := ups.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.UserProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	updatedProfile.ApplyDefaults()

	// Strength depends on the merged profile, so it is recomputed after the
	// update rather than from the request payload.
	newStrength := updatedProfile.ComputeProfileStrength()
	if newStrength != updatedProfile.ProfileStrength {
		strengthExpr := "SET #profileStrength = :profileStrength"
		_, err := ups.Dynamo.UpdateItem(ctx, models.UsersTable, strengthExpr, key,
			map[string]types.AttributeValue{
				":profileStrength": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newStrength)},
			},
			map[string]string{"#profileStrength": "profileStrength"},
		)
		if err != nil {
			log.Printf("Failed to update profile strength for %s: %v", userID, err)
		} else {
			updatedProfile.ProfileStrength = newStrength
		}
	}

	return &updatedProfile, nil
}

// TouchLastActive bumps the lastActive timestamp for a user
func (ups *UserProfileService) TouchLastActive(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	updateExpression := "SET #lastActive = :lastActive"
	_, err := ups.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, key,
		map[string]types.AttributeValue{
			":lastActive": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#lastActive": "lastActive"},
	)
	return err
}

// DeleteUserProfile removes a user profile from DynamoDB
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ups.Dynamo.DeleteItem(ctx, models.UsersTable, key)
}
