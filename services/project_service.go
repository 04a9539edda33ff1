package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"collabmate_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ProjectService manages portfolio projects shown on user profiles
type ProjectService struct {
	Dynamo *DynamoService
}

// AddProject stores a new project for a user
func (ps *ProjectService) AddProject(ctx context.Context, project models.Project) (*models.Project, error) {
	if project.UserID == "" || project.Title == "" {
		return nil, errors.New("userId and title are required")
	}

	switch project.Status {
	case models.ProjectStatusCompleted, models.ProjectStatusInProgress, models.ProjectStatusPlanned:
	case "":
		project.Status = models.ProjectStatusPlanned
	default:
		return nil, fmt.Errorf("invalid project status: %s", project.Status)
	}

	project.ProjectID = uuid.New().String()
	project.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ps.Dynamo.PutItem(ctx, models.ProjectsTable, project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetUserProjects returns a user's projects, newest first
func (ps *ProjectService) GetUserProjects(ctx context.Context, userID string) ([]models.Project, error) {
	keyCondition := "#userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	expressionNames := map[string]string{
		"#userId": "userId",
	}

	items, err := ps.Dynamo.QueryItems(ctx, models.ProjectsTable, keyCondition, expressionValues, expressionNames, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	var projects []models.Project
	if err := attributevalue.UnmarshalListOfMaps(items, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse projects: %w", err)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt > projects[j].CreatedAt
	})

	return projects, nil
}
