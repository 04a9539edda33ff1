package models

type Project struct {
	UserID       string   `dynamodbav:"userId" json:"userId"`       // Partition Key
	ProjectID    string   `dynamodbav:"projectId" json:"projectId"` // Sort Key
	Title        string   `dynamodbav:"title" json:"title"`
	Description  string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Technologies []string `dynamodbav:"technologies,omitempty" json:"technologies,omitempty"`
	Status       string   `dynamodbav:"status" json:"status"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
}

// ProjectSuggestion is an AI-generated project idea for a user
type ProjectSuggestion struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Technologies  []string `json:"technologies"`
	EstimatedTime string   `json:"estimatedTime"`
	Reason        string   `json:"reason"`
}

// ProjectsTable is the DynamoDB table name for portfolio projects
const ProjectsTable = "Projects"

// Project statuses
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusPlanned    = "planned"
)
