package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"collabmate_server/models"
	"collabmate_server/services"

	"github.com/gorilla/mux"
)

// ProjectController handles portfolio project endpoints
type ProjectController struct {
	ProjectService *services.ProjectService
}

// NewProjectController initializes the project controller
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

// CreateProject stores a new project for a user
func (c *ProjectController) CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	created, err := c.ProjectService.AddProject(r.Context(), project)
	if err != nil {
		log.Printf("Failed to add project: %v", err)
		http.Error(w, `{"error": "Failed to add project"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Project added successfully",
		"project": created,
	})
}

// GetUserProjects lists a user's projects
func (c *ProjectController) GetUserProjects(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	projects, err := c.ProjectService.GetUserProjects(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to fetch projects for %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to fetch projects"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}
