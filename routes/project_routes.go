package routes

import (
	"collabmate_server/controllers"
	"collabmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterProjectRoutes sets up routes for portfolio projects under /api/projects
func RegisterProjectRoutes(r *mux.Router, projectService *services.ProjectService) {
	controller := controllers.NewProjectController(projectService)

	projectRouter := r.PathPrefix("/api/projects").Subrouter()

	projectRouter.HandleFunc("", controller.CreateProject).Methods("POST")
	projectRouter.HandleFunc("/{userId}", controller.GetUserProjects).Methods("GET")
}
