package routes

import (
	"collabmate_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up avatar upload routes under /api/s3
func RegisterS3Routes(r *mux.Router) {
	s3Router := r.PathPrefix("/api/s3").Subrouter()

	s3Router.HandleFunc("/avatar-upload-url", controllers.HandleAvatarUploadURL).Methods("POST")
}
