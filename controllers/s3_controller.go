package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"collabmate_server/services"
)

// HandleAvatarUploadURL returns a presigned URL for uploading an avatar
func HandleAvatarUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}
	if request.FileType == "" {
		request.FileType = "image/jpeg"
	}

	url, key, err := services.GenerateAvatarUploadURL(request.UserID, request.FileType)
	if err != nil {
		log.Printf("Failed to presign avatar upload: %v", err)
		http.Error(w, `{"error": "Failed to generate upload URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"uploadUrl": url,
		"key":       key,
	})
}
