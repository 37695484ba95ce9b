package dto

import "github.com/personal-dashboard/backend/internal/domain/entity"

// CreateIdeaRequest represents the request body for capturing an idea.
type CreateIdeaRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// IdeaListResponse represents the response for listing ideas.
type IdeaListResponse struct {
	Ideas []entity.Idea `json:"ideas"`
}
