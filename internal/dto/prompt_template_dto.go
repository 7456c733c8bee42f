package dto

import "time"

type PromptTemplateCreateDTO struct {
	Name        string `json:"name" binding:"required,max=200"`
	Purpose     string `json:"purpose" binding:"required,oneof=question_generation round_feedback"`
	Body        string `json:"body" binding:"required"`
	Description string `json:"description"`
}

type PromptTemplateResponseDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Purpose     string    `json:"purpose"`
	Body        string    `json:"body"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PromptPreviewDTO struct {
	Variables map[string]interface{} `json:"variables"`
}

type PromptPreviewResponseDTO struct {
	Rendered string `json:"rendered"`
}
