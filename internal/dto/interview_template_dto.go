package dto

import (
	"encoding/json"
	"time"

	"github.com/lshigami/mockround/internal/scoring"
)

type RoundCreateDTO struct {
	Slug            string `json:"slug" binding:"required,max=64,slug"`
	Name            string `json:"name" binding:"required"`
	Type            string `json:"type" binding:"required,oneof=aptitude coding text voice"`
	OrderInTemplate int    `json:"order_in_template" binding:"required,min=1"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1,max=600"`
	// Questions accepts legacy plain prompts or structured question objects.
	Questions []json.RawMessage `json:"questions"`
}

type InterviewTemplateCreateDTO struct {
	Company     string           `json:"company" binding:"required"`
	Role        string           `json:"role" binding:"required"`
	Description string           `json:"description"`
	Rounds      []RoundCreateDTO `json:"rounds" binding:"required,min=1,dive"`
}

type ImportQuestionBankDTO struct {
	QuestionBankID uint `json:"question_bank_id" binding:"required"`
}

type RoundResponseDTO struct {
	ID              uint               `json:"id"`
	Slug            string             `json:"slug"`
	Name            string             `json:"name"`
	Type            string             `json:"type"`
	OrderInTemplate int                `json:"order_in_template"`
	DurationMinutes int                `json:"duration_minutes,omitempty"`
	Questions       []scoring.Question `json:"questions"`
}

type InterviewTemplateResponseDTO struct {
	ID          uint               `json:"id"`
	Company     string             `json:"company"`
	Role        string             `json:"role"`
	Description string             `json:"description,omitempty"`
	Rounds      []RoundResponseDTO `json:"rounds"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type InterviewTemplateSummaryDTO struct {
	ID          uint      `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Description string    `json:"description,omitempty"`
	RoundCount  int       `json:"round_count"`
	CreatedAt   time.Time `json:"created_at"`
}
