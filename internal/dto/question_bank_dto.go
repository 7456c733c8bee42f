package dto

import (
	"time"

	"github.com/lshigami/mockround/internal/scoring"
)

// QuestionCreateDTO is used both for standalone question creation and inside QuestionBankCreateDTO.
type QuestionCreateDTO struct {
	Text          string             `json:"text" binding:"required"`
	Type          string             `json:"type" binding:"required,oneof=mcq text code"`
	Options       []string           `json:"options" binding:"omitempty,dive,required"`
	CorrectAnswer *scoring.Value     `json:"correct_answer"`
	TestCases     []scoring.TestCase `json:"test_cases"`
	Difficulty    string             `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Points        int                `json:"points" binding:"omitempty,min=1,max=100"`
}

type QuestionBankCreateDTO struct {
	Name        string              `json:"name" binding:"required,max=200"`
	Description string              `json:"description"`
	Category    string              `json:"category" binding:"omitempty,max=100"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

type QuestionBankUpdateDTO struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"omitempty,max=100"`
}

type QuestionResponseDTO struct {
	ID             uint               `json:"id"`
	QuestionBankID uint               `json:"question_bank_id"`
	Text           string             `json:"text"`
	Type           string             `json:"type"`
	Options        []string           `json:"options,omitempty"`
	CorrectAnswer  *scoring.Value     `json:"correct_answer,omitempty"`
	TestCases      []scoring.TestCase `json:"test_cases,omitempty"`
	Difficulty     string             `json:"difficulty,omitempty"`
	Points         int                `json:"points"`
	CreatedAt      time.Time          `json:"created_at"`
}

type QuestionBankResponseDTO struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Category    string                `json:"category,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type QuestionBankSummaryDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// GenerateQuestionsDTO asks the LLM for new questions rendered from a prompt template.
type GenerateQuestionsDTO struct {
	PromptTemplateID uint   `json:"prompt_template_id" binding:"required"`
	Topic            string `json:"topic" binding:"required"`
	Type             string `json:"type" binding:"required,oneof=mcq text code"`
	Difficulty       string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Count            int    `json:"count" binding:"required,min=1,max=20"`
}

type GenerateQuestionsResponseDTO struct {
	Created []QuestionResponseDTO `json:"created"`
	Skipped []string              `json:"skipped,omitempty"`
}
