package dto

import (
	"time"

	"github.com/lshigami/mockround/internal/scoring"
)

// --- DTOs for round submissions (candidate side) ---

type AnswerDTO struct {
	QuestionID string        `json:"question_id" binding:"required"`
	Answer     scoring.Value `json:"answer"`
	Code       string        `json:"code" binding:"max=65536"`
	Language   string        `json:"language" binding:"omitempty,max=32"`
}

type SubmitRoundDTO struct {
	Answers []AnswerDTO `json:"answers" binding:"required,min=1,dive"`
}

type RoundSubmissionSummaryDTO struct {
	ID                  uint      `json:"id"`
	InterviewTemplateID uint      `json:"interview_template_id"`
	RoundSlug           string    `json:"round_slug"`
	UserID              string    `json:"user_id"`
	Attempt             int       `json:"attempt"`
	Score               int       `json:"score"`
	Status              string    `json:"status"`
	SubmittedAt         time.Time `json:"submitted_at"`
}

type RoundFeedbackDTO struct {
	ID                  uint                    `json:"id"`
	RoundSlug           string                  `json:"round_slug"`
	RoundName           string                  `json:"round_name"`
	Attempt             int                     `json:"attempt"`
	TotalScore          int                     `json:"total_score"`
	CategoryScores      []scoring.CategoryScore `json:"category_scores"`
	Strengths           []string                `json:"strengths"`
	AreasForImprovement []string                `json:"areas_for_improvement"`
	FinalAssessment     string                  `json:"final_assessment"`
	Status              string                  `json:"status"`
	CreatedAt           time.Time               `json:"created_at"`
}

type RoundSubmissionResultDTO struct {
	Submission RoundSubmissionSummaryDTO `json:"submission"`
	Feedback   RoundFeedbackDTO          `json:"feedback"`
	Warnings   []string                  `json:"warnings,omitempty"`
}

type RoundFeedbackHistoryDTO struct {
	Latest   *RoundFeedbackDTO  `json:"latest"`
	Attempts []RoundFeedbackDTO `json:"attempts"`
}

type CumulativeFeedbackDTO struct {
	InterviewTemplateID uint   `json:"interview_template_id"`
	Company             string `json:"company"`
	Role                string `json:"role"`
	UserID              string `json:"user_id"`
	scoring.CumulativeFeedback
}
