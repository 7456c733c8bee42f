package model

import (
	"time"

	"github.com/lshigami/mockround/internal/scoring"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending             = "pending"
	StatusScoring             = "scoring"
	StatusCompleted           = "completed"
	StatusCompletedWithErrors = "completed_with_errors"
)

type RoundSubmission struct {
	ID                  uint                                    `gorm:"primarykey" json:"id"`
	InterviewTemplateID uint                                    `json:"interview_template_id" gorm:"not null;index:idx_submission_lookup;uniqueIndex:idx_submission_attempt"`
	RoundSlug           string                                  `json:"round_slug" gorm:"not null;index:idx_submission_lookup;uniqueIndex:idx_submission_attempt"`
	UserID              string                                  `json:"user_id" gorm:"not null;index:idx_submission_lookup;uniqueIndex:idx_submission_attempt"`
	Attempt             int                                     `json:"attempt" gorm:"not null;uniqueIndex:idx_submission_attempt"`
	Answers             datatypes.JSONSlice[scoring.UserAnswer] `json:"answers"`
	Score               int                                     `json:"score"`
	Status              string                                  `json:"status" gorm:"default:'pending'"`
	SubmittedAt         time.Time                               `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt           time.Time                               `json:"created_at"`
	UpdatedAt           time.Time                               `json:"updated_at"`
	DeletedAt           gorm.DeletedAt                          `gorm:"index" json:"-"`
}
