package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	PromptPurposeQuestionGeneration = "question_generation"
	PromptPurposeRoundFeedback      = "round_feedback"
)

type PromptTemplate struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"`
	Purpose     string         `json:"purpose" gorm:"not null;index"`
	Body        string         `json:"body" gorm:"type:text;not null"` // text/template source
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
