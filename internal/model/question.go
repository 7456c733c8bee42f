package model

import (
	"time"

	"github.com/lshigami/mockround/internal/scoring"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Question struct {
	ID             uint                                  `gorm:"primarykey" json:"id"`
	QuestionBankID uint                                  `json:"question_bank_id" gorm:"not null;index"`
	Text           string                                `json:"text" gorm:"type:text;not null"`
	Type           string                                `json:"type" gorm:"not null"` // "mcq", "text", "code"
	Options        datatypes.JSONSlice[string]           `json:"options,omitempty"`
	CorrectAnswer  datatypes.JSON                        `json:"correct_answer,omitempty"` // number (index) or string (option text)
	TestCases      datatypes.JSONSlice[scoring.TestCase] `json:"test_cases,omitempty"`
	Difficulty     string                                `json:"difficulty,omitempty"`
	Points         int                                   `json:"points" gorm:"not null;default:1"`
	CreatedAt      time.Time                             `json:"created_at"`
	UpdatedAt      time.Time                             `json:"updated_at"`
	DeletedAt      gorm.DeletedAt                        `gorm:"index" json:"-"`
}
