package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionBank struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category,omitempty" gorm:"index"` // "aptitude", "coding", "behavioral"
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:QuestionBankID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
