package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InterviewTemplate struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Company     string         `json:"company" gorm:"not null;index"`
	Role        string         `json:"role" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Rounds      []Round        `json:"rounds,omitempty" gorm:"foreignKey:InterviewTemplateID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Round struct {
	ID                  uint   `gorm:"primarykey" json:"id"`
	InterviewTemplateID uint   `json:"interview_template_id" gorm:"not null;uniqueIndex:idx_round_template_slug"`
	Slug                string `json:"slug" gorm:"not null;uniqueIndex:idx_round_template_slug"`
	Name                string `json:"name" gorm:"not null"`
	Type                string `json:"type" gorm:"not null"` // "aptitude", "coding", "text", "voice"
	OrderInTemplate     int    `json:"order_in_template" gorm:"not null"`
	DurationMinutes     int    `json:"duration_minutes"`
	// Questions holds either legacy plain prompts or structured question objects.
	Questions datatypes.JSON `json:"questions"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
