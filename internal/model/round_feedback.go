package model

import (
	"time"

	"github.com/lshigami/mockround/internal/scoring"
	"gorm.io/datatypes"
)

// RoundFeedback is one graded attempt of a round. Every attempt is kept; the
// cumulative view only reads the latest one per round.
type RoundFeedback struct {
	ID                  uint                                       `gorm:"primarykey" json:"id"`
	InterviewTemplateID uint                                       `json:"interview_template_id" gorm:"not null;index:idx_feedback_lookup"`
	RoundSlug           string                                     `json:"round_slug" gorm:"not null;index:idx_feedback_lookup"`
	RoundName           string                                     `json:"round_name"`
	UserID              string                                     `json:"user_id" gorm:"not null;index:idx_feedback_lookup"`
	SubmissionID        uint                                       `json:"submission_id" gorm:"index"`
	Attempt             int                                        `json:"attempt" gorm:"not null"`
	TotalScore          int                                        `json:"total_score"`
	CategoryScores      datatypes.JSONSlice[scoring.CategoryScore] `json:"category_scores"`
	Strengths           datatypes.JSONSlice[string]                `json:"strengths"`
	AreasForImprovement datatypes.JSONSlice[string]                `json:"areas_for_improvement"`
	FinalAssessment     string                                     `json:"final_assessment" gorm:"type:text"`
	Status              string                                     `json:"status"`
	CreatedAt           time.Time                                  `json:"created_at"`
}

// ToScoring converts the record into the shape the aggregator works on.
func (f RoundFeedback) ToScoring() scoring.RoundFeedback {
	return scoring.RoundFeedback{
		Feedback: scoring.Feedback{
			TotalScore:          f.TotalScore,
			CategoryScores:      []scoring.CategoryScore(f.CategoryScores),
			Strengths:           []string(f.Strengths),
			AreasForImprovement: []string(f.AreasForImprovement),
			FinalAssessment:     f.FinalAssessment,
		},
		RoundID:   f.RoundSlug,
		RoundName: f.RoundName,
		Attempt:   f.Attempt,
		CreatedAt: f.CreatedAt,
	}
}
