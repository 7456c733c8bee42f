package repository

import (
	"context"

	"github.com/lshigami/mockround/internal/model"
	"gorm.io/gorm"
)

type RoundFeedbackRepository interface {
	Create(ctx context.Context, feedback *model.RoundFeedback) error
	FindAllByTemplateAndUser(ctx context.Context, templateID uint, userID string) ([]model.RoundFeedback, error)
	FindAllByRound(ctx context.Context, templateID uint, slug string, userID string) ([]model.RoundFeedback, error)
}

type roundFeedbackRepository struct {
	db *gorm.DB
}

func NewRoundFeedbackRepository(db *gorm.DB) RoundFeedbackRepository {
	return &roundFeedbackRepository{db: db}
}

func (r *roundFeedbackRepository) Create(ctx context.Context, feedback *model.RoundFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *roundFeedbackRepository) FindAllByTemplateAndUser(ctx context.Context, templateID uint, userID string) ([]model.RoundFeedback, error) {
	var feedbacks []model.RoundFeedback
	err := r.db.WithContext(ctx).
		Where("interview_template_id = ? AND user_id = ?", templateID, userID).
		Order("round_slug ASC, attempt DESC, created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

// FindAllByRound returns every attempt of one round, newest first.
func (r *roundFeedbackRepository) FindAllByRound(ctx context.Context, templateID uint, slug string, userID string) ([]model.RoundFeedback, error) {
	var feedbacks []model.RoundFeedback
	err := r.db.WithContext(ctx).
		Where("interview_template_id = ? AND round_slug = ? AND user_id = ?", templateID, slug, userID).
		Order("attempt DESC, created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}
