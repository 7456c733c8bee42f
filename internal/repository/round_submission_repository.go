package repository

import (
	"context"

	"github.com/lshigami/mockround/internal/model"
	"gorm.io/gorm"
)

type RoundSubmissionRepository interface {
	// CreateNextAttempt numbers the submission after the user's previous
	// attempts of the same round and stores it.
	CreateNextAttempt(ctx context.Context, submission *model.RoundSubmission) error
	Update(ctx context.Context, submission *model.RoundSubmission) error
	FindAllByTemplateAndUser(ctx context.Context, templateID uint, userID string) ([]model.RoundSubmission, error)
}

type roundSubmissionRepository struct {
	db *gorm.DB
}

func NewRoundSubmissionRepository(db *gorm.DB) RoundSubmissionRepository {
	return &roundSubmissionRepository{db: db}
}

func (r *roundSubmissionRepository) CreateNextAttempt(ctx context.Context, submission *model.RoundSubmission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		err := tx.Model(&model.RoundSubmission{}).
			Unscoped().
			Where("interview_template_id = ? AND round_slug = ? AND user_id = ?",
				submission.InterviewTemplateID, submission.RoundSlug, submission.UserID).
			Select("COALESCE(MAX(attempt), 0)").
			Scan(&last).Error
		if err != nil {
			return err
		}
		submission.Attempt = last + 1
		// idx_submission_attempt rejects a concurrent submission that raced for the same number.
		return tx.Create(submission).Error
	})
}

func (r *roundSubmissionRepository) Update(ctx context.Context, submission *model.RoundSubmission) error {
	return r.db.WithContext(ctx).Save(submission).Error
}

func (r *roundSubmissionRepository) FindAllByTemplateAndUser(ctx context.Context, templateID uint, userID string) ([]model.RoundSubmission, error) {
	var submissions []model.RoundSubmission
	err := r.db.WithContext(ctx).
		Where("interview_template_id = ? AND user_id = ?", templateID, userID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}
