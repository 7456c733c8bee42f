package repository

import (
	"context"

	"github.com/lshigami/mockround/internal/model"
	"gorm.io/gorm"
)

type InterviewTemplateWithCount struct {
	model.InterviewTemplate
	RoundCount int
}

type InterviewTemplateRepository interface {
	Create(ctx context.Context, tmpl *model.InterviewTemplate) error
	FindByIDWithRounds(ctx context.Context, id uint) (*model.InterviewTemplate, error)
	FindAllWithRoundCount(ctx context.Context) ([]InterviewTemplateWithCount, error)
	// UpdateWithRounds updates template metadata and replaces every round.
	UpdateWithRounds(ctx context.Context, tmpl *model.InterviewTemplate) error
	Delete(ctx context.Context, id uint) error
	FindRound(ctx context.Context, templateID uint, slug string) (*model.Round, error)
	UpdateRound(ctx context.Context, round *model.Round) error
	CountRounds(ctx context.Context, templateID uint) (int, error)
}

type interviewTemplateRepository struct {
	db *gorm.DB
}

func NewInterviewTemplateRepository(db *gorm.DB) InterviewTemplateRepository {
	return &interviewTemplateRepository{db: db}
}

func (r *interviewTemplateRepository) Create(ctx context.Context, tmpl *model.InterviewTemplate) error {
	return r.db.WithContext(ctx).Create(tmpl).Error
}

func (r *interviewTemplateRepository) FindByIDWithRounds(ctx context.Context, id uint) (*model.InterviewTemplate, error) {
	var tmpl model.InterviewTemplate
	err := r.db.WithContext(ctx).Preload("Rounds", func(db *gorm.DB) *gorm.DB {
		return db.Order("rounds.order_in_template ASC")
	}).First(&tmpl, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &tmpl, nil
}

func (r *interviewTemplateRepository) FindAllWithRoundCount(ctx context.Context) ([]InterviewTemplateWithCount, error) {
	var results []InterviewTemplateWithCount
	err := r.db.WithContext(ctx).Model(&model.InterviewTemplate{}).
		Select("interview_templates.*, (SELECT COUNT(*) FROM rounds WHERE rounds.interview_template_id = interview_templates.id) as round_count").
		Where("interview_templates.deleted_at IS NULL").
		Order("interview_templates.company ASC, interview_templates.role ASC").
		Scan(&results).Error
	return results, err
}

func (r *interviewTemplateRepository) UpdateWithRounds(ctx context.Context, tmpl *model.InterviewTemplate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.InterviewTemplate{ID: tmpl.ID}).Updates(map[string]interface{}{
			"company":     tmpl.Company,
			"role":        tmpl.Role,
			"description": tmpl.Description,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("interview_template_id = ?", tmpl.ID).Delete(&model.Round{}).Error; err != nil {
			return err
		}
		for i := range tmpl.Rounds {
			tmpl.Rounds[i].ID = 0
			tmpl.Rounds[i].InterviewTemplateID = tmpl.ID
		}
		if len(tmpl.Rounds) == 0 {
			return nil
		}
		return tx.Create(&tmpl.Rounds).Error
	})
}

func (r *interviewTemplateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("interview_template_id = ?", id).Delete(&model.Round{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.InterviewTemplate{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *interviewTemplateRepository) FindRound(ctx context.Context, templateID uint, slug string) (*model.Round, error) {
	var round model.Round
	err := r.db.WithContext(ctx).
		Where("interview_template_id = ? AND slug = ?", templateID, slug).
		First(&round).Error
	if err != nil {
		return nil, translate(err)
	}
	return &round, nil
}

func (r *interviewTemplateRepository) UpdateRound(ctx context.Context, round *model.Round) error {
	return r.db.WithContext(ctx).Save(round).Error
}

func (r *interviewTemplateRepository) CountRounds(ctx context.Context, templateID uint) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Round{}).Where("interview_template_id = ?", templateID).Count(&count).Error
	return int(count), err
}
