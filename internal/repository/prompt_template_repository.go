package repository

import (
	"context"

	"github.com/lshigami/mockround/internal/model"
	"gorm.io/gorm"
)

type PromptTemplateRepository interface {
	Create(ctx context.Context, tmpl *model.PromptTemplate) error
	FindByID(ctx context.Context, id uint) (*model.PromptTemplate, error)
	FindAll(ctx context.Context, purpose string) ([]model.PromptTemplate, error)
	FindLatestByPurpose(ctx context.Context, purpose string) (*model.PromptTemplate, error)
	Update(ctx context.Context, tmpl *model.PromptTemplate) error
	Delete(ctx context.Context, id uint) error
}

type promptTemplateRepository struct {
	db *gorm.DB
}

func NewPromptTemplateRepository(db *gorm.DB) PromptTemplateRepository {
	return &promptTemplateRepository{db: db}
}

func (r *promptTemplateRepository) Create(ctx context.Context, tmpl *model.PromptTemplate) error {
	return r.db.WithContext(ctx).Create(tmpl).Error
}

func (r *promptTemplateRepository) FindByID(ctx context.Context, id uint) (*model.PromptTemplate, error) {
	var tmpl model.PromptTemplate
	if err := r.db.WithContext(ctx).First(&tmpl, id).Error; err != nil {
		return nil, translate(err)
	}
	return &tmpl, nil
}

// FindAll lists templates, optionally filtered by purpose.
func (r *promptTemplateRepository) FindAll(ctx context.Context, purpose string) ([]model.PromptTemplate, error) {
	var templates []model.PromptTemplate
	query := r.db.WithContext(ctx)
	if purpose != "" {
		query = query.Where("purpose = ?", purpose)
	}
	err := query.Order("name ASC").Find(&templates).Error
	return templates, err
}

func (r *promptTemplateRepository) FindLatestByPurpose(ctx context.Context, purpose string) (*model.PromptTemplate, error) {
	var tmpl model.PromptTemplate
	if err := r.db.WithContext(ctx).Where("purpose = ?", purpose).Order("updated_at DESC").First(&tmpl).Error; err != nil {
		return nil, translate(err)
	}
	return &tmpl, nil
}

func (r *promptTemplateRepository) Update(ctx context.Context, tmpl *model.PromptTemplate) error {
	return r.db.WithContext(ctx).Save(tmpl).Error
}

func (r *promptTemplateRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.PromptTemplate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
