package repository

import (
	"context"

	"github.com/lshigami/mockround/internal/model"
	"gorm.io/gorm"
)

type QuestionBankWithCount struct {
	model.QuestionBank
	QuestionCount int
}

type QuestionBankRepository interface {
	Create(ctx context.Context, bank *model.QuestionBank) error
	FindByID(ctx context.Context, id uint) (*model.QuestionBank, error)
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.QuestionBank, error)
	FindAllWithQuestionCount(ctx context.Context) ([]QuestionBankWithCount, error)
	Update(ctx context.Context, bank *model.QuestionBank) error
	Delete(ctx context.Context, id uint) error
}

type questionBankRepository struct {
	db *gorm.DB
}

func NewQuestionBankRepository(db *gorm.DB) QuestionBankRepository {
	return &questionBankRepository{db: db}
}

func (r *questionBankRepository) Create(ctx context.Context, bank *model.QuestionBank) error {
	// Questions populated on the bank are inserted in the same statement.
	return r.db.WithContext(ctx).Create(bank).Error
}

func (r *questionBankRepository) FindByID(ctx context.Context, id uint) (*model.QuestionBank, error) {
	var bank model.QuestionBank
	if err := r.db.WithContext(ctx).First(&bank, id).Error; err != nil {
		return nil, translate(err)
	}
	return &bank, nil
}

func (r *questionBankRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.QuestionBank, error) {
	var bank model.QuestionBank
	err := r.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).First(&bank, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &bank, nil
}

func (r *questionBankRepository) FindAllWithQuestionCount(ctx context.Context) ([]QuestionBankWithCount, error) {
	var results []QuestionBankWithCount
	err := r.db.WithContext(ctx).Model(&model.QuestionBank{}).
		Select("question_banks.*, (SELECT COUNT(*) FROM questions WHERE questions.question_bank_id = question_banks.id AND questions.deleted_at IS NULL) as question_count").
		Where("question_banks.deleted_at IS NULL").
		Order("question_banks.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *questionBankRepository) Update(ctx context.Context, bank *model.QuestionBank) error {
	return r.db.WithContext(ctx).Model(bank).Select("Name", "Description", "Category").Updates(bank).Error
}

func (r *questionBankRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_bank_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.QuestionBank{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
