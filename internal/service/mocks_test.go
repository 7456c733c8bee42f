package service

import (
	"context"

	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/model"
	"github.com/lshigami/mockround/internal/repository"
	"github.com/lshigami/mockround/internal/scoring"
	"github.com/stretchr/testify/mock"
)

type mockTemplateRepo struct{ mock.Mock }

func (m *mockTemplateRepo) Create(ctx context.Context, tmpl *model.InterviewTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}

func (m *mockTemplateRepo) FindByIDWithRounds(ctx context.Context, id uint) (*model.InterviewTemplate, error) {
	args := m.Called(ctx, id)
	tmpl, _ := args.Get(0).(*model.InterviewTemplate)
	return tmpl, args.Error(1)
}

func (m *mockTemplateRepo) FindAllWithRoundCount(ctx context.Context) ([]repository.InterviewTemplateWithCount, error) {
	args := m.Called(ctx)
	tmpls, _ := args.Get(0).([]repository.InterviewTemplateWithCount)
	return tmpls, args.Error(1)
}

func (m *mockTemplateRepo) UpdateWithRounds(ctx context.Context, tmpl *model.InterviewTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}

func (m *mockTemplateRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTemplateRepo) FindRound(ctx context.Context, templateID uint, slug string) (*model.Round, error) {
	args := m.Called(ctx, templateID, slug)
	round, _ := args.Get(0).(*model.Round)
	return round, args.Error(1)
}

func (m *mockTemplateRepo) UpdateRound(ctx context.Context, round *model.Round) error {
	return m.Called(ctx, round).Error(0)
}

func (m *mockTemplateRepo) CountRounds(ctx context.Context, templateID uint) (int, error) {
	args := m.Called(ctx, templateID)
	return args.Int(0), args.Error(1)
}

type mockSubmissionRepo struct{ mock.Mock }

func (m *mockSubmissionRepo) CreateNextAttempt(ctx context.Context, submission *model.RoundSubmission) error {
	return m.Called(ctx, submission).Error(0)
}

func (m *mockSubmissionRepo) Update(ctx context.Context, submission *model.RoundSubmission) error {
	return m.Called(ctx, submission).Error(0)
}

func (m *mockSubmissionRepo) FindAllByTemplateAndUser(ctx context.Context, templateID uint, userID string) ([]model.RoundSubmission, error) {
	args := m.Called(ctx, templateID, userID)
	subs, _ := args.Get(0).([]model.RoundSubmission)
	return subs, args.Error(1)
}

type mockFeedbackRepo struct{ mock.Mock }

func (m *mockFeedbackRepo) Create(ctx context.Context, feedback *model.RoundFeedback) error {
	return m.Called(ctx, feedback).Error(0)
}

func (m *mockFeedbackRepo) FindAllByTemplateAndUser(ctx context.Context, templateID uint, userID string) ([]model.RoundFeedback, error) {
	args := m.Called(ctx, templateID, userID)
	fbs, _ := args.Get(0).([]model.RoundFeedback)
	return fbs, args.Error(1)
}

func (m *mockFeedbackRepo) FindAllByRound(ctx context.Context, templateID uint, slug string, userID string) ([]model.RoundFeedback, error) {
	args := m.Called(ctx, templateID, slug, userID)
	fbs, _ := args.Get(0).([]model.RoundFeedback)
	return fbs, args.Error(1)
}

type mockPromptRepo struct{ mock.Mock }

func (m *mockPromptRepo) Create(ctx context.Context, tmpl *model.PromptTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}

func (m *mockPromptRepo) FindByID(ctx context.Context, id uint) (*model.PromptTemplate, error) {
	args := m.Called(ctx, id)
	tmpl, _ := args.Get(0).(*model.PromptTemplate)
	return tmpl, args.Error(1)
}

func (m *mockPromptRepo) FindAll(ctx context.Context, purpose string) ([]model.PromptTemplate, error) {
	args := m.Called(ctx, purpose)
	tmpls, _ := args.Get(0).([]model.PromptTemplate)
	return tmpls, args.Error(1)
}

func (m *mockPromptRepo) FindLatestByPurpose(ctx context.Context, purpose string) (*model.PromptTemplate, error) {
	args := m.Called(ctx, purpose)
	tmpl, _ := args.Get(0).(*model.PromptTemplate)
	return tmpl, args.Error(1)
}

func (m *mockPromptRepo) Update(ctx context.Context, tmpl *model.PromptTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}

func (m *mockPromptRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockBankRepo struct{ mock.Mock }

func (m *mockBankRepo) Create(ctx context.Context, bank *model.QuestionBank) error {
	return m.Called(ctx, bank).Error(0)
}

func (m *mockBankRepo) FindByID(ctx context.Context, id uint) (*model.QuestionBank, error) {
	args := m.Called(ctx, id)
	bank, _ := args.Get(0).(*model.QuestionBank)
	return bank, args.Error(1)
}

func (m *mockBankRepo) FindByIDWithQuestions(ctx context.Context, id uint) (*model.QuestionBank, error) {
	args := m.Called(ctx, id)
	bank, _ := args.Get(0).(*model.QuestionBank)
	return bank, args.Error(1)
}

func (m *mockBankRepo) FindAllWithQuestionCount(ctx context.Context) ([]repository.QuestionBankWithCount, error) {
	args := m.Called(ctx)
	banks, _ := args.Get(0).([]repository.QuestionBankWithCount)
	return banks, args.Error(1)
}

func (m *mockBankRepo) Update(ctx context.Context, bank *model.QuestionBank) error {
	return m.Called(ctx, bank).Error(0)
}

func (m *mockBankRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockQuestionRepo struct{ mock.Mock }

func (m *mockQuestionRepo) Create(ctx context.Context, question *model.Question) error {
	return m.Called(ctx, question).Error(0)
}

func (m *mockQuestionRepo) CreateBatch(ctx context.Context, questions []model.Question) error {
	return m.Called(ctx, questions).Error(0)
}

func (m *mockQuestionRepo) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*model.Question)
	return q, args.Error(1)
}

func (m *mockQuestionRepo) FindByBankID(ctx context.Context, bankID uint) ([]model.Question, error) {
	args := m.Called(ctx, bankID)
	qs, _ := args.Get(0).([]model.Question)
	return qs, args.Error(1)
}

func (m *mockQuestionRepo) Update(ctx context.Context, question *model.Question) error {
	return m.Called(ctx, question).Error(0)
}

func (m *mockQuestionRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockLLM struct{ mock.Mock }

func (m *mockLLM) GenerateRoundFeedback(ctx context.Context, in RoundFeedbackInput) (*scoring.Feedback, error) {
	args := m.Called(ctx, in)
	fb, _ := args.Get(0).(*scoring.Feedback)
	return fb, args.Error(1)
}

func (m *mockLLM) GenerateQuestions(ctx context.Context, prompt string) ([]scoring.Question, error) {
	args := m.Called(ctx, prompt)
	qs, _ := args.Get(0).([]scoring.Question)
	return qs, args.Error(1)
}

type mockJudge struct{ mock.Mock }

func (m *mockJudge) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *mockJudge) Execute(ctx context.Context, req dto.ExecuteCodeDTO) (*dto.ExecutionResultDTO, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.ExecutionResultDTO)
	return res, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	return m.Called(ctx, eventType, payload).Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}
