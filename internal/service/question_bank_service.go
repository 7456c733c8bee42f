package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/model"
	"github.com/lshigami/mockround/internal/repository"
	"github.com/lshigami/mockround/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type QuestionBankService interface {
	CreateQuestionBank(ctx context.Context, req dto.QuestionBankCreateDTO) (*dto.QuestionBankResponseDTO, error)
	GetQuestionBank(ctx context.Context, id uint) (*dto.QuestionBankResponseDTO, error)
	ListQuestionBanks(ctx context.Context) ([]dto.QuestionBankSummaryDTO, error)
	UpdateQuestionBank(ctx context.Context, id uint, req dto.QuestionBankUpdateDTO) (*dto.QuestionBankResponseDTO, error)
	DeleteQuestionBank(ctx context.Context, id uint) error

	AddQuestion(ctx context.Context, bankID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	UpdateQuestion(ctx context.Context, id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(ctx context.Context, id uint) error

	GenerateQuestions(ctx context.Context, bankID uint, req dto.GenerateQuestionsDTO) (*dto.GenerateQuestionsResponseDTO, error)
}

type questionBankService struct {
	bankRepo     repository.QuestionBankRepository
	questionRepo repository.QuestionRepository
	promptRepo   repository.PromptTemplateRepository
	llm          GeminiLLMService
}

func NewQuestionBankService(
	bankRepo repository.QuestionBankRepository,
	questionRepo repository.QuestionRepository,
	promptRepo repository.PromptTemplateRepository,
	llm GeminiLLMService,
) QuestionBankService {
	return &questionBankService{
		bankRepo:     bankRepo,
		questionRepo: questionRepo,
		promptRepo:   promptRepo,
		llm:          llm,
	}
}

func (s *questionBankService) CreateQuestionBank(ctx context.Context, req dto.QuestionBankCreateDTO) (*dto.QuestionBankResponseDTO, error) {
	bank := model.QuestionBank{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
	}
	for i, qDTO := range req.Questions {
		q := questionFromDTO(qDTO)
		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		question, err := questionToModel(q)
		if err != nil {
			return nil, err
		}
		bank.Questions = append(bank.Questions, question)
	}

	if err := s.bankRepo.Create(ctx, &bank); err != nil {
		log.Error().Err(err).Str("name", bank.Name).Msg("Failed to create question bank")
		return nil, err
	}
	log.Info().Uint("bankID", bank.ID).Int("questions", len(bank.Questions)).Msg("Question bank created")
	return toQuestionBankResponse(&bank), nil
}

func (s *questionBankService) GetQuestionBank(ctx context.Context, id uint) (*dto.QuestionBankResponseDTO, error) {
	bank, err := s.bankRepo.FindByIDWithQuestions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("question bank %d: %w", id, err)
	}
	return toQuestionBankResponse(bank), nil
}

func (s *questionBankService) ListQuestionBanks(ctx context.Context) ([]dto.QuestionBankSummaryDTO, error) {
	banks, err := s.bankRepo.FindAllWithQuestionCount(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.QuestionBankSummaryDTO, 0, len(banks))
	for _, b := range banks {
		summaries = append(summaries, dto.QuestionBankSummaryDTO{
			ID:            b.ID,
			Name:          b.Name,
			Description:   b.Description,
			Category:      b.Category,
			QuestionCount: b.QuestionCount,
			CreatedAt:     b.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *questionBankService) UpdateQuestionBank(ctx context.Context, id uint, req dto.QuestionBankUpdateDTO) (*dto.QuestionBankResponseDTO, error) {
	bank, err := s.bankRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("question bank %d: %w", id, err)
	}
	bank.Name = strings.TrimSpace(req.Name)
	bank.Description = req.Description
	bank.Category = req.Category
	if err := s.bankRepo.Update(ctx, bank); err != nil {
		return nil, err
	}
	return s.GetQuestionBank(ctx, id)
}

func (s *questionBankService) DeleteQuestionBank(ctx context.Context, id uint) error {
	if _, err := s.bankRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("question bank %d: %w", id, err)
	}
	return s.bankRepo.Delete(ctx, id)
}

func (s *questionBankService) AddQuestion(ctx context.Context, bankID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.bankRepo.FindByID(ctx, bankID); err != nil {
		return nil, fmt.Errorf("question bank %d: %w", bankID, err)
	}
	q := questionFromDTO(req)
	if err := validateQuestion(q); err != nil {
		return nil, err
	}
	question, err := questionToModel(q)
	if err != nil {
		return nil, err
	}
	question.QuestionBankID = bankID
	if err := s.questionRepo.Create(ctx, &question); err != nil {
		return nil, err
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionBankService) UpdateQuestion(ctx context.Context, id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	existing, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("question %d: %w", id, err)
	}
	q := questionFromDTO(req)
	if err := validateQuestion(q); err != nil {
		return nil, err
	}
	updated, err := questionToModel(q)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.QuestionBankID = existing.QuestionBankID
	updated.CreatedAt = existing.CreatedAt
	if err := s.questionRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	resp := toQuestionResponse(updated)
	return &resp, nil
}

func (s *questionBankService) DeleteQuestion(ctx context.Context, id uint) error {
	if _, err := s.questionRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("question %d: %w", id, err)
	}
	return s.questionRepo.Delete(ctx, id)
}

func (s *questionBankService) GenerateQuestions(ctx context.Context, bankID uint, req dto.GenerateQuestionsDTO) (*dto.GenerateQuestionsResponseDTO, error) {
	bank, err := s.bankRepo.FindByID(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("question bank %d: %w", bankID, err)
	}
	tmpl, err := s.promptRepo.FindByID(ctx, req.PromptTemplateID)
	if err != nil {
		return nil, fmt.Errorf("prompt template %d: %w", req.PromptTemplateID, err)
	}
	if tmpl.Purpose != model.PromptPurposeQuestionGeneration {
		return nil, invalidf("prompt template %d is for %q, not %q", tmpl.ID, tmpl.Purpose, model.PromptPurposeQuestionGeneration)
	}

	prompt, err := RenderPrompt(tmpl.Body, map[string]interface{}{
		"Topic":      req.Topic,
		"Type":       req.Type,
		"Difficulty": req.Difficulty,
		"Count":      req.Count,
		"BankName":   bank.Name,
		"Category":   bank.Category,
	})
	if err != nil {
		return nil, err
	}

	generated, err := s.llm.GenerateQuestions(ctx, prompt)
	if err != nil {
		return nil, err
	}

	resp := &dto.GenerateQuestionsResponseDTO{Created: make([]dto.QuestionResponseDTO, 0, req.Count)}
	batch := make([]model.Question, 0, req.Count)
	for i, q := range generated {
		if len(batch) == req.Count {
			resp.Skipped = append(resp.Skipped, fmt.Sprintf("question %d: more questions than requested", i+1))
			continue
		}
		if q.Type == "" {
			q.Type = scoring.QuestionType(req.Type)
		}
		if q.Difficulty == "" {
			q.Difficulty = scoring.Difficulty(req.Difficulty)
		}
		if q.Points <= 0 {
			q.Points = 1
		}
		if err := validateQuestion(q); err != nil {
			resp.Skipped = append(resp.Skipped, fmt.Sprintf("question %d: %v", i+1, err))
			continue
		}
		question, err := questionToModel(q)
		if err != nil {
			resp.Skipped = append(resp.Skipped, fmt.Sprintf("question %d: %v", i+1, err))
			continue
		}
		question.QuestionBankID = bankID
		batch = append(batch, question)
	}

	if len(batch) > 0 {
		if err := s.questionRepo.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
	}
	for _, q := range batch {
		resp.Created = append(resp.Created, toQuestionResponse(q))
	}
	log.Info().Uint("bankID", bankID).Int("created", len(batch)).Int("skipped", len(resp.Skipped)).Msg("Generated questions stored")
	return resp, nil
}

// validateQuestion enforces the shape a question needs before it can be scored.
func validateQuestion(q scoring.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return invalidf("question text is required")
	}
	if q.Points < 0 {
		return invalidf("points must be positive")
	}
	switch q.Type {
	case scoring.QuestionTypeMCQ:
		if len(q.Options) < 2 {
			return invalidf("mcq questions need at least two options")
		}
		idx, ok := q.CorrectIndex()
		if !ok || idx < 0 || idx >= len(q.Options) {
			return invalidf("mcq correct_answer must be an option index or one of the options")
		}
	case scoring.QuestionTypeCode:
		if len(q.TestCases) == 0 {
			return invalidf("code questions need at least one test case")
		}
	case scoring.QuestionTypeText:
	default:
		return invalidf("unknown question type %q", q.Type)
	}
	return nil
}

func questionFromDTO(req dto.QuestionCreateDTO) scoring.Question {
	points := req.Points
	if points <= 0 {
		points = 1
	}
	return scoring.Question{
		Text:          strings.TrimSpace(req.Text),
		Type:          scoring.QuestionType(req.Type),
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		TestCases:     req.TestCases,
		Difficulty:    scoring.Difficulty(req.Difficulty),
		Points:        points,
	}
}

func questionToModel(q scoring.Question) (model.Question, error) {
	m := model.Question{
		Text:       q.Text,
		Type:       string(q.Type),
		Options:    datatypes.JSONSlice[string](q.Options),
		TestCases:  datatypes.JSONSlice[scoring.TestCase](q.TestCases),
		Difficulty: string(q.Difficulty),
		Points:     q.Weight(),
	}
	if q.CorrectAnswer != nil && !q.CorrectAnswer.IsZero() {
		raw, err := json.Marshal(q.CorrectAnswer)
		if err != nil {
			return m, fmt.Errorf("failed to encode correct answer: %w", err)
		}
		m.CorrectAnswer = datatypes.JSON(raw)
	}
	return m, nil
}

// questionToScoring turns a bank question into the structured form rounds store.
// The bank row id becomes the question id.
func questionToScoring(m model.Question) scoring.Question {
	q := scoring.Question{
		ID:         strconv.FormatUint(uint64(m.ID), 10),
		Text:       m.Text,
		Type:       scoring.QuestionType(m.Type),
		Options:    []string(m.Options),
		TestCases:  []scoring.TestCase(m.TestCases),
		Difficulty: scoring.Difficulty(m.Difficulty),
		Points:     m.Points,
	}
	if len(m.CorrectAnswer) > 0 {
		var v scoring.Value
		if err := json.Unmarshal(m.CorrectAnswer, &v); err == nil && !v.IsZero() {
			q.CorrectAnswer = &v
		}
	}
	return q
}

func toQuestionResponse(m model.Question) dto.QuestionResponseDTO {
	q := questionToScoring(m)
	return dto.QuestionResponseDTO{
		ID:             m.ID,
		QuestionBankID: m.QuestionBankID,
		Text:           m.Text,
		Type:           m.Type,
		Options:        q.Options,
		CorrectAnswer:  q.CorrectAnswer,
		TestCases:      q.TestCases,
		Difficulty:     m.Difficulty,
		Points:         m.Points,
		CreatedAt:      m.CreatedAt,
	}
}

func toQuestionBankResponse(bank *model.QuestionBank) *dto.QuestionBankResponseDTO {
	resp := &dto.QuestionBankResponseDTO{
		ID:          bank.ID,
		Name:        bank.Name,
		Description: bank.Description,
		Category:    bank.Category,
		Questions:   make([]dto.QuestionResponseDTO, 0, len(bank.Questions)),
		CreatedAt:   bank.CreatedAt,
		UpdatedAt:   bank.UpdatedAt,
	}
	for _, q := range bank.Questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(q))
	}
	return resp
}
