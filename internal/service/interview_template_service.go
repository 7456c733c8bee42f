package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/model"
	"github.com/lshigami/mockround/internal/repository"
	"github.com/lshigami/mockround/internal/scoring"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"gorm.io/datatypes"
)

type InterviewTemplateService interface {
	CreateInterviewTemplate(ctx context.Context, req dto.InterviewTemplateCreateDTO) (*dto.InterviewTemplateResponseDTO, error)
	GetInterviewTemplate(ctx context.Context, id uint) (*dto.InterviewTemplateResponseDTO, error)
	ListInterviewTemplates(ctx context.Context) ([]dto.InterviewTemplateSummaryDTO, error)
	UpdateInterviewTemplate(ctx context.Context, id uint, req dto.InterviewTemplateCreateDTO) (*dto.InterviewTemplateResponseDTO, error)
	DeleteInterviewTemplate(ctx context.Context, id uint) error
	ImportQuestionBank(ctx context.Context, templateID uint, slug string, req dto.ImportQuestionBankDTO) (*dto.RoundResponseDTO, error)

	// GetCandidateInterview returns the template with answer keys removed.
	GetCandidateInterview(ctx context.Context, id uint) (*dto.InterviewTemplateResponseDTO, error)
}

type interviewTemplateService struct {
	templateRepo repository.InterviewTemplateRepository
	bankRepo     repository.QuestionBankRepository
}

func NewInterviewTemplateService(
	templateRepo repository.InterviewTemplateRepository,
	bankRepo repository.QuestionBankRepository,
) InterviewTemplateService {
	return &interviewTemplateService{
		templateRepo: templateRepo,
		bankRepo:     bankRepo,
	}
}

func (s *interviewTemplateService) CreateInterviewTemplate(ctx context.Context, req dto.InterviewTemplateCreateDTO) (*dto.InterviewTemplateResponseDTO, error) {
	rounds, err := roundsFromDTO(req.Rounds)
	if err != nil {
		return nil, err
	}
	tmpl := model.InterviewTemplate{
		Company:     strings.TrimSpace(req.Company),
		Role:        strings.TrimSpace(req.Role),
		Description: req.Description,
		Rounds:      rounds,
	}
	if err := s.templateRepo.Create(ctx, &tmpl); err != nil {
		log.Error().Err(err).Str("company", tmpl.Company).Msg("Failed to create interview template")
		return nil, err
	}
	log.Info().Uint("templateID", tmpl.ID).Int("rounds", len(tmpl.Rounds)).Msg("Interview template created")
	return toInterviewTemplateResponse(&tmpl, false), nil
}

func (s *interviewTemplateService) GetInterviewTemplate(ctx context.Context, id uint) (*dto.InterviewTemplateResponseDTO, error) {
	tmpl, err := s.templateRepo.FindByIDWithRounds(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("interview template %d: %w", id, err)
	}
	return toInterviewTemplateResponse(tmpl, false), nil
}

func (s *interviewTemplateService) GetCandidateInterview(ctx context.Context, id uint) (*dto.InterviewTemplateResponseDTO, error) {
	tmpl, err := s.templateRepo.FindByIDWithRounds(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("interview %d: %w", id, err)
	}
	return toInterviewTemplateResponse(tmpl, true), nil
}

func (s *interviewTemplateService) ListInterviewTemplates(ctx context.Context) ([]dto.InterviewTemplateSummaryDTO, error) {
	tmpls, err := s.templateRepo.FindAllWithRoundCount(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.InterviewTemplateSummaryDTO, 0, len(tmpls))
	for _, t := range tmpls {
		summaries = append(summaries, dto.InterviewTemplateSummaryDTO{
			ID:          t.ID,
			Company:     t.Company,
			Role:        t.Role,
			Description: t.Description,
			RoundCount:  t.RoundCount,
			CreatedAt:   t.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *interviewTemplateService) UpdateInterviewTemplate(ctx context.Context, id uint, req dto.InterviewTemplateCreateDTO) (*dto.InterviewTemplateResponseDTO, error) {
	rounds, err := roundsFromDTO(req.Rounds)
	if err != nil {
		return nil, err
	}
	tmpl := model.InterviewTemplate{
		ID:          id,
		Company:     strings.TrimSpace(req.Company),
		Role:        strings.TrimSpace(req.Role),
		Description: req.Description,
		Rounds:      rounds,
	}
	if err := s.templateRepo.UpdateWithRounds(ctx, &tmpl); err != nil {
		return nil, fmt.Errorf("interview template %d: %w", id, err)
	}
	return s.GetInterviewTemplate(ctx, id)
}

func (s *interviewTemplateService) DeleteInterviewTemplate(ctx context.Context, id uint) error {
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("interview template %d: %w", id, err)
	}
	return nil
}

func (s *interviewTemplateService) ImportQuestionBank(ctx context.Context, templateID uint, slug string, req dto.ImportQuestionBankDTO) (*dto.RoundResponseDTO, error) {
	round, err := s.templateRepo.FindRound(ctx, templateID, slug)
	if err != nil {
		return nil, fmt.Errorf("round %q of interview template %d: %w", slug, templateID, err)
	}
	bank, err := s.bankRepo.FindByIDWithQuestions(ctx, req.QuestionBankID)
	if err != nil {
		return nil, fmt.Errorf("question bank %d: %w", req.QuestionBankID, err)
	}

	questions, err := normalizeRoundQuestions(*round)
	if err != nil {
		return nil, invalidf("round %q has an unreadable question list: %v", slug, err)
	}
	seen := make(map[string]struct{}, len(questions)+len(bank.Questions))
	for _, q := range questions {
		seen[q.ID] = struct{}{}
	}
	imported := 0
	for _, bq := range bank.Questions {
		q := questionToScoring(bq)
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		questions = append(questions, q)
		imported++
	}

	raw, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode round questions: %w", err)
	}
	round.Questions = datatypes.JSON(raw)
	if err := s.templateRepo.UpdateRound(ctx, round); err != nil {
		return nil, err
	}
	log.Info().Uint("templateID", templateID).Str("round", slug).Uint("bankID", bank.ID).Int("imported", imported).Msg("Question bank imported into round")

	resp := toRoundResponse(*round, false)
	return &resp, nil
}

func roundsFromDTO(in []dto.RoundCreateDTO) ([]model.Round, error) {
	slugs := make(map[string]struct{}, len(in))
	rounds := make([]model.Round, 0, len(in))
	for _, r := range in {
		if _, dup := slugs[r.Slug]; dup {
			return nil, invalidf("round slug %q is used more than once", r.Slug)
		}
		slugs[r.Slug] = struct{}{}

		if err := validateRoundQuestions(r.Slug, r.Questions); err != nil {
			return nil, err
		}
		questions := r.Questions
		if questions == nil {
			questions = []json.RawMessage{}
		}
		raw, err := json.Marshal(questions)
		if err != nil {
			return nil, fmt.Errorf("failed to encode questions of round %q: %w", r.Slug, err)
		}
		rounds = append(rounds, model.Round{
			Slug:            r.Slug,
			Name:            strings.TrimSpace(r.Name),
			Type:            r.Type,
			OrderInTemplate: r.OrderInTemplate,
			DurationMinutes: r.DurationMinutes,
			Questions:       datatypes.JSON(raw),
		})
	}
	return rounds, nil
}

// validateRoundQuestions rejects structured items that would be silently
// dropped or unscorable once the round is read back.
func validateRoundQuestions(slug string, items []json.RawMessage) error {
	questions := scoring.NormalizeQuestions(items)
	if len(questions) != len(items) {
		return invalidf("round %q contains questions that cannot be read", slug)
	}
	ids := make(map[string]struct{}, len(questions))
	for i, q := range questions {
		if _, dup := ids[q.ID]; dup {
			return invalidf("round %q: question id %q is used more than once", slug, q.ID)
		}
		ids[q.ID] = struct{}{}
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("round %q question %d: %w", slug, i+1, err)
		}
	}
	return nil
}

func toInterviewTemplateResponse(tmpl *model.InterviewTemplate, candidate bool) *dto.InterviewTemplateResponseDTO {
	rounds := append([]model.Round(nil), tmpl.Rounds...)
	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].OrderInTemplate < rounds[j].OrderInTemplate
	})
	resp := &dto.InterviewTemplateResponseDTO{
		ID:          tmpl.ID,
		Company:     tmpl.Company,
		Role:        tmpl.Role,
		Description: tmpl.Description,
		Rounds:      make([]dto.RoundResponseDTO, 0, len(rounds)),
		CreatedAt:   tmpl.CreatedAt,
		UpdatedAt:   tmpl.UpdatedAt,
	}
	for _, r := range rounds {
		resp.Rounds = append(resp.Rounds, toRoundResponse(r, candidate))
	}
	return resp
}

// normalizeRoundQuestions normalizes a stored round and warns about structured
// items that no longer decode, since those are left out of the result.
func normalizeRoundQuestions(r model.Round) ([]scoring.Question, error) {
	questions, err := scoring.NormalizeQuestionsJSON(r.Questions)
	if err != nil {
		return nil, err
	}
	if stored := int(gjson.GetBytes(r.Questions, "#").Int()); stored > len(questions) {
		log.Warn().
			Uint("roundID", r.ID).
			Str("slug", r.Slug).
			Int("stored", stored).
			Int("usable", len(questions)).
			Msg("Round has stored questions that could not be decoded")
	}
	return questions, nil
}

func toRoundResponse(r model.Round, candidate bool) dto.RoundResponseDTO {
	questions, err := normalizeRoundQuestions(r)
	if err != nil {
		log.Error().Err(err).Uint("roundID", r.ID).Str("slug", r.Slug).Msg("Stored round questions are unreadable")
		questions = []scoring.Question{}
	}
	if candidate {
		questions = stripAnswerKeys(questions)
	}
	return dto.RoundResponseDTO{
		ID:              r.ID,
		Slug:            r.Slug,
		Name:            r.Name,
		Type:            r.Type,
		OrderInTemplate: r.OrderInTemplate,
		DurationMinutes: r.DurationMinutes,
		Questions:       questions,
	}
}

// stripAnswerKeys hides correct answers and expected outputs from candidates.
func stripAnswerKeys(questions []scoring.Question) []scoring.Question {
	out := make([]scoring.Question, len(questions))
	for i, q := range questions {
		q.CorrectAnswer = nil
		if len(q.TestCases) > 0 {
			cases := make([]scoring.TestCase, len(q.TestCases))
			for j, tc := range q.TestCases {
				cases[j] = scoring.TestCase{Input: tc.Input}
			}
			q.TestCases = cases
		}
		out[i] = q
	}
	return out
}
