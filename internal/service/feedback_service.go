package service

import (
	"context"
	"fmt"

	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/model"
	"github.com/lshigami/mockround/internal/repository"
	"github.com/lshigami/mockround/internal/scoring"
	"github.com/rs/zerolog/log"
)

type FeedbackService interface {
	GetRoundFeedback(ctx context.Context, templateID uint, slug, userID string) (*dto.RoundFeedbackHistoryDTO, error)
	GetCumulativeFeedback(ctx context.Context, templateID uint, userID string) (*dto.CumulativeFeedbackDTO, error)
}

type feedbackService struct {
	templateRepo repository.InterviewTemplateRepository
	feedbackRepo repository.RoundFeedbackRepository
}

func NewFeedbackService(
	templateRepo repository.InterviewTemplateRepository,
	feedbackRepo repository.RoundFeedbackRepository,
) FeedbackService {
	return &feedbackService{
		templateRepo: templateRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *feedbackService) GetRoundFeedback(ctx context.Context, templateID uint, slug, userID string) (*dto.RoundFeedbackHistoryDTO, error) {
	if _, err := s.templateRepo.FindRound(ctx, templateID, slug); err != nil {
		return nil, fmt.Errorf("round %q of interview %d: %w", slug, templateID, err)
	}
	records, err := s.feedbackRepo.FindAllByRound(ctx, templateID, slug, userID)
	if err != nil {
		return nil, err
	}
	history := &dto.RoundFeedbackHistoryDTO{Attempts: make([]dto.RoundFeedbackDTO, 0, len(records))}
	for _, r := range records {
		history.Attempts = append(history.Attempts, toRoundFeedbackDTO(r))
	}
	if len(history.Attempts) > 0 {
		latest := history.Attempts[0]
		history.Latest = &latest
	}
	return history, nil
}

// GetCumulativeFeedback recomputes the interview-wide view on every call. Only
// feedback for rounds that still exist in the template counts.
func (s *feedbackService) GetCumulativeFeedback(ctx context.Context, templateID uint, userID string) (*dto.CumulativeFeedbackDTO, error) {
	tmpl, err := s.templateRepo.FindByIDWithRounds(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("interview %d: %w", templateID, err)
	}
	roundNames := make(map[string]string, len(tmpl.Rounds))
	for _, r := range tmpl.Rounds {
		roundNames[r.Slug] = r.Name
	}

	records, err := s.feedbackRepo.FindAllByTemplateAndUser(ctx, templateID, userID)
	if err != nil {
		return nil, err
	}
	feedbacks := make([]scoring.RoundFeedback, 0, len(records))
	for _, r := range records {
		name, ok := roundNames[r.RoundSlug]
		if !ok {
			log.Debug().Str("round", r.RoundSlug).Uint("templateID", templateID).Msg("Skipping feedback for a round no longer in the template")
			continue
		}
		fb := r.ToScoring()
		fb.RoundName = name
		feedbacks = append(feedbacks, fb)
	}

	return &dto.CumulativeFeedbackDTO{
		InterviewTemplateID: tmpl.ID,
		Company:             tmpl.Company,
		Role:                tmpl.Role,
		UserID:              userID,
		CumulativeFeedback:  scoring.AggregateCumulativeFeedback(feedbacks, len(tmpl.Rounds)),
	}, nil
}

func toRoundFeedbackDTO(r model.RoundFeedback) dto.RoundFeedbackDTO {
	nonNil := func(s []string) []string {
		if s == nil {
			return []string{}
		}
		return s
	}
	categories := []scoring.CategoryScore(r.CategoryScores)
	if categories == nil {
		categories = []scoring.CategoryScore{}
	}
	return dto.RoundFeedbackDTO{
		ID:                  r.ID,
		RoundSlug:           r.RoundSlug,
		RoundName:           r.RoundName,
		Attempt:             r.Attempt,
		TotalScore:          r.TotalScore,
		CategoryScores:      categories,
		Strengths:           nonNil(r.Strengths),
		AreasForImprovement: nonNil(r.AreasForImprovement),
		FinalAssessment:     r.FinalAssessment,
		Status:              r.Status,
		CreatedAt:           r.CreatedAt,
	}
}
