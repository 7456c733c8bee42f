package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/event"
	"github.com/lshigami/mockround/internal/metrics"
	"github.com/lshigami/mockround/internal/model"
	"github.com/lshigami/mockround/internal/repository"
	"github.com/lshigami/mockround/internal/scoring"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

// maxConcurrentExecutions bounds how many code answers run against the judge at once.
const maxConcurrentExecutions = 4

const fallbackAssessment = "Detailed feedback could not be generated for this attempt. The score reflects the automatic checks only."

type RoundSubmissionService interface {
	SubmitRound(ctx context.Context, templateID uint, slug, userID string, req dto.SubmitRoundDTO) (*dto.RoundSubmissionResultDTO, error)
	GetUserSubmissions(ctx context.Context, templateID uint, userID string) ([]dto.RoundSubmissionSummaryDTO, error)
}

type roundSubmissionService struct {
	templateRepo   repository.InterviewTemplateRepository
	submissionRepo repository.RoundSubmissionRepository
	feedbackRepo   repository.RoundFeedbackRepository
	promptRepo     repository.PromptTemplateRepository
	llm            GeminiLLMService
	judge          JudgeService
	publisher      event.Publisher
	metrics        *metrics.Metrics
}

func NewRoundSubmissionService(
	templateRepo repository.InterviewTemplateRepository,
	submissionRepo repository.RoundSubmissionRepository,
	feedbackRepo repository.RoundFeedbackRepository,
	promptRepo repository.PromptTemplateRepository,
	llm GeminiLLMService,
	judge JudgeService,
	publisher event.Publisher,
	m *metrics.Metrics,
) RoundSubmissionService {
	return &roundSubmissionService{
		templateRepo:   templateRepo,
		submissionRepo: submissionRepo,
		feedbackRepo:   feedbackRepo,
		promptRepo:     promptRepo,
		llm:            llm,
		judge:          judge,
		publisher:      publisher,
		metrics:        m,
	}
}

func (s *roundSubmissionService) SubmitRound(ctx context.Context, templateID uint, slug, userID string, req dto.SubmitRoundDTO) (*dto.RoundSubmissionResultDTO, error) {
	// 1. Resolve the round and its questions
	tmpl, err := s.templateRepo.FindByIDWithRounds(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("interview %d: %w", templateID, err)
	}
	var round *model.Round
	for i := range tmpl.Rounds {
		if tmpl.Rounds[i].Slug == slug {
			round = &tmpl.Rounds[i]
			break
		}
	}
	if round == nil {
		return nil, fmt.Errorf("round %q of interview %d: %w", slug, templateID, ErrNotFound)
	}
	questions, err := normalizeRoundQuestions(*round)
	if err != nil {
		log.Error().Err(err).Uint("roundID", round.ID).Msg("SubmitRound: stored questions are unreadable")
		return nil, fmt.Errorf("round %q questions are unreadable: %w", slug, err)
	}
	if len(questions) == 0 {
		return nil, invalidf("round %q has no questions", slug)
	}
	questionMap := make(map[string]scoring.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}

	// 2. Keep answers that belong to this round
	answers := make([]scoring.UserAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		if _, ok := questionMap[a.QuestionID]; !ok {
			log.Warn().Str("questionID", a.QuestionID).Str("round", slug).Msg("SubmitRound: answer for a question not part of this round, skipping")
			continue
		}
		answers = append(answers, scoring.UserAnswer{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
			Code:       a.Code,
			Language:   a.Language,
		})
	}
	if len(answers) == 0 {
		return nil, invalidf("no answers match the questions of round %q", slug)
	}

	// 3. Execute code answers, then score deterministically
	warnings := s.executeCodeAnswers(ctx, questionMap, answers)
	score := scoring.ScoreAnswers(answers, questions)
	s.metrics.ObserveRoundScore(round.Type, score)

	submission := model.RoundSubmission{
		InterviewTemplateID: templateID,
		RoundSlug:           slug,
		UserID:              userID,
		Answers:             datatypes.JSONSlice[scoring.UserAnswer](answers),
		Score:               score,
		Status:              model.StatusScoring,
	}
	if err := s.submissionRepo.CreateNextAttempt(ctx, &submission); err != nil {
		log.Error().Err(err).Uint("templateID", templateID).Str("round", slug).Str("userID", userID).Msg("SubmitRound: failed to store submission")
		return nil, err
	}
	log.Info().Uint("submissionID", submission.ID).Int("attempt", submission.Attempt).Int("score", score).Msg("SubmitRound: submission stored")
	s.publish(ctx, event.RoundSubmitted, map[string]interface{}{
		"submission_id":         submission.ID,
		"interview_template_id": templateID,
		"round_slug":            slug,
		"user_id":               userID,
		"attempt":               submission.Attempt,
		"score":                 score,
	})

	// 4. Ask the LLM for narrative feedback, falling back to the deterministic score
	input := RoundFeedbackInput{
		Company:   tmpl.Company,
		Role:      tmpl.Role,
		RoundName: round.Name,
		RoundType: round.Type,
		Questions: questions,
		Answers:   answers,
		Score:     score,
	}
	if prompt, err := s.promptRepo.FindLatestByPurpose(ctx, model.PromptPurposeRoundFeedback); err == nil {
		input.PromptBody = prompt.Body
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Warn().Err(err).Msg("SubmitRound: failed to load round feedback prompt, using the built-in prompt")
	}

	status := model.StatusCompleted
	feedback, err := s.llm.GenerateRoundFeedback(ctx, input)
	if err != nil {
		log.Error().Err(err).Uint("submissionID", submission.ID).Msg("SubmitRound: feedback generation failed, storing fallback feedback")
		status = model.StatusCompletedWithErrors
		warnings = append(warnings, "feedback generation failed: "+err.Error())
		feedback = &scoring.Feedback{
			TotalScore:          score,
			CategoryScores:      []scoring.CategoryScore{},
			Strengths:           []string{},
			AreasForImprovement: []string{},
			FinalAssessment:     fallbackAssessment,
		}
	}

	record := model.RoundFeedback{
		InterviewTemplateID: templateID,
		RoundSlug:           slug,
		RoundName:           round.Name,
		UserID:              userID,
		SubmissionID:        submission.ID,
		Attempt:             submission.Attempt,
		TotalScore:          feedback.TotalScore,
		CategoryScores:      datatypes.JSONSlice[scoring.CategoryScore](feedback.CategoryScores),
		Strengths:           datatypes.JSONSlice[string](feedback.Strengths),
		AreasForImprovement: datatypes.JSONSlice[string](feedback.AreasForImprovement),
		FinalAssessment:     feedback.FinalAssessment,
		Status:              status,
	}
	if err := s.feedbackRepo.Create(ctx, &record); err != nil {
		log.Error().Err(err).Uint("submissionID", submission.ID).Msg("SubmitRound: failed to store feedback")
		submission.Status = model.StatusCompletedWithErrors
		if errUpdate := s.submissionRepo.Update(ctx, &submission); errUpdate != nil {
			log.Error().Err(errUpdate).Uint("submissionID", submission.ID).Msg("SubmitRound: failed to update submission status")
		}
		return nil, err
	}

	// 5. Finalize
	submission.Status = status
	if err := s.submissionRepo.Update(ctx, &submission); err != nil {
		log.Error().Err(err).Uint("submissionID", submission.ID).Msg("SubmitRound: failed to update submission status")
	}
	s.publish(ctx, event.RoundFeedbackCreated, map[string]interface{}{
		"feedback_id":           record.ID,
		"submission_id":         submission.ID,
		"interview_template_id": templateID,
		"round_slug":            slug,
		"user_id":               userID,
		"attempt":               record.Attempt,
		"total_score":           record.TotalScore,
		"status":                status,
	})

	return &dto.RoundSubmissionResultDTO{
		Submission: toSubmissionSummary(submission),
		Feedback:   toRoundFeedbackDTO(record),
		Warnings:   warnings,
	}, nil
}

// executeCodeAnswers runs every code answer against its test cases and attaches
// the result to the answer. Failures become warnings and leave the answer unscored.
func (s *roundSubmissionService) executeCodeAnswers(ctx context.Context, questions map[string]scoring.Question, answers []scoring.UserAnswer) []string {
	var (
		mu       sync.Mutex
		warnings []string
		g        errgroup.Group
	)
	warn := func(msg string) {
		mu.Lock()
		warnings = append(warnings, msg)
		mu.Unlock()
	}
	g.SetLimit(maxConcurrentExecutions)

	for i := range answers {
		q := questions[answers[i].QuestionID]
		if q.Type != scoring.QuestionTypeCode || len(q.TestCases) == 0 || answers[i].Code == "" {
			continue
		}
		if !s.judge.Enabled() {
			warn(fmt.Sprintf("question %s: code was not executed, no judge is configured", q.ID))
			continue
		}
		answer := &answers[i]
		g.Go(func() error {
			passed, err := s.runTestCases(ctx, q, *answer)
			if err != nil {
				log.Warn().Err(err).Str("questionID", q.ID).Msg("SubmitRound: code execution failed")
				warn(fmt.Sprintf("question %s: code was not executed: %v", q.ID, err))
				return nil
			}
			total := len(q.TestCases)
			awarded := float64(q.Weight()) * float64(passed) / float64(total)
			allPassed := passed == total
			answer.Score = &awarded
			answer.IsCorrect = &allPassed
			return nil
		})
	}
	_ = g.Wait()
	return warnings
}

func (s *roundSubmissionService) runTestCases(ctx context.Context, q scoring.Question, a scoring.UserAnswer) (int, error) {
	passed := 0
	for _, tc := range q.TestCases {
		res, err := s.judge.Execute(ctx, dto.ExecuteCodeDTO{
			SourceCode:     a.Code,
			Language:       a.Language,
			Stdin:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
		})
		if err != nil {
			return 0, err
		}
		if testCasePassed(res, tc) {
			passed++
		}
	}
	return passed, nil
}

// testCasePassed uses the judge verdict when it compared outputs. The judge only
// compares when an expected output is sent, so a case expecting no output passes
// on an accepted run that printed nothing.
func testCasePassed(res *dto.ExecutionResultDTO, tc scoring.TestCase) bool {
	if res.Passed != nil {
		return *res.Passed
	}
	return res.StatusID == statusAccepted && strings.TrimSpace(res.Stdout) == strings.TrimSpace(tc.ExpectedOutput)
}

func (s *roundSubmissionService) publish(ctx context.Context, eventType string, payload interface{}) {
	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		log.Warn().Err(err).Str("event", eventType).Msg("Failed to publish event")
	}
}

func (s *roundSubmissionService) GetUserSubmissions(ctx context.Context, templateID uint, userID string) ([]dto.RoundSubmissionSummaryDTO, error) {
	if _, err := s.templateRepo.FindByIDWithRounds(ctx, templateID); err != nil {
		return nil, fmt.Errorf("interview %d: %w", templateID, err)
	}
	submissions, err := s.submissionRepo.FindAllByTemplateAndUser(ctx, templateID, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RoundSubmissionSummaryDTO, 0, len(submissions))
	for _, sub := range submissions {
		resp = append(resp, toSubmissionSummary(sub))
	}
	return resp, nil
}

func toSubmissionSummary(sub model.RoundSubmission) dto.RoundSubmissionSummaryDTO {
	return dto.RoundSubmissionSummaryDTO{
		ID:                  sub.ID,
		InterviewTemplateID: sub.InterviewTemplateID,
		RoundSlug:           sub.RoundSlug,
		UserID:              sub.UserID,
		Attempt:             sub.Attempt,
		Score:               sub.Score,
		Status:              sub.Status,
		SubmittedAt:         sub.SubmittedAt,
	}
}
