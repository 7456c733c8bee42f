package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/event"
	"github.com/lshigami/mockround/internal/model"
	"github.com/lshigami/mockround/internal/repository"
	"github.com/lshigami/mockround/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

const submissionRound = `[
	{"id": "q1", "text": "Pick the prime", "type": "mcq", "options": ["4", "5"], "correct_answer": 1, "points": 1},
	{"id": "q2", "text": "Explain goroutines", "type": "text", "points": 1},
	{"id": "q3", "text": "Echo input", "type": "code", "points": 2,
	 "test_cases": [{"input": "1", "expected_output": "1"}, {"input": "2", "expected_output": "2"}]}
]`

type submissionFixture struct {
	templateRepo   *mockTemplateRepo
	submissionRepo *mockSubmissionRepo
	feedbackRepo   *mockFeedbackRepo
	promptRepo     *mockPromptRepo
	llm            *mockLLM
	judge          *mockJudge
	publisher      *mockPublisher
	svc            RoundSubmissionService
}

func newSubmissionFixture() *submissionFixture {
	return newSubmissionFixtureWith(submissionRound)
}

func newSubmissionFixtureWith(questions string) *submissionFixture {
	f := &submissionFixture{
		templateRepo:   new(mockTemplateRepo),
		submissionRepo: new(mockSubmissionRepo),
		feedbackRepo:   new(mockFeedbackRepo),
		promptRepo:     new(mockPromptRepo),
		llm:            new(mockLLM),
		judge:          new(mockJudge),
		publisher:      new(mockPublisher),
	}
	f.svc = NewRoundSubmissionService(f.templateRepo, f.submissionRepo, f.feedbackRepo, f.promptRepo, f.llm, f.judge, f.publisher, nil)

	f.templateRepo.On("FindByIDWithRounds", mock.Anything, uint(1)).Return(&model.InterviewTemplate{
		ID:      1,
		Company: "Acme",
		Role:    "Backend",
		Rounds: []model.Round{
			{ID: 7, InterviewTemplateID: 1, Slug: "screen", Name: "Screening", Type: "aptitude", OrderInTemplate: 1, Questions: datatypes.JSON(questions)},
		},
	}, nil)
	f.templateRepo.On("FindByIDWithRounds", mock.Anything, mock.Anything).Return(nil, ErrNotFound)
	return f
}

func (f *submissionFixture) expectStored(attempt int) {
	f.submissionRepo.On("CreateNextAttempt", mock.Anything, mock.AnythingOfType("*model.RoundSubmission")).
		Run(func(args mock.Arguments) {
			sub := args.Get(1).(*model.RoundSubmission)
			sub.ID = 40
			sub.Attempt = attempt
		}).
		Return(nil)
	f.submissionRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.RoundSubmission")).Return(nil)
	f.feedbackRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.RoundFeedback")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.RoundFeedback).ID = 90
		}).
		Return(nil)
	f.promptRepo.On("FindLatestByPurpose", mock.Anything, model.PromptPurposeRoundFeedback).Return(nil, repository.ErrNotFound)
}

func boolPtr(b bool) *bool { return &b }

func TestSubmitRound(t *testing.T) {
	f := newSubmissionFixture()
	f.expectStored(2)

	f.judge.On("Enabled").Return(true)
	f.judge.On("Execute", mock.Anything, mock.MatchedBy(func(r dto.ExecuteCodeDTO) bool { return r.Stdin == "1" })).
		Return(&dto.ExecutionResultDTO{StatusID: 3, Passed: boolPtr(true)}, nil)
	f.judge.On("Execute", mock.Anything, mock.MatchedBy(func(r dto.ExecuteCodeDTO) bool { return r.Stdin == "2" })).
		Return(&dto.ExecutionResultDTO{StatusID: 4, Passed: boolPtr(false)}, nil)

	f.llm.On("GenerateRoundFeedback", mock.Anything, mock.MatchedBy(func(in RoundFeedbackInput) bool {
		return in.Score == 75 && len(in.Answers) == 3 && in.Company == "Acme" && in.RoundType == "aptitude"
	})).Return(&scoring.Feedback{
		TotalScore:          80,
		CategoryScores:      []scoring.CategoryScore{{Name: "Correctness", Score: 80}},
		Strengths:           []string{"Solid basics"},
		AreasForImprovement: []string{"Edge cases"},
		FinalAssessment:     "Good attempt.",
	}, nil)

	f.publisher.On("Publish", mock.Anything, event.RoundSubmitted, mock.Anything).Return(nil)
	f.publisher.On("Publish", mock.Anything, event.RoundFeedbackCreated, mock.Anything).Return(errors.New("broker down"))

	res, err := f.svc.SubmitRound(context.Background(), 1, "screen", "user-1", dto.SubmitRoundDTO{Answers: []dto.AnswerDTO{
		{QuestionID: "q1", Answer: scoring.IndexValue(1)},
		{QuestionID: "q2", Answer: scoring.TextValue("They are cheap threads")},
		{QuestionID: "q3", Code: "print(input())", Language: "python"},
		{QuestionID: "unknown", Answer: scoring.IndexValue(0)},
	}})
	require.NoError(t, err)

	// q1 1/1, q2 1/1, q3 one of two test cases on 2 points => 3/4.
	assert.Equal(t, 75, res.Submission.Score)
	assert.Equal(t, 2, res.Submission.Attempt)
	assert.Equal(t, model.StatusCompleted, res.Submission.Status)
	assert.Equal(t, 80, res.Feedback.TotalScore)
	assert.Equal(t, 2, res.Feedback.Attempt)
	assert.Equal(t, "Screening", res.Feedback.RoundName)
	assert.Equal(t, []string{"Solid basics"}, res.Feedback.Strengths)
	assert.Empty(t, res.Warnings)

	stored := f.submissionRepo.Calls[0].Arguments.Get(1).(*model.RoundSubmission)
	require.Len(t, stored.Answers, 3)
	code := stored.Answers[2]
	require.NotNil(t, code.Score)
	assert.InDelta(t, 1.0, *code.Score, 1e-9)
	require.NotNil(t, code.IsCorrect)
	assert.False(t, *code.IsCorrect)

	f.publisher.AssertNumberOfCalls(t, "Publish", 2)
	f.judge.AssertNumberOfCalls(t, "Execute", 2)
}

func TestSubmitRound_FallbackFeedback(t *testing.T) {
	f := newSubmissionFixture()
	f.expectStored(1)
	f.judge.On("Enabled").Return(false)
	f.llm.On("GenerateRoundFeedback", mock.Anything, mock.Anything).Return(nil, ErrLLMUnavailable)
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.SubmitRound(context.Background(), 1, "screen", "user-1", dto.SubmitRoundDTO{Answers: []dto.AnswerDTO{
		{QuestionID: "q1", Answer: scoring.IndexValue(1)},
		{QuestionID: "q3", Code: "print(1)", Language: "python"},
	}})
	require.NoError(t, err)

	// Unanswered questions do not count: q1 1/1, q3 unexecuted 0/2 => 1/3.
	assert.Equal(t, 33, res.Submission.Score)
	assert.Equal(t, model.StatusCompletedWithErrors, res.Submission.Status)
	assert.Equal(t, model.StatusCompletedWithErrors, res.Feedback.Status)
	assert.Equal(t, 33, res.Feedback.TotalScore)
	assert.Equal(t, fallbackAssessment, res.Feedback.FinalAssessment)
	assert.NotNil(t, res.Feedback.Strengths)
	assert.Len(t, res.Warnings, 2)
	f.judge.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestSubmitRound_JudgeFailureLeavesAnswerUnscored(t *testing.T) {
	f := newSubmissionFixture()
	f.expectStored(1)
	f.judge.On("Enabled").Return(true)
	f.judge.On("Execute", mock.Anything, mock.Anything).Return(nil, ErrJudgeTimeout)
	f.llm.On("GenerateRoundFeedback", mock.Anything, mock.Anything).Return(&scoring.Feedback{TotalScore: 10}, nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.SubmitRound(context.Background(), 1, "screen", "user-1", dto.SubmitRoundDTO{Answers: []dto.AnswerDTO{
		{QuestionID: "q3", Code: "print(1)", Language: "python"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Submission.Score)
	assert.Equal(t, model.StatusCompleted, res.Submission.Status)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "q3")
}

func TestSubmitRound_EmptyExpectedOutput(t *testing.T) {
	f := newSubmissionFixtureWith(`[
		{"id": "q1", "text": "Consume stdin silently", "type": "code", "points": 2,
		 "test_cases": [{"input": "x", "expected_output": ""}, {"input": "y", "expected_output": ""}]}
	]`)
	f.expectStored(1)

	f.judge.On("Enabled").Return(true)
	f.judge.On("Execute", mock.Anything, mock.MatchedBy(func(r dto.ExecuteCodeDTO) bool { return r.Stdin == "x" })).
		Return(&dto.ExecutionResultDTO{StatusID: 3, Status: "Accepted"}, nil)
	f.judge.On("Execute", mock.Anything, mock.MatchedBy(func(r dto.ExecuteCodeDTO) bool { return r.Stdin == "y" })).
		Return(&dto.ExecutionResultDTO{StatusID: 3, Status: "Accepted", Stdout: "noise\n"}, nil)
	f.llm.On("GenerateRoundFeedback", mock.Anything, mock.Anything).Return(&scoring.Feedback{TotalScore: 50}, nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.SubmitRound(context.Background(), 1, "screen", "user-1", dto.SubmitRoundDTO{Answers: []dto.AnswerDTO{
		{QuestionID: "q1", Code: "import sys; sys.stdin.read()", Language: "python"},
	}})
	require.NoError(t, err)

	// The silent run passes, the noisy one does not.
	assert.Equal(t, 50, res.Submission.Score)
	assert.Empty(t, res.Warnings)

	stored := f.submissionRepo.Calls[0].Arguments.Get(1).(*model.RoundSubmission)
	require.Len(t, stored.Answers, 1)
	require.NotNil(t, stored.Answers[0].Score)
	assert.InDelta(t, 1.0, *stored.Answers[0].Score, 1e-9)
	require.NotNil(t, stored.Answers[0].IsCorrect)
	assert.False(t, *stored.Answers[0].IsCorrect)
}

func TestTestCasePassed(t *testing.T) {
	tests := []struct {
		name string
		res  dto.ExecutionResultDTO
		tc   scoring.TestCase
		want bool
	}{
		{name: "judge verdict wins", res: dto.ExecutionResultDTO{StatusID: 3, Passed: boolPtr(false)}, tc: scoring.TestCase{ExpectedOutput: "1"}, want: false},
		{name: "accepted with no output expected", res: dto.ExecutionResultDTO{StatusID: 3}, want: true},
		{name: "trailing newline ignored", res: dto.ExecutionResultDTO{StatusID: 3, Stdout: "\n"}, want: true},
		{name: "unexpected output", res: dto.ExecutionResultDTO{StatusID: 3, Stdout: "x"}, want: false},
		{name: "runtime error", res: dto.ExecutionResultDTO{StatusID: 11}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.res
			assert.Equal(t, tt.want, testCasePassed(&res, tt.tc))
		})
	}
}

func TestSubmitRound_Rejections(t *testing.T) {
	t.Run("unknown round", func(t *testing.T) {
		f := newSubmissionFixture()
		_, err := f.svc.SubmitRound(context.Background(), 1, "missing", "u", dto.SubmitRoundDTO{Answers: []dto.AnswerDTO{{QuestionID: "q1"}}})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown interview", func(t *testing.T) {
		f := newSubmissionFixture()
		_, err := f.svc.SubmitRound(context.Background(), 99, "screen", "u", dto.SubmitRoundDTO{Answers: []dto.AnswerDTO{{QuestionID: "q1"}}})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("no answer matches a question", func(t *testing.T) {
		f := newSubmissionFixture()
		_, err := f.svc.SubmitRound(context.Background(), 1, "screen", "u", dto.SubmitRoundDTO{Answers: []dto.AnswerDTO{{QuestionID: "zzz"}}})
		assert.ErrorIs(t, err, ErrInvalidInput)
		f.submissionRepo.AssertNotCalled(t, "CreateNextAttempt", mock.Anything, mock.Anything)
	})
}

func TestGetUserSubmissions(t *testing.T) {
	f := newSubmissionFixture()
	f.submissionRepo.On("FindAllByTemplateAndUser", mock.Anything, uint(1), "user-1").Return([]model.RoundSubmission{
		{ID: 2, InterviewTemplateID: 1, RoundSlug: "screen", UserID: "user-1", Attempt: 2, Score: 50, Status: model.StatusCompleted},
		{ID: 1, InterviewTemplateID: 1, RoundSlug: "screen", UserID: "user-1", Attempt: 1, Score: 25, Status: model.StatusCompletedWithErrors},
	}, nil)

	subs, err := f.svc.GetUserSubmissions(context.Background(), 1, "user-1")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, 2, subs[0].Attempt)
	assert.Equal(t, model.StatusCompletedWithErrors, subs[1].Status)
}
