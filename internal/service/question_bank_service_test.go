package service

import (
	"context"
	"testing"

	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/model"
	"github.com/lshigami/mockround/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func valuePtr(v scoring.Value) *scoring.Value { return &v }

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name    string
		q       scoring.Question
		wantErr bool
	}{
		{
			name: "valid mcq by index",
			q:    scoring.Question{Text: "?", Type: scoring.QuestionTypeMCQ, Options: []string{"a", "b"}, CorrectAnswer: valuePtr(scoring.IndexValue(1))},
		},
		{
			name: "valid mcq by option text",
			q:    scoring.Question{Text: "?", Type: scoring.QuestionTypeMCQ, Options: []string{"a", "b"}, CorrectAnswer: valuePtr(scoring.TextValue("a"))},
		},
		{
			name:    "mcq index out of range",
			q:       scoring.Question{Text: "?", Type: scoring.QuestionTypeMCQ, Options: []string{"a", "b"}, CorrectAnswer: valuePtr(scoring.IndexValue(2))},
			wantErr: true,
		},
		{
			name:    "mcq key not among options",
			q:       scoring.Question{Text: "?", Type: scoring.QuestionTypeMCQ, Options: []string{"a", "b"}, CorrectAnswer: valuePtr(scoring.TextValue("c"))},
			wantErr: true,
		},
		{
			name:    "mcq with a single option",
			q:       scoring.Question{Text: "?", Type: scoring.QuestionTypeMCQ, Options: []string{"a"}, CorrectAnswer: valuePtr(scoring.IndexValue(0))},
			wantErr: true,
		},
		{
			name:    "mcq without a key",
			q:       scoring.Question{Text: "?", Type: scoring.QuestionTypeMCQ, Options: []string{"a", "b"}},
			wantErr: true,
		},
		{
			name:    "code without test cases",
			q:       scoring.Question{Text: "?", Type: scoring.QuestionTypeCode},
			wantErr: true,
		},
		{
			name: "code with a test case",
			q:    scoring.Question{Text: "?", Type: scoring.QuestionTypeCode, TestCases: []scoring.TestCase{{Input: "1", ExpectedOutput: "1"}}},
		},
		{
			name: "text",
			q:    scoring.Question{Text: "Why?", Type: scoring.QuestionTypeText},
		},
		{
			name:    "blank text",
			q:       scoring.Question{Text: "  ", Type: scoring.QuestionTypeText},
			wantErr: true,
		},
		{
			name:    "unknown type",
			q:       scoring.Question{Text: "?", Type: "essay"},
			wantErr: true,
		},
		{
			name:    "negative points",
			q:       scoring.Question{Text: "?", Type: scoring.QuestionTypeText, Points: -1},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestion(tt.q)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuestionModelRoundTrip(t *testing.T) {
	m, err := questionToModel(scoring.Question{
		Text:          "Pick",
		Type:          scoring.QuestionTypeMCQ,
		Options:       []string{"a", "b"},
		CorrectAnswer: valuePtr(scoring.TextValue("b")),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Points)
	m.ID = 12

	q := questionToScoring(m)
	assert.Equal(t, "12", q.ID)
	require.NotNil(t, q.CorrectAnswer)
	assert.Equal(t, "b", q.CorrectAnswer.Text())
}

type bankFixture struct {
	bankRepo     *mockBankRepo
	questionRepo *mockQuestionRepo
	promptRepo   *mockPromptRepo
	llm          *mockLLM
	svc          QuestionBankService
}

func newBankFixture() *bankFixture {
	f := &bankFixture{
		bankRepo:     new(mockBankRepo),
		questionRepo: new(mockQuestionRepo),
		promptRepo:   new(mockPromptRepo),
		llm:          new(mockLLM),
	}
	f.svc = NewQuestionBankService(f.bankRepo, f.questionRepo, f.promptRepo, f.llm)
	return f
}

func TestCreateQuestionBank_RejectsInvalidQuestion(t *testing.T) {
	f := newBankFixture()

	_, err := f.svc.CreateQuestionBank(context.Background(), dto.QuestionBankCreateDTO{
		Name: "Aptitude",
		Questions: []dto.QuestionCreateDTO{
			{Text: "ok", Type: "text"},
			{Text: "bad", Type: "mcq", Options: []string{"only"}},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	f.bankRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateQuestionBank(t *testing.T) {
	f := newBankFixture()
	f.bankRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.QuestionBank")).
		Run(func(args mock.Arguments) {
			bank := args.Get(1).(*model.QuestionBank)
			bank.ID = 3
			for i := range bank.Questions {
				bank.Questions[i].ID = uint(i + 1)
				bank.Questions[i].QuestionBankID = 3
			}
		}).
		Return(nil)

	resp, err := f.svc.CreateQuestionBank(context.Background(), dto.QuestionBankCreateDTO{
		Name:      " Aptitude ",
		Questions: []dto.QuestionCreateDTO{{Text: "2+2?", Type: "mcq", Options: []string{"3", "4"}, CorrectAnswer: valuePtr(scoring.IndexValue(1))}},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), resp.ID)
	assert.Equal(t, "Aptitude", resp.Name)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, 1, resp.Questions[0].Points)
	idx, ok := resp.Questions[0].CorrectAnswer.Index()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestGenerateQuestions(t *testing.T) {
	f := newBankFixture()
	f.bankRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.QuestionBank{ID: 1, Name: "Go"}, nil)
	f.promptRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.PromptTemplate{
		ID:      7,
		Purpose: model.PromptPurposeQuestionGeneration,
		Body:    "Write {{.Count}} {{.Difficulty}} {{.Type}} questions about {{.Topic}} for {{.BankName}}.",
	}, nil)

	generated := []scoring.Question{
		{Text: "First", Options: []string{"a", "b"}, CorrectAnswer: valuePtr(scoring.IndexValue(0))},
		{Text: "Broken", Options: []string{"a"}, CorrectAnswer: valuePtr(scoring.IndexValue(0))},
		{Text: "Second", Options: []string{"a", "b"}, CorrectAnswer: valuePtr(scoring.IndexValue(1)), Points: 3},
		{Text: "Extra", Options: []string{"a", "b"}, CorrectAnswer: valuePtr(scoring.IndexValue(1))},
	}
	f.llm.On("GenerateQuestions", mock.Anything, "Write 2 easy mcq questions about channels for Go.").Return(generated, nil)
	f.questionRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(qs []model.Question) bool {
		return len(qs) == 2 && qs[0].QuestionBankID == 1 && qs[1].Text == "Second"
	})).Return(nil)

	resp, err := f.svc.GenerateQuestions(context.Background(), 1, dto.GenerateQuestionsDTO{
		PromptTemplateID: 7,
		Topic:            "channels",
		Type:             "mcq",
		Difficulty:       "easy",
		Count:            2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 2)
	assert.Equal(t, "mcq", resp.Created[0].Type)
	assert.Equal(t, "easy", resp.Created[0].Difficulty)
	assert.Equal(t, 1, resp.Created[0].Points)
	assert.Equal(t, 3, resp.Created[1].Points)
	assert.Len(t, resp.Skipped, 2)
	f.questionRepo.AssertExpectations(t)
}

func TestGenerateQuestions_WrongPromptPurpose(t *testing.T) {
	f := newBankFixture()
	f.bankRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.QuestionBank{ID: 1}, nil)
	f.promptRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.PromptTemplate{ID: 2, Purpose: model.PromptPurposeRoundFeedback}, nil)

	_, err := f.svc.GenerateQuestions(context.Background(), 1, dto.GenerateQuestionsDTO{PromptTemplateID: 2, Topic: "x", Type: "text", Count: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	f.llm.AssertNotCalled(t, "GenerateQuestions", mock.Anything, mock.Anything)
}

func TestGenerateQuestions_MissingBank(t *testing.T) {
	f := newBankFixture()
	f.bankRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, ErrNotFound)

	_, err := f.svc.GenerateQuestions(context.Background(), 9, dto.GenerateQuestionsDTO{PromptTemplateID: 1, Topic: "x", Type: "text", Count: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}
