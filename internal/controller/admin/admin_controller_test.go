package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockround/internal/controller"
	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockQuestionBankService struct {
	mock.Mock
	service.QuestionBankService
}

func (m *mockQuestionBankService) CreateQuestionBank(ctx context.Context, req dto.QuestionBankCreateDTO) (*dto.QuestionBankResponseDTO, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.QuestionBankResponseDTO)
	return resp, args.Error(1)
}

func (m *mockQuestionBankService) GenerateQuestions(ctx context.Context, bankID uint, req dto.GenerateQuestionsDTO) (*dto.GenerateQuestionsResponseDTO, error) {
	args := m.Called(ctx, bankID, req)
	resp, _ := args.Get(0).(*dto.GenerateQuestionsResponseDTO)
	return resp, args.Error(1)
}

func (m *mockQuestionBankService) DeleteQuestion(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockInterviewTemplateService struct {
	mock.Mock
	service.InterviewTemplateService
}

func (m *mockInterviewTemplateService) CreateInterviewTemplate(ctx context.Context, req dto.InterviewTemplateCreateDTO) (*dto.InterviewTemplateResponseDTO, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.InterviewTemplateResponseDTO)
	return resp, args.Error(1)
}

type mockPromptTemplateService struct {
	mock.Mock
	service.PromptTemplateService
}

func (m *mockPromptTemplateService) PreviewPromptTemplate(ctx context.Context, id uint, req dto.PromptPreviewDTO) (*dto.PromptPreviewResponseDTO, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*dto.PromptPreviewResponseDTO)
	return resp, args.Error(1)
}

func newRouter(t *testing.T, register ...func(*gin.RouterGroup)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, controller.RegisterValidators())
	r := gin.New()
	admin := r.Group("/api/v1/admin")
	for _, fn := range register {
		fn(admin)
	}
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateQuestionBank(t *testing.T) {
	svc := new(mockQuestionBankService)
	r := newRouter(t, NewQuestionBankController(svc).RegisterRoutes)

	svc.On("CreateQuestionBank", mock.Anything, mock.MatchedBy(func(req dto.QuestionBankCreateDTO) bool { return req.Name == "Aptitude" })).
		Return(&dto.QuestionBankResponseDTO{ID: 1, Name: "Aptitude", Questions: []dto.QuestionResponseDTO{}}, nil)
	svc.On("CreateQuestionBank", mock.Anything, mock.MatchedBy(func(req dto.QuestionBankCreateDTO) bool { return req.Name == "Taken" })).
		Return(nil, gorm.ErrDuplicatedKey)

	w := doJSON(r, http.MethodPost, "/api/v1/admin/question-banks", map[string]interface{}{"name": "Aptitude"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/admin/question-banks", map[string]interface{}{"name": "Taken"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/admin/question-banks", map[string]interface{}{
		"name":      "Bad",
		"questions": []map[string]interface{}{{"text": "x", "type": "essay"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateQuestions(t *testing.T) {
	svc := new(mockQuestionBankService)
	r := newRouter(t, NewQuestionBankController(svc).RegisterRoutes)

	svc.On("GenerateQuestions", mock.Anything, uint(2), mock.Anything).Return(nil, service.ErrLLMUnavailable)

	w := doJSON(r, http.MethodPost, "/api/v1/admin/question-banks/2/generate", map[string]interface{}{
		"prompt_template_id": 1,
		"topic":              "sql joins",
		"type":               "mcq",
		"count":              5,
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/admin/question-banks/2/generate", map[string]interface{}{
		"prompt_template_id": 1,
		"topic":              "sql joins",
		"type":               "mcq",
		"count":              50,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteQuestion(t *testing.T) {
	svc := new(mockQuestionBankService)
	r := newRouter(t, NewQuestionBankController(svc).RegisterRoutes)
	svc.On("DeleteQuestion", mock.Anything, uint(4)).Return(nil)
	svc.On("DeleteQuestion", mock.Anything, uint(5)).Return(service.ErrNotFound)

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/api/v1/admin/questions/4", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/api/v1/admin/questions/5", nil).Code)
}

func TestCreateInterviewTemplate(t *testing.T) {
	svc := new(mockInterviewTemplateService)
	r := newRouter(t, NewInterviewTemplateController(svc).RegisterRoutes)
	svc.On("CreateInterviewTemplate", mock.Anything, mock.MatchedBy(func(req dto.InterviewTemplateCreateDTO) bool {
		return len(req.Rounds) == 1 && len(req.Rounds[0].Questions) == 2
	})).Return(&dto.InterviewTemplateResponseDTO{ID: 9}, nil)

	body := map[string]interface{}{
		"company": "Acme",
		"role":    "SRE",
		"rounds": []map[string]interface{}{{
			"slug":              "screen",
			"name":              "Screen",
			"type":              "text",
			"order_in_template": 1,
			"questions":         []interface{}{"Tell me about yourself", "Why us?"},
		}},
	}
	w := doJSON(r, http.MethodPost, "/api/v1/admin/interview-templates", body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body["rounds"].([]map[string]interface{})[0]["slug"] = "Not A Slug"
	w = doJSON(r, http.MethodPost, "/api/v1/admin/interview-templates", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNumberOfCalls(t, "CreateInterviewTemplate", 1)
}

func TestPreviewPromptTemplate(t *testing.T) {
	svc := new(mockPromptTemplateService)
	r := newRouter(t, NewPromptTemplateController(svc).RegisterRoutes)
	svc.On("PreviewPromptTemplate", mock.Anything, uint(1), mock.Anything).Return(&dto.PromptPreviewResponseDTO{Rendered: "Write 3 questions"}, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/admin/prompt-templates/1/preview", map[string]interface{}{
		"variables": map[string]interface{}{"Count": 3},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rendered": "Write 3 questions"}`, w.Body.String())
}
