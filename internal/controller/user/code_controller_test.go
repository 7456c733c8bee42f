package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockJudge struct{ mock.Mock }

func (m *mockJudge) Enabled() bool { return true }

func (m *mockJudge) Execute(ctx context.Context, req dto.ExecuteCodeDTO) (*dto.ExecutionResultDTO, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.ExecutionResultDTO)
	return res, args.Error(1)
}

func TestExecuteCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	judge := new(mockJudge)
	router := gin.New()
	NewCodeController(judge).RegisterRoutes(router.Group("/api/v1"))
	f := &interviewFixture{router: router}

	judge.On("Execute", mock.Anything, mock.MatchedBy(func(r dto.ExecuteCodeDTO) bool { return r.Language == "python" })).
		Return(&dto.ExecutionResultDTO{Stdout: "3\n", StatusID: 3, Status: "Accepted"}, nil)
	judge.On("Execute", mock.Anything, mock.MatchedBy(func(r dto.ExecuteCodeDTO) bool { return r.Language == "go" })).
		Return(nil, service.ErrJudgeTimeout)
	judge.On("Execute", mock.Anything, mock.MatchedBy(func(r dto.ExecuteCodeDTO) bool { return r.Language == "cobol" })).
		Return(nil, service.ErrInvalidInput)

	w := f.do(http.MethodPost, "/api/v1/code/execute", "", map[string]string{"source_code": "print(1+2)", "language": "python"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stdout":"3\n"`)

	w = f.do(http.MethodPost, "/api/v1/code/execute", "", map[string]string{"source_code": "x", "language": "go"})
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)

	w = f.do(http.MethodPost, "/api/v1/code/execute", "", map[string]string{"source_code": "x", "language": "cobol"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/api/v1/code/execute", "", map[string]string{"language": "python"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
