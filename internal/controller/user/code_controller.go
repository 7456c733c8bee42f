package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockround/internal/controller"
	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/service"
)

type CodeController struct {
	judgeService service.JudgeService
}

func NewCodeController(judgeService service.JudgeService) *CodeController {
	return &CodeController{judgeService: judgeService}
}

func (c *CodeController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/code/execute", c.ExecuteCode)
}

// ExecuteCode godoc
// @Summary (User) Run code in the sandbox
// @Description Submits the code to Judge0 and polls until it finishes. When expected_output is given, passed reports whether it matched.
// @Tags User - Code
// @Accept json
// @Produce json
// @Param request body dto.ExecuteCodeDTO true "Code to run"
// @Success 200 {object} dto.ExecutionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unsupported language"
// @Failure 502 {object} dto.ErrorResponse "Judge unavailable"
// @Failure 504 {object} dto.ErrorResponse "Judge did not finish in time"
// @Router /code/execute [post]
func (c *CodeController) ExecuteCode(ctx *gin.Context) {
	var req dto.ExecuteCodeDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	result, err := c.judgeService.Execute(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to execute code", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
