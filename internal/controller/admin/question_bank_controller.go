package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockround/internal/controller"
	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionBankController struct {
	questionBankService service.QuestionBankService
}

func NewQuestionBankController(questionBankService service.QuestionBankService) *QuestionBankController {
	return &QuestionBankController{questionBankService: questionBankService}
}

func (c *QuestionBankController) RegisterRoutes(admin *gin.RouterGroup) {
	banks := admin.Group("/question-banks")
	banks.POST("", c.CreateQuestionBank)
	banks.GET("", c.ListQuestionBanks)
	banks.GET("/:id", c.GetQuestionBank)
	banks.PUT("/:id", c.UpdateQuestionBank)
	banks.DELETE("/:id", c.DeleteQuestionBank)
	banks.POST("/:id/questions", c.AddQuestion)
	banks.POST("/:id/generate", c.GenerateQuestions)

	questions := admin.Group("/questions")
	questions.PUT("/:id", c.UpdateQuestion)
	questions.DELETE("/:id", c.DeleteQuestion)
}

// CreateQuestionBank godoc
// @Summary (Admin) Create a question bank
// @Description Creates a bank, optionally with an initial list of questions. Every question is validated for its type.
// @Tags Admin - Question Banks
// @Accept json
// @Produce json
// @Param bank body dto.QuestionBankCreateDTO true "Question bank"
// @Success 201 {object} dto.QuestionBankResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "A bank with this name exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/question-banks [post]
func (c *QuestionBankController) CreateQuestionBank(ctx *gin.Context) {
	var req dto.QuestionBankCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.questionBankService.CreateQuestionBank(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to create question bank", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListQuestionBanks godoc
// @Summary (Admin) List question banks
// @Tags Admin - Question Banks
// @Produce json
// @Success 200 {array} dto.QuestionBankSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/question-banks [get]
func (c *QuestionBankController) ListQuestionBanks(ctx *gin.Context) {
	banks, err := c.questionBankService.ListQuestionBanks(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve question banks", err)
		return
	}
	ctx.JSON(http.StatusOK, banks)
}

// GetQuestionBank godoc
// @Summary (Admin) Get a question bank with its questions
// @Tags Admin - Question Banks
// @Produce json
// @Param id path int true "Question bank ID"
// @Success 200 {object} dto.QuestionBankResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question bank not found"
// @Router /admin/question-banks/{id} [get]
func (c *QuestionBankController) GetQuestionBank(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	bank, err := c.questionBankService.GetQuestionBank(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve question bank", err)
		return
	}
	ctx.JSON(http.StatusOK, bank)
}

// UpdateQuestionBank godoc
// @Summary (Admin) Update question bank metadata
// @Tags Admin - Question Banks
// @Accept json
// @Produce json
// @Param id path int true "Question bank ID"
// @Param bank body dto.QuestionBankUpdateDTO true "Bank metadata"
// @Success 200 {object} dto.QuestionBankResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Question bank not found"
// @Router /admin/question-banks/{id} [put]
func (c *QuestionBankController) UpdateQuestionBank(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionBankUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	bank, err := c.questionBankService.UpdateQuestionBank(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to update question bank", err)
		return
	}
	ctx.JSON(http.StatusOK, bank)
}

// DeleteQuestionBank godoc
// @Summary (Admin) Delete a question bank and its questions
// @Tags Admin - Question Banks
// @Produce json
// @Param id path int true "Question bank ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Question bank not found"
// @Router /admin/question-banks/{id} [delete]
func (c *QuestionBankController) DeleteQuestionBank(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionBankService.DeleteQuestionBank(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "Failed to delete question bank", err)
		return
	}
	log.Info().Uint("bankID", id).Msg("Question bank deleted")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Question bank deleted"})
}

// AddQuestion godoc
// @Summary (Admin) Add a question to a bank
// @Tags Admin - Question Banks
// @Accept json
// @Produce json
// @Param id path int true "Question bank ID"
// @Param question body dto.QuestionCreateDTO true "Question"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question"
// @Failure 404 {object} dto.ErrorResponse "Question bank not found"
// @Router /admin/question-banks/{id}/questions [post]
func (c *QuestionBankController) AddQuestion(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	question, err := c.questionBankService.AddQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to add question", err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// GenerateQuestions godoc
// @Summary (Admin) Generate questions with the LLM
// @Description Renders a question_generation prompt template, asks Gemini for questions and stores the valid ones. Invalid items are reported in skipped.
// @Tags Admin - Question Banks
// @Accept json
// @Produce json
// @Param id path int true "Question bank ID"
// @Param request body dto.GenerateQuestionsDTO true "Generation parameters"
// @Success 201 {object} dto.GenerateQuestionsResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Bank or prompt template not found"
// @Failure 502 {object} dto.ErrorResponse "LLM unavailable"
// @Router /admin/question-banks/{id}/generate [post]
func (c *QuestionBankController) GenerateQuestions(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.GenerateQuestionsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.questionBankService.GenerateQuestions(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to generate questions", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateQuestion godoc
// @Summary (Admin) Replace a question
// @Tags Admin - Question Banks
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "Question"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [put]
func (c *QuestionBankController) UpdateQuestion(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	question, err := c.questionBankService.UpdateQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to update question", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Question Banks
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (c *QuestionBankController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionBankService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "Failed to delete question", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Question deleted"})
}
