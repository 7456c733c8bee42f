package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockround/internal/controller"
	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/service"
)

type InterviewTemplateController struct {
	interviewTemplateService service.InterviewTemplateService
}

func NewInterviewTemplateController(interviewTemplateService service.InterviewTemplateService) *InterviewTemplateController {
	return &InterviewTemplateController{interviewTemplateService: interviewTemplateService}
}

func (c *InterviewTemplateController) RegisterRoutes(admin *gin.RouterGroup) {
	tmpls := admin.Group("/interview-templates")
	tmpls.POST("", c.CreateInterviewTemplate)
	tmpls.GET("", c.ListInterviewTemplates)
	tmpls.GET("/:id", c.GetInterviewTemplate)
	tmpls.PUT("/:id", c.UpdateInterviewTemplate)
	tmpls.DELETE("/:id", c.DeleteInterviewTemplate)
	tmpls.POST("/:id/rounds/:slug/import", c.ImportQuestionBank)
}

// CreateInterviewTemplate godoc
// @Summary (Admin) Create an interview template with its rounds
// @Description Round questions may be a legacy list of plain prompts or a list of structured question objects.
// @Tags Admin - Interview Templates
// @Accept json
// @Produce json
// @Param template body dto.InterviewTemplateCreateDTO true "Interview template"
// @Success 201 {object} dto.InterviewTemplateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/interview-templates [post]
func (c *InterviewTemplateController) CreateInterviewTemplate(ctx *gin.Context) {
	var req dto.InterviewTemplateCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.interviewTemplateService.CreateInterviewTemplate(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to create interview template", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListInterviewTemplates godoc
// @Summary (Admin) List interview templates
// @Tags Admin - Interview Templates
// @Produce json
// @Success 200 {array} dto.InterviewTemplateSummaryDTO
// @Router /admin/interview-templates [get]
func (c *InterviewTemplateController) ListInterviewTemplates(ctx *gin.Context) {
	tmpls, err := c.interviewTemplateService.ListInterviewTemplates(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve interview templates", err)
		return
	}
	ctx.JSON(http.StatusOK, tmpls)
}

// GetInterviewTemplate godoc
// @Summary (Admin) Get an interview template including answer keys
// @Tags Admin - Interview Templates
// @Produce json
// @Param id path int true "Interview template ID"
// @Success 200 {object} dto.InterviewTemplateResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview template not found"
// @Router /admin/interview-templates/{id} [get]
func (c *InterviewTemplateController) GetInterviewTemplate(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	tmpl, err := c.interviewTemplateService.GetInterviewTemplate(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve interview template", err)
		return
	}
	ctx.JSON(http.StatusOK, tmpl)
}

// UpdateInterviewTemplate godoc
// @Summary (Admin) Update an interview template
// @Description Replaces the template metadata and every round.
// @Tags Admin - Interview Templates
// @Accept json
// @Produce json
// @Param id path int true "Interview template ID"
// @Param template body dto.InterviewTemplateCreateDTO true "Interview template"
// @Success 200 {object} dto.InterviewTemplateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Interview template not found"
// @Router /admin/interview-templates/{id} [put]
func (c *InterviewTemplateController) UpdateInterviewTemplate(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.InterviewTemplateCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	tmpl, err := c.interviewTemplateService.UpdateInterviewTemplate(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to update interview template", err)
		return
	}
	ctx.JSON(http.StatusOK, tmpl)
}

// DeleteInterviewTemplate godoc
// @Summary (Admin) Delete an interview template
// @Tags Admin - Interview Templates
// @Produce json
// @Param id path int true "Interview template ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Interview template not found"
// @Router /admin/interview-templates/{id} [delete]
func (c *InterviewTemplateController) DeleteInterviewTemplate(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.interviewTemplateService.DeleteInterviewTemplate(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "Failed to delete interview template", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Interview template deleted"})
}

// ImportQuestionBank godoc
// @Summary (Admin) Copy a question bank into a round
// @Description Appends the bank's questions to the round as structured questions. Questions already in the round are not duplicated.
// @Tags Admin - Interview Templates
// @Accept json
// @Produce json
// @Param id path int true "Interview template ID"
// @Param slug path string true "Round slug"
// @Param request body dto.ImportQuestionBankDTO true "Bank to import"
// @Success 200 {object} dto.RoundResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Round or bank not found"
// @Router /admin/interview-templates/{id}/rounds/{slug}/import [post]
func (c *InterviewTemplateController) ImportQuestionBank(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ImportQuestionBankDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	round, err := c.interviewTemplateService.ImportQuestionBank(ctx.Request.Context(), id, ctx.Param("slug"), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to import question bank", err)
		return
	}
	ctx.JSON(http.StatusOK, round)
}
