package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockround/internal/controller"
	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/service"
)

type PromptTemplateController struct {
	promptTemplateService service.PromptTemplateService
}

func NewPromptTemplateController(promptTemplateService service.PromptTemplateService) *PromptTemplateController {
	return &PromptTemplateController{promptTemplateService: promptTemplateService}
}

func (c *PromptTemplateController) RegisterRoutes(admin *gin.RouterGroup) {
	prompts := admin.Group("/prompt-templates")
	prompts.POST("", c.CreatePromptTemplate)
	prompts.GET("", c.ListPromptTemplates)
	prompts.GET("/:id", c.GetPromptTemplate)
	prompts.PUT("/:id", c.UpdatePromptTemplate)
	prompts.DELETE("/:id", c.DeletePromptTemplate)
	prompts.POST("/:id/preview", c.PreviewPromptTemplate)
}

// CreatePromptTemplate godoc
// @Summary (Admin) Create a prompt template
// @Description The body is a Go text/template. Bodies that do not parse are rejected.
// @Tags Admin - Prompt Templates
// @Accept json
// @Produce json
// @Param template body dto.PromptTemplateCreateDTO true "Prompt template"
// @Success 201 {object} dto.PromptTemplateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or template syntax"
// @Failure 409 {object} dto.ErrorResponse "A template with this name exists"
// @Router /admin/prompt-templates [post]
func (c *PromptTemplateController) CreatePromptTemplate(ctx *gin.Context) {
	var req dto.PromptTemplateCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.promptTemplateService.CreatePromptTemplate(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to create prompt template", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListPromptTemplates godoc
// @Summary (Admin) List prompt templates
// @Tags Admin - Prompt Templates
// @Produce json
// @Param purpose query string false "Filter by purpose (question_generation, round_feedback)"
// @Success 200 {array} dto.PromptTemplateResponseDTO
// @Router /admin/prompt-templates [get]
func (c *PromptTemplateController) ListPromptTemplates(ctx *gin.Context) {
	tmpls, err := c.promptTemplateService.ListPromptTemplates(ctx.Request.Context(), ctx.Query("purpose"))
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve prompt templates", err)
		return
	}
	ctx.JSON(http.StatusOK, tmpls)
}

// GetPromptTemplate godoc
// @Summary (Admin) Get a prompt template
// @Tags Admin - Prompt Templates
// @Produce json
// @Param id path int true "Prompt template ID"
// @Success 200 {object} dto.PromptTemplateResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Prompt template not found"
// @Router /admin/prompt-templates/{id} [get]
func (c *PromptTemplateController) GetPromptTemplate(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	tmpl, err := c.promptTemplateService.GetPromptTemplate(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve prompt template", err)
		return
	}
	ctx.JSON(http.StatusOK, tmpl)
}

// UpdatePromptTemplate godoc
// @Summary (Admin) Update a prompt template
// @Tags Admin - Prompt Templates
// @Accept json
// @Produce json
// @Param id path int true "Prompt template ID"
// @Param template body dto.PromptTemplateCreateDTO true "Prompt template"
// @Success 200 {object} dto.PromptTemplateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or template syntax"
// @Failure 404 {object} dto.ErrorResponse "Prompt template not found"
// @Router /admin/prompt-templates/{id} [put]
func (c *PromptTemplateController) UpdatePromptTemplate(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.PromptTemplateCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	tmpl, err := c.promptTemplateService.UpdatePromptTemplate(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to update prompt template", err)
		return
	}
	ctx.JSON(http.StatusOK, tmpl)
}

// DeletePromptTemplate godoc
// @Summary (Admin) Delete a prompt template
// @Tags Admin - Prompt Templates
// @Produce json
// @Param id path int true "Prompt template ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Prompt template not found"
// @Router /admin/prompt-templates/{id} [delete]
func (c *PromptTemplateController) DeletePromptTemplate(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.promptTemplateService.DeletePromptTemplate(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "Failed to delete prompt template", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Prompt template deleted"})
}

// PreviewPromptTemplate godoc
// @Summary (Admin) Render a prompt template with sample variables
// @Tags Admin - Prompt Templates
// @Accept json
// @Produce json
// @Param id path int true "Prompt template ID"
// @Param variables body dto.PromptPreviewDTO true "Template variables"
// @Success 200 {object} dto.PromptPreviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Template failed to render"
// @Failure 404 {object} dto.ErrorResponse "Prompt template not found"
// @Router /admin/prompt-templates/{id}/preview [post]
func (c *PromptTemplateController) PreviewPromptTemplate(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.PromptPreviewDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.promptTemplateService.PreviewPromptTemplate(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to render prompt template", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
