package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockround/internal/controller"
	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewTemplateService service.InterviewTemplateService
	roundSubmissionService   service.RoundSubmissionService
	feedbackService          service.FeedbackService
}

func NewInterviewController(
	its service.InterviewTemplateService,
	rss service.RoundSubmissionService,
	fs service.FeedbackService,
) *InterviewController {
	return &InterviewController{
		interviewTemplateService: its,
		roundSubmissionService:   rss,
		feedbackService:          fs,
	}
}

func (c *InterviewController) RegisterRoutes(api *gin.RouterGroup) {
	interviews := api.Group("/interviews")
	interviews.GET("", c.ListInterviews)
	interviews.GET("/:id", c.GetInterview)

	mine := interviews.Group("", controller.RequireUser())
	mine.POST("/:id/rounds/:slug/submissions", c.SubmitRound)
	mine.GET("/:id/rounds/:slug/feedback", c.GetRoundFeedback)
	mine.GET("/:id/feedback", c.GetCumulativeFeedback)
	mine.GET("/:id/submissions", c.GetMySubmissions)
}

// ListInterviews godoc
// @Summary (User) List available interviews
// @Tags User - Interviews
// @Produce json
// @Success 200 {array} dto.InterviewTemplateSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [get]
func (c *InterviewController) ListInterviews(ctx *gin.Context) {
	interviews, err := c.interviewTemplateService.ListInterviewTemplates(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve interviews", err)
		return
	}
	ctx.JSON(http.StatusOK, interviews)
}

// GetInterview godoc
// @Summary (User) Get an interview with its rounds
// @Description Questions are normalized; correct answers and expected outputs are hidden.
// @Tags User - Interviews
// @Produce json
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.InterviewTemplateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{id} [get]
func (c *InterviewController) GetInterview(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	interview, err := c.interviewTemplateService.GetCandidateInterview(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve interview", err)
		return
	}
	ctx.JSON(http.StatusOK, interview)
}

// SubmitRound godoc
// @Summary (User) Submit answers for a round
// @Description Scores the answers, runs code answers against their test cases, stores the attempt and returns LLM feedback. When feedback generation fails the attempt is stored with status completed_with_errors.
// @Tags User - Interviews
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param id path int true "Interview ID"
// @Param slug path string true "Round slug"
// @Param submission body dto.SubmitRoundDTO true "Answers"
// @Success 201 {object} dto.RoundSubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 401 {object} dto.ErrorResponse "Missing user identity"
// @Failure 404 {object} dto.ErrorResponse "Interview or round not found"
// @Router /interviews/{id}/rounds/{slug}/submissions [post]
func (c *InterviewController) SubmitRound(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.SubmitRoundDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	userID := controller.UserID(ctx)
	slug := ctx.Param("slug")
	log.Info().Uint("interviewID", id).Str("round", slug).Str("userID", userID).Int("answers", len(req.Answers)).Msg("Round submission received")

	result, err := c.roundSubmissionService.SubmitRound(ctx.Request.Context(), id, slug, userID, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to submit round", err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetRoundFeedback godoc
// @Summary (User) Get feedback for a round
// @Description Returns the latest attempt's feedback and the history of all attempts, newest first.
// @Tags User - Interviews
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param id path int true "Interview ID"
// @Param slug path string true "Round slug"
// @Success 200 {object} dto.RoundFeedbackHistoryDTO
// @Failure 401 {object} dto.ErrorResponse "Missing user identity"
// @Failure 404 {object} dto.ErrorResponse "Round not found"
// @Router /interviews/{id}/rounds/{slug}/feedback [get]
func (c *InterviewController) GetRoundFeedback(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	history, err := c.feedbackService.GetRoundFeedback(ctx.Request.Context(), id, ctx.Param("slug"), controller.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve round feedback", err)
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// GetCumulativeFeedback godoc
// @Summary (User) Get cumulative feedback for an interview
// @Description Aggregates the latest attempt of every completed round. Recomputed on each request.
// @Tags User - Interviews
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.CumulativeFeedbackDTO
// @Failure 401 {object} dto.ErrorResponse "Missing user identity"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{id}/feedback [get]
func (c *InterviewController) GetCumulativeFeedback(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	feedback, err := c.feedbackService.GetCumulativeFeedback(ctx.Request.Context(), id, controller.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve cumulative feedback", err)
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// GetMySubmissions godoc
// @Summary (User) List my submissions for an interview
// @Tags User - Interviews
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param id path int true "Interview ID"
// @Success 200 {array} dto.RoundSubmissionSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Missing user identity"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{id}/submissions [get]
func (c *InterviewController) GetMySubmissions(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	subs, err := c.roundSubmissionService.GetUserSubmissions(ctx.Request.Context(), id, controller.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve submissions", err)
		return
	}
	ctx.JSON(http.StatusOK, subs)
}
