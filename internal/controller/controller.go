// Package controller holds the HTTP helpers shared by the admin and user controllers.
package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	UserIDHeader  = "X-User-ID"
	userIDContext = "userID"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// RegisterValidators adds the custom binding tags used by the DTOs and makes
// validation errors report JSON field names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
}

// StatusFor maps service and repository errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	case errors.Is(err, service.ErrJudgeTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, service.ErrJudgeUnavailable), errors.Is(err, service.ErrLLMUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the error body for err. Server-side failures are logged
// and their details are not echoed back.
func RespondError(ctx *gin.Context, message string, err error) {
	status := StatusFor(err)
	resp := dto.ErrorResponse{Message: message}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(message)
	} else {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg(message)
		resp.Details = []string{err.Error()}
	}
	ctx.AbortWithStatusJSON(status, resp)
}

// RespondBindError reports request validation failures field by field.
func RespondBindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind request")
	ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Message: "Invalid request body",
		Details: bindErrorDetails(err),
	})
}

func bindErrorDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), strings.SplitN(fe.Namespace(), ".", 2)[0]+".")
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s failed on '%s=%s'", field, fe.Tag(), fe.Param()))
		} else {
			details = append(details, fmt.Sprintf("%s failed on '%s'", field, fe.Tag()))
		}
	}
	return details
}

// ParseID reads a numeric path parameter, writing a 400 when it is malformed.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s format", name)})
		return 0, false
	}
	return uint(id), true
}

// RequireUser resolves the caller from the X-User-ID header, falling back to
// the user_id query parameter. Requests without a user get a 401.
func RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := strings.TrimSpace(ctx.GetHeader(UserIDHeader))
		if userID == "" {
			userID = strings.TrimSpace(ctx.Query("user_id"))
		}
		if userID == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing user identity"})
			return
		}
		ctx.Set(userIDContext, userID)
		ctx.Next()
	}
}

// UserID returns the caller set by RequireUser.
func UserID(ctx *gin.Context) string {
	return ctx.GetString(userIDContext)
}

// Health pings the database.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Request.Context())
		}
		if err != nil {
			log.Error().Err(err).Msg("Health check failed")
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
