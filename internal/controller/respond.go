// Package controller holds helpers shared by the admin and user handler
// packages, chiefly the mapping from service errors to HTTP responses.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RespondError translates a service error into a status code and a machine
// readable error code. Unrecognized errors become a 500 without leaking the
// underlying message.
func RespondError(ctx *gin.Context, err error) {
	var contentErr *service.ContentError
	switch {
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found", Code: dto.ErrCodeGeneric})
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden", Code: dto.ErrCodeGeneric})
	case errors.Is(err, service.ErrAlreadyAttempted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeAlreadyAttempted})
	case errors.Is(err, service.ErrSessionNotActive):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
	case errors.Is(err, service.ErrWindowNotOpen):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeWindowNotOpen})
	case errors.Is(err, service.ErrWindowClosed), errors.Is(err, service.ErrExamNotFinished):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeWindowClosed})
	case errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrSiteCodeUnknown),
		errors.Is(err, service.ErrNoQuestions),
		errors.Is(err, service.ErrPostIncomplete),
		errors.Is(err, service.ErrInvalidOption),
		errors.Is(err, service.ErrHintUnavailable):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
	case errors.As(err, &contentErr):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ContentErrorResponse{
			Errors:    contentErr.Rows,
			Truncated: contentErr.Truncated,
		})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error", Code: dto.ErrCodeGeneric})
	}
}

// ParseID reads a numeric path parameter. A false return means the response
// has already been written.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name, Code: dto.ErrCodeGeneric})
		return 0, false
	}
	return uint(v), true
}
