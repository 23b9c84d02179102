package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/logger"
)

// HandleAPIError maps err onto the standard error envelope. Unrecognized errors
// are logged and answered with 500 and fallback, never with the error text.
func HandleAPIError(c *gin.Context, err error, fallback string) {
	status, detail := classifyError(err)

	if status == http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg(fallback)
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, fallback).WithSeverity(dto.ErrorSeverityCritical)
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeForbidden, apperrors.UserMessage(err, "Permission denied"))

	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.UserMessage(err, "Validation failed")).
			WithSeverity(dto.ErrorSeverityWarning)
		var custom *apperrors.CustomError
		if errors.As(err, &custom) {
			if custom.Field != "" {
				detail = detail.WithField(custom.Field)
			}
			if custom.Details != nil {
				detail = detail.WithDetails(custom.Details)
			}
		}
		return http.StatusBadRequest, detail

	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrInvalidQuizID, apperrors.ErrInvalidClassID):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, apperrors.UserMessage(err, "Bad request")).
				WithSeverity(dto.ErrorSeverityWarning)

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, apperrors.UserMessage(err, "Email already exists.")).
				WithField("email").
				WithSeverity(dto.ErrorSeverityWarning)

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound, apperrors.ErrStudentNotFound,
		apperrors.ErrClassNotFound, apperrors.ErrQuizNotFound):
		return http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.UserMessage(err, "Resource not found"))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized: Please log in")

	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")

	default:
		return http.StatusInternalServerError, nil
	}
}

// Recovery turns panics into a logged 500 with the standard envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")

		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	})
}
