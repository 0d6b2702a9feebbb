package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call it
// for every error that escapes the service layer.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondError(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found"))
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		respondError(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Teacher profile not found"))
	case errors.Is(err, apperrors.ErrRoadmapNotFound):
		respondError(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Roadmap not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, 403, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, 401, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, 401, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))
	case errors.Is(err, apperrors.ErrEmptyCart):
		respondError(c, 400, dto.NewErrorDetail(dto.ErrorCodeEmptyCart, "Cart is empty"))
	case errors.Is(err, apperrors.ErrSlotsExhausted):
		detail := dto.NewErrorDetail(dto.ErrorCodeSlotsExhausted, "Some courses have no available slots")
		if details := apperrors.DetailsOf(err); details != nil {
			detail = detail.WithDetails(details)
		}
		respondError(c, 409, detail)
	case errors.Is(err, apperrors.ErrPriceLocked):
		respondError(c, 400, dto.NewErrorDetail(dto.ErrorCodePriceLocked, "Course price cannot be changed after creation"))
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, validationMessage(err))
		if details := apperrors.DetailsOf(err); details != nil {
			detail = detail.WithDetails(details)
		}
		respondError(c, 400, detail)
	case errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, 400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Bad request"))
	case errors.Is(err, apperrors.ErrRoadmapGeneration):
		respondError(c, 502, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Roadmap generation failed"))
	default:
		respondError(c, 500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respondError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// validationMessage surfaces the service's message for validation errors
// instead of a generic one
func validationMessage(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return "Validation failed"
}
