package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
)

// currentUserID returns the authenticated user's id from the request context.
// It aborts with 401 when the auth middleware did not run.
func currentUserID(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return "", false
	}

	id, ok := value.(string)
	if !ok || id == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return "", false
	}

	return id, true
}

// currentUserEmail returns the authenticated user's email, which may be empty
func currentUserEmail(ctx *gin.Context) string {
	if value, exists := ctx.Get("email"); exists {
		if email, ok := value.(string); ok {
			return email
		}
	}
	return ""
}

// pathID parses a numeric id from the named path parameter
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
