package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/services"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
)

// WebhookController receives identity-provider events
type WebhookController struct {
	userService *services.UserService
}

// NewWebhookController creates a new WebhookController
func NewWebhookController(userService *services.UserService) *WebhookController {
	return &WebhookController{
		userService: userService,
	}
}

// HandleIdentityEvent applies a provider webhook event
// @Summary Identity provider webhook
// @Description Receives user.created, user.updated and user.deleted events and mirrors them into the local users table. Events are idempotent, so provider retries are safe.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Signature header string true "Hex HMAC-SHA256 of the request body, keyed with the shared webhook secret"
// @Param request body dto.IdentityEvent true "Provider event"
// @Success 200 {object} dto.APIResponse "Event processed"
// @Failure 400 {object} dto.ErrorResponse "Malformed event"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid webhook signature"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /webhooks/identity [post]
func (c *WebhookController) HandleIdentityEvent(ctx *gin.Context) {
	var event dto.IdentityEvent
	if err := ctx.ShouldBindJSON(&event); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Malformed event payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.HandleIdentityEvent(ctx, &event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Event processed",
		Timestamp: time.Now(),
	})
}
