package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/services"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
)

// PurchaseController handles cart settlement and content access
type PurchaseController struct {
	settlementService *services.SettlementService
	accessService     *services.AccessService
}

// NewPurchaseController creates a new PurchaseController
func NewPurchaseController(settlementService *services.SettlementService, accessService *services.AccessService) *PurchaseController {
	return &PurchaseController{
		settlementService: settlementService,
		accessService:     accessService,
	}
}

// SettleCart purchases everything in the student's cart
// @Summary Settle the cart
// @Description Purchases every course in the cart the student does not already own. The settlement is all-or-nothing: if any course has no free slots, nothing is purchased and the error names every such course.
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SettlementResponse} "Cart settled successfully"
// @Failure 400 {object} dto.ErrorResponse "Cart is empty"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "Some courses have no available slots"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /purchases/settle [post]
func (c *PurchaseController) SettleCart(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	result, err := c.settlementService.SettleCart(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Message:   "Cart settled",
		Timestamp: time.Now(),
	})
}

// ListPurchased returns the student's purchased courses
// @Summary List purchased courses
// @Description Returns every course the student has bought, newest first
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Purchased courses retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /purchases [get]
func (c *PurchaseController) ListPurchased(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	courses, err := c.accessService.ListPurchased(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// CheckAccess reports whether the student may view course content
// @Summary Check course access
// @Description Reports whether the student has purchased the course. Unknown courses report no access.
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.AccessResponse} "Access state retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /purchases/{id}/access [get]
func (c *PurchaseController) CheckAccess(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	access, err := c.accessService.CheckAccess(ctx, studentID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      access,
		Timestamp: time.Now(),
	})
}
