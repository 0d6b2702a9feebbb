package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/services"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
)

// CartController handles the student's cart
type CartController struct {
	cartService *services.CartService
}

// NewCartController creates a new CartController
func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// ToggleCourse flips a course's membership in the cart
// @Summary Toggle a course in the cart
// @Description Adds the course to the student's cart, or removes it if already present. The response reports the resulting state.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ToggleCartRequest true "Course to toggle"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleCartResponse} "Cart updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cart/toggle [post]
func (c *CartController) ToggleCourse(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.ToggleCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid cart request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.cartService.ToggleCourse(ctx, studentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetCart returns the student's cart
// @Summary Get the cart
// @Description Returns the cart resolved against live course data, with the current total
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CartResponse} "Cart retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cart [get]
func (c *CartController) GetCart(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	cart, err := c.cartService.GetCart(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      cart,
		Timestamp: time.Now(),
	})
}
