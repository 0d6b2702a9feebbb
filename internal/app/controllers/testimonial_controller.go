package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/services"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
)

// TestimonialController handles learner testimonials
type TestimonialController struct {
	testimonialService *services.TestimonialService
}

// NewTestimonialController creates a new TestimonialController
func NewTestimonialController(testimonialService *services.TestimonialService) *TestimonialController {
	return &TestimonialController{
		testimonialService: testimonialService,
	}
}

// ListTestimonials returns all testimonials
// @Summary List testimonials
// @Description Returns every testimonial, newest first, available to anyone
// @Tags testimonials
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Testimonial} "Testimonials retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /testimonials [get]
func (c *TestimonialController) ListTestimonials(ctx *gin.Context) {
	testimonials, err := c.testimonialService.ListTestimonials(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      testimonials,
		Timestamp: time.Now(),
	})
}

// AddTestimonial stores a testimonial from the authenticated user
// @Summary Add a testimonial
// @Description Stores a testimonial. Role, rating and achievement fall back to learner defaults when omitted.
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddTestimonialRequest true "Testimonial"
// @Success 201 {object} dto.APIResponse{data=models.Testimonial} "Testimonial created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid testimonial data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /testimonials [post]
func (c *TestimonialController) AddTestimonial(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.AddTestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid testimonial data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	testimonial, err := c.testimonialService.AddTestimonial(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      testimonial,
		Timestamp: time.Now(),
	})
}
