package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/services"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
)

// RoadmapController handles AI-generated learning roadmaps
type RoadmapController struct {
	roadmapService *services.RoadmapService
}

// NewRoadmapController creates a new RoadmapController
func NewRoadmapController(roadmapService *services.RoadmapService) *RoadmapController {
	return &RoadmapController{
		roadmapService: roadmapService,
	}
}

// GenerateRoadmap creates a new roadmap for the authenticated user
// @Summary Generate a learning roadmap
// @Description Asks the model for a structured roadmap on the given topic and stores it in the user's history
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateRoadmapRequest true "Topic and optional goal"
// @Success 201 {object} dto.APIResponse{data=models.RoadmapChat} "Roadmap generated successfully"
// @Failure 400 {object} dto.ErrorResponse "Topic is required"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 502 {object} dto.ErrorResponse "Roadmap generation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roadmaps [post]
func (c *RoadmapController) GenerateRoadmap(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.GenerateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Topic is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	chat, err := c.roadmapService.GenerateRoadmap(ctx, userID, currentUserEmail(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      chat,
		Message:   "Roadmap generated",
		Timestamp: time.Now(),
	})
}

// ListRoadmaps returns the user's roadmap history
// @Summary List roadmap history
// @Description Returns the user's generated roadmaps, newest first
// @Tags roadmaps
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.RoadmapChat} "Roadmaps retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roadmaps [get]
func (c *RoadmapController) ListRoadmaps(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	chats, err := c.roadmapService.ListRoadmaps(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      chats,
		Timestamp: time.Now(),
	})
}

// DeleteRoadmap removes one roadmap from the user's history
// @Summary Delete a roadmap
// @Description Deletes one of the user's own roadmaps
// @Tags roadmaps
// @Produce json
// @Security BearerAuth
// @Param id path int true "Roadmap ID"
// @Success 200 {object} dto.APIResponse "Roadmap deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid roadmap ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Roadmap not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roadmaps/{id} [delete]
func (c *RoadmapController) DeleteRoadmap(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.roadmapService.DeleteRoadmap(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Roadmap deleted",
		Timestamp: time.Now(),
	})
}

// DeleteAllRoadmaps clears the user's roadmap history
// @Summary Delete all roadmaps
// @Description Clears the user's entire roadmap history
// @Tags roadmaps
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "History cleared successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roadmaps [delete]
func (c *RoadmapController) DeleteAllRoadmaps(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	deleted, err := c.roadmapService.DeleteAllRoadmaps(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"deleted": deleted},
		Message:   "History cleared",
		Timestamp: time.Now(),
	})
}
