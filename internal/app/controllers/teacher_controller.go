package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/services"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
)

// TeacherController handles teacher profiles and dashboard stats
type TeacherController struct {
	teacherService *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// ListTeachers returns all teacher profiles
// @Summary List teachers
// @Description Returns every teacher profile, available to anyone
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.ListTeachers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teachers,
		Timestamp: time.Now(),
	})
}

// GetTeacher returns one teacher profile
// @Summary Get teacher by ID
// @Description Returns one teacher profile
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Teacher profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	teacher, err := c.teacherService.GetTeacher(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// UpsertProfile creates or replaces the authenticated teacher's profile
// @Summary Upsert own teacher profile
// @Description Creates the teacher's profile or replaces it if one exists
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertTeacherRequest true "Profile information"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Profile saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid profile data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Teacher role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/profile [put]
func (c *TeacherController) UpsertProfile(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpsertTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher, err := c.teacherService.UpsertProfile(ctx, teacherID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Message:   "Profile saved",
		Timestamp: time.Now(),
	})
}

// GetStats returns the authenticated teacher's dashboard aggregates
// @Summary Get own dashboard stats
// @Description Returns course, student and revenue totals with the teacher/platform/tax revenue split applied
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.TeacherStats} "Stats retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Teacher role required"
// @Failure 404 {object} dto.ErrorResponse "Teacher profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/stats [get]
func (c *TeacherController) GetStats(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	stats, err := c.teacherService.GetStats(ctx, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}
