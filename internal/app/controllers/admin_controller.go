package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/services"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
)

// AdminController handles the course review queue
type AdminController struct {
	courseService *services.CourseService
}

// NewAdminController creates a new AdminController
func NewAdminController(courseService *services.CourseService) *AdminController {
	return &AdminController{
		courseService: courseService,
	}
}

// ListPendingCourses returns courses awaiting approval
// @Summary List pending courses
// @Description Returns every unapproved course together with its teacher's name
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Pending courses retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/pending [get]
func (c *AdminController) ListPendingCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListPendingCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// ApproveCourse publishes a course to the catalog
// @Summary Approve a course
// @Description Marks a course as approved so it appears in the public catalog. Approving twice keeps the original approval time.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course approved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{id}/approve [patch]
func (c *AdminController) ApproveCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.ApproveCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Message:   "Course approved",
		Timestamp: time.Now(),
	})
}

// DeleteCourse removes a course entirely
// @Summary Delete a course
// @Description Deletes a course and its enrollments. Cart references drop out of student carts on their next read.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{id} [delete]
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Course deleted",
		Timestamp: time.Now(),
	})
}
