package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/services"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// ListCourses returns the public catalog
// @Summary List approved courses
// @Description Returns every approved course, available to anyone
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCourse returns one approved course
// @Summary Get course by ID
// @Description Returns one approved course for public display
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// CreateCourse registers a new course for the authenticated teacher
// @Summary Create a course
// @Description Creates a new course owned by the authenticated teacher. The course awaits admin approval before appearing in the catalog.
// @Tags teacher-courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Teacher role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, teacherID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Message:   "Course created, awaiting approval",
		Timestamp: time.Now(),
	})
}

// ListOwnCourses returns the authenticated teacher's courses
// @Summary List own courses
// @Description Returns the teacher's courses, optionally filtered by approval state
// @Tags teacher-courses
// @Produce json
// @Security BearerAuth
// @Param filter query string false "Approval filter" Enums(all, pending, approved)
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/courses [get]
func (c *CourseController) ListOwnCourses(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	filter := dto.TeacherCourseFilter(ctx.Query("filter"))

	courses, err := c.courseService.ListTeacherCourses(ctx, teacherID, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// ListCourseEnrollments returns who enrolled in one of the teacher's courses
// @Summary List course enrollments
// @Description Returns the enrollment records of the teacher's own course, oldest first
// @Tags teacher-courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Course not found or not owned by the teacher"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/courses/{id}/enrollments [get]
func (c *CourseController) ListCourseEnrollments(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	enrollments, err := c.courseService.ListCourseEnrollments(ctx, id, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollments,
		Timestamp: time.Now(),
	})
}

// UpdateCourse applies the owner's edits to a course
// @Summary Update own course
// @Description Updates the teacher's own course. Price cannot be changed after creation.
// @Tags teacher-courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, teacherID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}
