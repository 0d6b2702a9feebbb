package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/controllers"
	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	adminController *controllers.AdminController,
	cartController *controllers.CartController,
	purchaseController *controllers.PurchaseController,
	userController *controllers.UserController,
	webhookController *controllers.WebhookController,
	teacherController *controllers.TeacherController,
	testimonialController *controllers.TestimonialController,
	roadmapController *controllers.RoadmapController,
	authMiddleware *middleware.AuthMiddleware,
	webhookSignature gin.HandlerFunc,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", teacherController.ListTeachers)
		teachers.GET("/:id", teacherController.GetTeacher)
	}

	v1.GET("/testimonials", testimonialController.ListTestimonials)

	// Identity provider webhook. Authenticated by an HMAC signature over the
	// request body, not by a user token.
	v1.POST("/webhooks/identity", webhookSignature, webhookController.HandleIdentityEvent)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/users/me", userController.GetMe)
		authenticated.POST("/testimonials", testimonialController.AddTestimonial)

		// Cart and purchases (any authenticated user acts as a student)
		cart := authenticated.Group("/cart")
		{
			cart.GET("", cartController.GetCart)
			cart.POST("/toggle", cartController.ToggleCourse)
		}

		purchases := authenticated.Group("/purchases")
		{
			purchases.GET("", purchaseController.ListPurchased)
			purchases.POST("/settle", purchaseController.SettleCart)
			purchases.GET("/:id/access", purchaseController.CheckAccess)
		}

		// Roadmap history
		roadmaps := authenticated.Group("/roadmaps")
		{
			roadmaps.POST("", roadmapController.GenerateRoadmap)
			roadmaps.GET("", roadmapController.ListRoadmaps)
			roadmaps.DELETE("", roadmapController.DeleteAllRoadmaps)
			roadmaps.DELETE("/:id", roadmapController.DeleteRoadmap)
		}

		// Teacher-only routes
		teacherProtected := authenticated.Group("/teacher")
		teacherProtected.Use(authMiddleware.RoleRequired(string(models.RoleTeacher)))
		{
			teacherProtected.POST("/courses", courseController.CreateCourse)
			teacherProtected.GET("/courses", courseController.ListOwnCourses)
			teacherProtected.GET("/courses/:id/enrollments", courseController.ListCourseEnrollments)
			teacherProtected.PUT("/courses/:id", courseController.UpdateCourse)
			teacherProtected.PUT("/profile", teacherController.UpsertProfile)
			teacherProtected.GET("/stats", teacherController.GetStats)
		}

		// Admin-only routes
		adminProtected := authenticated.Group("/admin")
		adminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			adminProtected.GET("/courses/pending", adminController.ListPendingCourses)
			adminProtected.PATCH("/courses/:id/approve", adminController.ApproveCourse)
			adminProtected.DELETE("/courses/:id", adminController.DeleteCourse)
		}
	}
}
