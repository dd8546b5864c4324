package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-backend/internal/config"
	"github.com/mentorhub/mentorhub-backend/internal/handler"
	"github.com/mentorhub/mentorhub-backend/internal/middleware"
	"github.com/mentorhub/mentorhub-backend/internal/response"
	"github.com/mentorhub/mentorhub-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Teacher  *handler.TeacherHandler
	Student  *handler.StudentHandler
	Group    *handler.GroupHandler
	Solution *handler.SolutionHandler
	Comment  *handler.CommentHandler
	Avatar   *handler.AvatarHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Serve uploaded avatars statically.
	router.Static("/uploads", cfg.UploadDir)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for credential routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/teacher/login", handlers.Auth.TeacherLogin)
		auth.POST("/student/login", handlers.Auth.StudentLogin)

		auth.POST("/teacher/forgot-password", handlers.Auth.TeacherForgotPassword)
		auth.POST("/student/forgot-password", handlers.Auth.StudentForgotPassword)
		auth.POST("/teacher/reset-password", handlers.Auth.TeacherResetPassword)
		auth.POST("/student/reset-password", handlers.Auth.StudentResetPassword)

		// Authenticated profile routes
		auth.GET("/teacher/me", middleware.RequireTeacherJWT(authService), handlers.Auth.GetTeacherProfile)
		auth.GET("/student/me",
			middleware.RequireStudentJWT(authService),
			middleware.CheckSingleDeviceSession(authService),
			handlers.Auth.GetStudentProfile,
		)
		auth.POST("/student/logout", middleware.RequireStudentJWT(authService), handlers.Auth.StudentLogout)
	}

	// ─── 2. Public Registration (Rate Limited) ─────────────────────────
	public := router.Group("/api/v1")
	public.Use(authLimiter.Middleware())
	{
		// Self-registration via group join token.
		public.POST("/students", handlers.Student.Register)
	}

	// ─── 3. Teacher Group (Teacher JWT) ────────────────────────────────
	teacherAPI := router.Group("/api/v1")
	teacherAPI.Use(middleware.RequireTeacherJWT(authService))
	{
		// Teacher accounts
		teacherAPI.GET("/teachers", handlers.Teacher.List)
		teacherAPI.GET("/teachers/:id", handlers.Teacher.Get)
		teacherAPI.POST("/teachers", middleware.RequireAdmin(), handlers.Teacher.Create)
		teacherAPI.PATCH("/teachers/:id", handlers.Teacher.Update)
		teacherAPI.PUT("/teachers/password", handlers.Teacher.UpdatePassword)
		teacherAPI.PUT("/teachers/:id/password", middleware.RequireAdmin(), handlers.Teacher.AdminSetPassword)
		teacherAPI.DELETE("/teachers/:id", middleware.RequireAdmin(), handlers.Teacher.Delete)

		// Groups
		teacherAPI.GET("/groups", handlers.Group.List)
		teacherAPI.GET("/groups/:id", handlers.Group.Get)
		teacherAPI.GET("/groups/:id/students", handlers.Group.Members)
		teacherAPI.POST("/groups", handlers.Group.Create)
		teacherAPI.PATCH("/groups/:id", handlers.Group.Update)
		teacherAPI.DELETE("/groups/:id", handlers.Group.Delete)

		// Solutions and comments, teacher side
		teacherAPI.GET("/solutions/:id", handlers.Solution.Get)
		teacherAPI.GET("/solutions/:id/comments", handlers.Comment.ListBySolution)
		teacherAPI.POST("/comments", handlers.Comment.Create)

		// Avatar upload
		teacherAPI.POST("/avatars", handlers.Avatar.Upload)
	}

	// ─── 4. Student Group (Student JWT + Single Device) ────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(
		middleware.RequireStudentJWT(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		studentAPI.GET("/students/:id", handlers.Student.Get)
		studentAPI.PATCH("/students/:id", handlers.Student.Update)
		studentAPI.PUT("/students/password", handlers.Student.UpdatePassword)
		studentAPI.DELETE("/students/:id", handlers.Student.Delete)
		studentAPI.GET("/group/members", handlers.Student.ListGroupMembers)

		studentAPI.POST("/solutions", handlers.Solution.Create)
		studentAPI.GET("/solutions", handlers.Solution.ListMine)
		studentAPI.GET("/solutions/:id", handlers.Solution.Get)
		studentAPI.GET("/solutions/:id/comments", handlers.Comment.ListBySolution)
		studentAPI.POST("/comments", handlers.Comment.Create)

		studentAPI.POST("/avatars", handlers.Avatar.Upload)
	}

	return router
}
