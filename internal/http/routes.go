package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	middleware "taskhive.com/taskhive/internal/http/middlewares"
	repository "taskhive.com/taskhive/internal/repositories"
)

type RouterConfig struct {
	JWTSecret          string
	FrontendURL        string
	RateLimitPerMinute int
}

func Register(
	e *echo.Echo,
	h *Handler,
	users *repository.UserRepository,
	projects *repository.ProjectRepository,
	tasks *repository.TaskRepository,
	cfg RouterConfig,
) {
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
	}))
	e.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	authenticate := middleware.Authenticate(cfg.JWTSecret, users)
	requireProject := middleware.RequireProject(projects)
	requireManager := middleware.RequireManager()
	requireTask := middleware.RequireTask(tasks)

	authGroup := e.Group("/api/auth")
	authGroup.POST("/create-account", h.Register)
	authGroup.POST("/confirm-account", h.ConfirmAccount)
	authGroup.POST("/login", h.Login)
	authGroup.POST("/request-code", h.RequestCode)
	authGroup.POST("/forgot-password", h.ForgotPassword)
	authGroup.POST("/validate-token", h.ValidateToken)
	authGroup.POST("/update-password/:token", h.ResetPassword)
	authGroup.GET("/user", h.CurrentUser, authenticate)
	authGroup.PUT("/profile", h.UpdateProfile, authenticate)
	authGroup.POST("/update-password", h.UpdatePassword, authenticate)
	authGroup.POST("/check-password", h.CheckPassword, authenticate)

	projectGroup := e.Group("/api/projects", authenticate)
	projectGroup.POST("", h.CreateProject)
	projectGroup.GET("", h.ListProjects)
	projectGroup.GET("/:projectID", h.GetProject)
	projectGroup.PUT("/:projectID", h.UpdateProject)
	projectGroup.DELETE("/:projectID", h.DeleteProject)

	// Everything nested under a project runs behind the project resolution
	// middleware, which also performs the membership check.
	scoped := projectGroup.Group("/:projectID", requireProject)

	scoped.POST("/tasks", h.CreateTask, requireManager)
	scoped.GET("/tasks", h.ListTasks)
	scoped.GET("/tasks/:taskID", h.GetTask, requireTask)
	scoped.PUT("/tasks/:taskID", h.UpdateTask, requireManager, requireTask)
	scoped.DELETE("/tasks/:taskID", h.DeleteTask, requireManager, requireTask)
	scoped.PUT("/tasks/:taskID/status", h.UpdateTaskStatus, requireTask)

	scoped.POST("/team/find", h.FindMember)
	scoped.GET("/team", h.Team)
	scoped.POST("/team", h.AddMember, requireManager)
	scoped.DELETE("/team/:userID", h.RemoveMember, requireManager)

	scoped.POST("/tasks/:taskID/notes", h.CreateNote, requireTask)
	scoped.GET("/tasks/:taskID/notes", h.ListNotes, requireTask)
	scoped.DELETE("/tasks/:taskID/notes/:noteID", h.DeleteNote, requireTask)
}
