package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "taskhive.com/taskhive/internal/configs"
	httpapi "taskhive.com/taskhive/internal/http"
	"taskhive.com/taskhive/internal/mailer"
	repository "taskhive.com/taskhive/internal/repositories"
	"taskhive.com/taskhive/internal/services"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  "Starts the project and task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		db := config.NewDatabase(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		userRepo := repository.NewUserRepository(db)
		projectRepo := repository.NewProjectRepository(db)
		taskRepo := repository.NewTaskRepository(db)
		noteRepo := repository.NewNoteRepository(db)
		tokenStore := repository.NewRedisTokenStore(redisClient, cfg.TokenTTL)

		smtpNotifier := mailer.NewSMTPNotifier(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.MailFrom,
			cfg.FrontendURL,
		)
		dispatcher := mailer.NewDispatcher(smtpNotifier, cfg.MailWorkers, cfg.MailQueueSize)

		cascade := services.NewCascade(projectRepo, taskRepo, noteRepo)

		authService := services.NewAuthService(userRepo, tokenStore, dispatcher, cfg.JWTSecret)
		projectService := services.NewProjectService(projectRepo, cascade)
		taskService := services.NewTaskService(taskRepo, cascade)
		teamService := services.NewTeamService(projectRepo, userRepo)
		noteService := services.NewNoteService(noteRepo)

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(authService, projectService, taskService, teamService, noteService)
		httpapi.Register(e, handler, userRepo, projectRepo, taskRepo, httpapi.RouterConfig{
			JWTSecret:          cfg.JWTSecret,
			FrontendURL:        cfg.FrontendURL,
			RateLimitPerMinute: cfg.RateLimit,
		})

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)
		dispatcher.Shutdown(ctx)

		log.Println("HTTP server and mail dispatcher shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
