package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/semestra/semestra/adapter/cli"
	"github.com/semestra/semestra/adapter/cli/course"
	"github.com/semestra/semestra/adapter/cli/plan"
	"github.com/semestra/semestra/internal/app"
	"github.com/semestra/semestra/pkg/config"
)

func main() {
	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development", TermName: "default"}
	}

	if cfg.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	cli.SetLogger(logger)

	// Try to initialize the full container
	var cliApp *cli.App
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
			cliApp = nil
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()

		cliApp = cli.NewApp(
			container.AddCourseHandler,
			container.DeleteCourseHandler,
			container.CommitCourseHandler,
			container.RemoveCourseHandler,
			container.GeneratePlanHandler,
			container.ImportCoursesHandler,
			container.GetPlanHandler,
			container.ListCoursesHandler,
			container.CourseFile,
			cfg.TermName,
		)
	}

	// Set the CLI app
	cli.SetApp(cliApp)

	// Register commands
	cli.AddCommand(course.Cmd)
	cli.AddCommand(plan.Cmd)

	// Execute CLI
	cli.Execute()
}
