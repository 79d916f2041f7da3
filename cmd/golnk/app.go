package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/desertwitch/golnk/internal/configuration"
	"github.com/desertwitch/golnk/internal/filesystem"
	golnkio "github.com/desertwitch/golnk/internal/io"
	"github.com/desertwitch/golnk/internal/linking"
	"github.com/desertwitch/golnk/internal/schema"
	"github.com/desertwitch/golnk/internal/ui"
	"github.com/dustin/go-humanize"
)

// App holds the handlers of the program.
type App struct {
	workDir string

	osHandler     *schema.OS
	fsHandler     *filesystem.Handler
	linkHandler   *linking.Handler
	configHandler *configuration.Handler
	logManager    *SlogManager

	stderr io.Writer
}

// NewApp returns a pointer to a new [App] operating relative to workDir.
func NewApp(workDir string, logManager *SlogManager, stderr io.Writer) *App {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}
	configProvider := &configuration.GodotenvProvider{}

	fsHandler := filesystem.NewHandler(osProvider, osProvider, workDir)
	ioHandler := golnkio.NewHandler(fsHandler, osProvider, unixProvider)

	return &App{
		workDir:       workDir,
		osHandler:     osProvider,
		fsHandler:     fsHandler,
		linkHandler:   linking.NewHandler(fsHandler, ioHandler),
		configHandler: configuration.NewHandler(configProvider, osProvider, os.LookupEnv),
		logManager:    logManager,
		stderr:        stderr,
	}
}

// Launch runs the linking jobs one after another, printing every created
// link to out. Cancellation of ctx is honored between jobs.
func (app *App) Launch(ctx context.Context, out io.Writer, jobs []linkJob, opts schema.LinkOptions) error {
	total := 0

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("(app) %w", err)
		}

		linked, err := app.linkHandler.Link(job.source, job.dest, opts)
		if err != nil {
			return fmt.Errorf("(app) %w", err)
		}

		printLinked(out, job.dest, linked)
		total += len(linked)
	}

	slog.Info("Finished linking",
		"links", humanize.Comma(int64(total)),
		"jobs", len(jobs),
	)

	return nil
}

// LaunchUI runs the interactive picker. Logs are routed into the picker for
// as long as it runs.
func (app *App) LaunchUI(ctx context.Context, out io.Writer, targets []string, opts schema.LinkOptions, level slog.Level) error {
	if len(targets) > 2 { //nolint:mnd
		return fmt.Errorf("(app-ui) %w", ErrTooManyTargets)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := ui.Session{
		StartDir: app.workDir,
		Options:  opts,
	}
	if len(targets) > 0 {
		session.Source = app.fsHandler.Resolve(targets[0])
	}
	if len(targets) > 1 {
		session.Destination = app.fsHandler.Resolve(targets[1])
	}

	uiHandler := ui.NewHandler(ctx, cancel, app.linkHandler, app.osHandler, session)

	app.logManager.AddHandler(uiLogHandler, newTintHandler(uiHandler.LogWriter, level, true))
	app.logManager.RemoveHandler(terminalLogHandler)

	result, err := uiHandler.Launch()

	app.logManager.RemoveHandler(uiLogHandler)
	setupLogging(app.logManager, app.stderr, level)

	if err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	printLinked(out, result.Destination, result.Linked)

	return nil
}

func printLinked(out io.Writer, dest string, linked []string) {
	for _, rel := range linked {
		if rel == "" {
			rel = dest
		}
		fmt.Fprintf(out, "Created link: %s\n", rel)
	}
}
