package main

import (
	"fmt"
	"log"
	"runtime"

	"student-roster/internal/config"
	"student-roster/internal/controllers"
	"student-roster/internal/logger"
	"student-roster/internal/models"
	"student-roster/internal/shutdown"
	"student-roster/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const AppVersion = "1.0.0"

// Application ties the Fyne app, the roster MVC parts and shutdown together.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.RosterController
	view       *views.MainView

	shutdown *shutdown.Manager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	app.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    config.AppName,
		Version: AppVersion,
	})

	application := NewApplication(app.NewWithID(config.AppID), cfg)
	application.Run()
}

// NewApplication builds and wires every component of the roster window.
func NewApplication(fyneApp fyne.App, cfg *config.Config) *Application {
	window := fyneApp.NewWindow(config.AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	appLogger := logger.New(cfg.LogFormat, cfg.LogLevel)
	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight),
		"go_version":  runtime.Version(),
		"log_level":   cfg.LogLevel.String(),
	})

	roster := models.NewRoster()
	controller := controllers.NewRosterController(roster, appLogger)
	mainView := views.NewMainView(window, appLogger)
	controller.Bind(mainView)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       mainView,
		shutdown:   shutdown.NewManager(appLogger),
	}

	application.shutdown.Register("fyne app", shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))
	application.setupWindowEvents()

	return application
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() {
	a.shutdown.Listen()
	a.window.ShowAndRun()
	a.logger.Info("Application", "terminated", map[string]interface{}{
		"reason":             a.terminationReason(),
		"students_discarded": a.controller.Len(),
	})
}

// terminationReason tells a signal-driven quit apart from closing the window.
func (a *Application) terminationReason() string {
	select {
	case <-a.shutdown.Done():
		return a.shutdown.Reason()
	default:
		return "window closed"
	}
}

// setupWindowEvents asks before closing a non-empty roster, since records
// are never written anywhere.
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		if a.controller.Len() == 0 {
			a.window.Close()
			return
		}

		a.view.ShowConfirm(
			"Exit Application",
			fmt.Sprintf("%d student record(s) will be lost. Exit anyway?", a.controller.Len()),
			func(confirmed bool) {
				if confirmed {
					a.window.Close()
				}
			},
		)
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})
}
