package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/formguard/internal/pkg/clock"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"github.com/shandysiswandi/formguard/internal/pkg/messaging"
	"github.com/shandysiswandi/formguard/internal/pkg/router"
	"github.com/shandysiswandi/formguard/internal/pkg/uid"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
)

type closer struct {
	name string
	fn   func(context.Context) error
}

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation
	masker instrument.Masker

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID

	// resources
	messaging messaging.Messaging

	// server
	router     *router.Router
	httpServer *http.Server

	closers []closer
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
