package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/formguard/internal/identity"
)

func (a *App) initModules() {
	if !a.config.GetBool("modules.identity.enabled") {
		slog.Warn("module identity is disabled, only /health is served")
		return
	}

	if err := identity.New(identity.Dependency{
		Goroutine:  a.goroutine,
		Router:     a.router,
		Messaging:  a.messaging,
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module identity", "error", err)
		os.Exit(1)
	}
}
