package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sparknest-admin/internal/config"
	"github.com/MKhiriev/sparknest-admin/internal/crypto"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/tui"
	"github.com/MKhiriev/sparknest-admin/models"
)

// App is the interactive admin client.
type App struct {
	runtime *Runtime
	ui      *tui.TUI
	logger  *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	rt, err := NewRuntime(ctx, cfg, crypto.NewKeyChainService(), log)
	if err != nil {
		return nil, err
	}

	return newApp(rt, buildInfo), nil
}

func newApp(rt *Runtime, buildInfo models.AppBuildInfo) *App {
	return &App{
		runtime: rt,
		ui:      tui.New(rt.Services, rt.Validator, rt.Translator, buildInfo, rt.Logger()),
		logger:  rt.Logger(),
	}
}

// Run restores the persisted session, then runs the terminal UI until the
// user quits or ctx is cancelled. The session database is closed on return.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.runtime.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	sess := a.runtime.Restore(ctx)
	a.logger.Info().
		Str("state", sess.State.String()).
		Str("locale", a.runtime.Translator.Locale()).
		Msg("client started")

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
