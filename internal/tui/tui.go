// Package tui is the interactive terminal front end of the admin client,
// built on Bubble Tea. Every page is a pointer model registered in a
// RootModel that routes NavigateTo messages between them.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sparknest-admin/internal/i18n"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/service"
	"github.com/MKhiriev/sparknest-admin/internal/validators"
	"github.com/MKhiriev/sparknest-admin/models"
)

type TUI struct {
	services  *service.ClientServices
	validator validators.Validator
	tr        *i18n.Translator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, validator validators.Validator, tr *i18n.Translator, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:       services,
		validator:      validator,
		tr:             tr,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Model builds the root model. The dashboard is the start page when the
// session is already authenticated, the menu otherwise.
func (t *TUI) Model(ctx context.Context) RootModel {
	s := t.services
	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(t.tr),
		pageLogin:     NewLoginModel(ctx, s.Session, t.validator, t.tr),
		pageRegister:  NewRegisterModel(ctx, s.Session, t.validator, t.tr),
		pageDashboard: NewDashboardModel(ctx, s.Session, s.Dashboard, t.tr),
		pageList:      NewListModel(ctx, s.Resources, s.Icons, t.tr),
		pageForm:      NewFormModel(ctx, s.Resources, t.validator, s.Icons, t.tr),
	}

	start := pageMenu
	if s.Session.State() == models.Authenticated {
		start = pageDashboard
	}
	return NewRootModel(pages, start, t.tr, t.buildInfo)
}

// Run blocks until the user quits with ctrl+c or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.Model(ctx)
	t.logger.Info().Str("page", root.CurrentPage()).Msg("starting TUI")

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	_, err := tea.NewProgram(root, options...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
