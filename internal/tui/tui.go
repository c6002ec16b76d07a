// Package tui implements the Fraud Shield terminal client on Bubble Tea.
//
// A single [RootModel] routes between pages (menu, login, signup, dashboard,
// story, results and news). Network calls run as tea.Cmds through the client
// services; pages drop stale responses by comparing request generations.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/internal/story"
	"github.com/MKhiriev/fraud-shield/models"
	tea "github.com/charmbracelet/bubbletea"
)

const versionTimeout = 3 * time.Second

type TUI struct {
	services  *service.ClientServices
	timings   config.ClientGame
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, timings config.ClientGame, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil || services.PlayerService == nil {
		return nil, errors.New("tui: client services are required")
	}

	return &TUI{
		services:       services,
		timings:        timings,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Run restores a remembered session when there is one and runs the program
// until the user quits. It returns [ErrUserQuit] on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root, err := t.newRoot(ctx)
	if err != nil {
		return err
	}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context) (RootModel, error) {
	session, err := story.NewDefaultSession()
	if err != nil {
		return RootModel{}, fmt.Errorf("load story: %w", err)
	}

	auth := t.services.AuthService
	player := t.services.PlayerService

	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(ctx, auth),
		pageRegister:  NewRegisterModel(ctx, auth),
		pageDashboard: NewDashboardModel(ctx, auth, player),
		pageStory:     NewStoryModel(session, t.timings),
		pageResults:   NewResultsModel(ctx, player),
		pageNews:      NewNewsModel(ctx, player),
	}

	start := pageMenu
	if restored, err := auth.RestoreSession(ctx); err == nil {
		t.logger.Info().Str("email", restored.Email).Msg("restored remembered session")
		start = pageDashboard
	} else if !errors.Is(err, service.ErrNotLoggedIn) {
		t.logger.Warn().Err(err).Msg("failed to restore session")
	}

	root := NewRootModel(pages, start, t.buildInfo).WithServerVersion(func() (string, error) {
		vctx, cancel := context.WithTimeout(ctx, versionTimeout)
		defer cancel()
		return player.ServerVersion(vctx)
	})

	return root, nil
}
