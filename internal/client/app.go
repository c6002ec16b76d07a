package client

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/tui"
)

type App struct {
	ui      UI
	storage io.Closer
	logger  *logger.Logger
}

// NewApp builds the client runtime. storage is closed when Run returns and
// may be nil.
func NewApp(ui UI, storage io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	return &App{ui: ui, storage: storage, logger: logger}, nil
}

// Run blocks until the UI exits or the process receives SIGINT, SIGTERM or
// SIGQUIT. Quitting with ctrl+c is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		a.logger.Error().Err(err).Msg("client stopped with error")
		return err
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) close() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Error().Err(err).Msg("failed to close local storage")
	}
}

var _ Client = (*App)(nil)

