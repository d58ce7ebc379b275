package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/playwise/kidsync/internal/config"
	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/internal/server"
	"github.com/playwise/kidsync/internal/service"
)

const shutdownTimeout = 5 * time.Second

// sessionTokenFileName is the file the app shell writes the player's session
// token into after sign-in and truncates on sign-out. It lives next to the
// cache database.
const sessionTokenFileName = "session.token"

// App is the sync daemon: the periodic sync job plus the local status server.
type App struct {
	services *service.ClientServices
	status   *server.StatusServer
	tokenFn  service.TokenFunc

	logger *logger.Logger
}

// NewApp assembles the daemon from its already-wired parts.
func NewApp(services *service.ClientServices, status *server.StatusServer, tokenFn service.TokenFunc, logger *logger.Logger) (*App, error) {
	if services == nil || status == nil {
		return nil, fmt.Errorf("client app: missing dependencies")
	}

	return &App{
		services: services,
		status:   status,
		tokenFn:  tokenFn,
		logger:   logger,
	}, nil
}

// Run starts the periodic sync job and the status server and blocks until
// SIGINT/SIGTERM or a server failure. Shutdown stops the job first so no new
// cycle starts while the process winds down; an in-flight cycle completes and
// its cache writes stand.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Content is refreshable before sign-in; warm the cache right away so a
	// first-launch child is not staring at an empty level list.
	a.services.Engine.SyncContentOnly(ctx, false)

	a.services.Engine.StartPeriodicSync(ctx, a.tokenFn)
	defer a.services.Engine.Stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.status.Run()
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("status server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.status.Shutdown(shutdownCtx)

	a.logger.Info().Msg("sync daemon stopped gracefully")

	return nil
}

// SessionTokenFunc returns an accessor that reads the session token written
// by the app shell. It re-reads the file on every call so sign-in and
// sign-out take effect on the next sync tick without restarting the daemon.
// A missing or empty file means logged out.
func SessionTokenFunc(cfg config.ClientStorage) service.TokenFunc {
	path := filepath.Join(filepath.Dir(cfg.DB.DSN), sessionTokenFileName)

	return func() string {
		raw, err := os.ReadFile(path)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(raw))
	}
}
