package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mathquest/app/internal/catalog"
	"github.com/mathquest/app/internal/devbackend"
)

func newServeDevCmd(e *env) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve-dev",
		Short: "Run the local development backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = e.cfg.DevBackend.Port
			}
			return runDevBackend(cmd.Context(), e, port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (defaults to dev_backend.port)")
	return cmd
}

func runDevBackend(ctx context.Context, e *env, port string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := e.logger
	cfg := e.cfg.DevBackend

	var store devbackend.Store
	if cfg.Postgres != "" {
		db, err := devbackend.Connect(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := devbackend.Migrate(db); err != nil {
			return err
		}
		store = devbackend.NewPostgresStore(db)
		logger.Info("dev backend using postgres")
	} else {
		store = devbackend.NewMemoryStore()
		logger.Info("dev backend using in-memory store")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(devbackend.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	if err := devbackend.Seed(ctx, store, catalog.Default().CommunityUsers(), string(hash)); err != nil {
		return fmt.Errorf("seed players: %w", err)
	}

	var board devbackend.Leaderboard
	if cfg.Redis != "" {
		client, err := devbackend.DialRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		lb := devbackend.NewRedisLeaderboard(client)
		if err := devbackend.SyncLeaderboard(ctx, store, lb); err != nil {
			return fmt.Errorf("sync leaderboard: %w", err)
		}
		board = lb
		logger.Info("dev backend ranking from redis", zap.String("addr", cfg.Redis))
	}

	go devbackend.NewResetWorker(store, board, logger).Run(ctx)

	srv := devbackend.NewServer(devbackend.Options{
		Store:       store,
		Leaderboard: board,
		Secret:      []byte(cfg.JWTSecret),
		Logger:      logger,
	})
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dev backend listening", zap.String("addr", server.Addr),
			zap.String("seed_login", devbackend.SeedEmail("MathGenius")))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down dev backend")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
