package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mathquest/app/internal/backend"
	"github.com/mathquest/app/internal/catalog"
	"github.com/mathquest/app/internal/config"
	"github.com/mathquest/app/internal/logging"
	"github.com/mathquest/app/internal/manuscript"
	"github.com/mathquest/app/internal/session"
)

// env is what every subcommand shares once flags are parsed.
type env struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
	in     io.Reader
	out    io.Writer
}

// Execute runs the CLI.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx)
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	e := &env{in: in, out: out}

	envConfig := os.Getenv("MATHQUEST_CONFIG")
	if envConfig == "" {
		envConfig = "config.yaml"
	}

	cmd := &cobra.Command{
		Use:           "mathquest",
		Short:         "Gamified math practice with handwritten solution checking",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(e.configPath)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger, err = logging.New(cfg.Log.Level, cfg.Log.Development, e.verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&e.configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newPlayCmd(e),
		newLoginCmd(e),
		newRegisterCmd(e),
		newLogoutCmd(e),
		newProfileCmd(e),
		newRankingCmd(e),
		newCatalogCmd(e),
		newServeDevCmd(e),
	)
	return cmd
}

func (e *env) client() *backend.Client {
	return backend.NewClient(e.cfg.Backend.URL,
		backend.NewFileStore(e.cfg.Credentials.Path),
		backend.WithHTTPClient(&http.Client{Timeout: e.cfg.BackendTimeout()}),
		backend.WithLogger(e.logger),
	)
}

func (e *env) controller() (*session.Controller, error) {
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	v, err := manuscript.New(e.cfg.Manuscript(), e.logger)
	if err != nil {
		return nil, err
	}
	return session.New(cat, e.client(), v, e.logger, session.Options{
		ValidationTimeout: e.cfg.ValidationTimeout(),
		FetchTimeout:      e.cfg.BackendTimeout(),
		RankingLimit:      e.cfg.Ranking.Limit,
	}), nil
}

// resume restores the stored session or explains how to start one.
func (e *env) resume(ctx context.Context) (*session.Controller, error) {
	c, err := e.controller()
	if err != nil {
		return nil, err
	}
	ok, err := c.Restore(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("nenhuma sessão ativa; use 'mathquest login'")
	}
	return c, nil
}

// userError prefers the player-facing message for backend failures.
func userError(err error) error {
	var fe *session.FormError
	if errors.As(err, &fe) {
		return errors.New(fe.Message)
	}
	return errors.New(backend.UserMessage(err))
}
