package cli

import (
	"context"
	"fmt"

	"github.com/Makepad-fr/staff/internal/client"
	"github.com/Makepad-fr/staff/internal/config"
	"github.com/Makepad-fr/staff/internal/directory"
	"github.com/Makepad-fr/staff/internal/logger"
	"github.com/Makepad-fr/staff/internal/metrics"
	"github.com/Makepad-fr/staff/internal/model"
	"github.com/Makepad-fr/staff/internal/store/jsonstore"
	"github.com/Makepad-fr/staff/internal/ui"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flags are the persistent root flags; they override the config file and env.
type flags struct {
	configPath  string
	env         string
	file        string
	metricsAddr string
}

// app is what every subcommand needs, built once in PersistentPreRunE.
type app struct {
	opt     Options
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Metrics
	src     directory.Source
	srcErr  error // configuration error, reported when src is first used
}

// NewRootCmd builds the command tree.
func NewRootCmd(opt Options) *cobra.Command {
	var f flags
	a := &app{opt: opt}

	root := &cobra.Command{
		Use:   "staff",
		Short: "staff - a terminal employee directory",
		Long: `staff fetches the employee list from the configured endpoint and lets you
search it, expand a card for details and open a detail view.

Run without arguments to start the interactive screen.

Configuration (file, then STAFF_* env vars, then flags):
  api.url            STAFF_API_URL       employee endpoint
  api.emulator_url   STAFF_API_URL_EMU   overrides api.url when set
  api.timeout        STAFF_API_TIMEOUT   request timeout, e.g. 10s (default none)
  ui.theme           STAFF_UI_THEME      classic | neon | mono
  ui.user            STAFF_UI_USER       name shown as a header badge
  ui.unread          STAFF_UI_UNREAD     unread notifications badge (0 hides it)
  log.file           STAFF_LOG_FILE      default staff.log`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), f)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.browse(cmd.Context())
		},
	}
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (yaml, toml or json)")
	pf.StringVar(&f.env, "env", "", "environment: local, development, production")
	pf.StringVar(&f.file, "file", "", "read employees from a local JSON file instead of the API")
	pf.StringVar(&f.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")

	root.AddCommand(
		newBrowseCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newExportCmd(a),
	)
	return root
}

// usageArgs marks cobra's positional-arg failures as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{msg: err.Error()}
		}
		return nil
	}
}

var noArgs = usageArgs(cobra.NoArgs)

func (a *app) setup(ctx context.Context, f flags) error {
	_ = godotenv.Load()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.env != "" {
		cfg.Env = f.env
	}
	if f.metricsAddr != "" {
		cfg.MetricsAddr = f.metricsAddr
	}
	a.cfg = cfg

	a.log, err = logger.New(cfg.Env, cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	ui.SetTheme(cfg.UI.Theme)

	reg := prometheus.NewRegistry()
	a.metrics = metrics.NewMetrics(reg)
	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, a.log, reg, cfg.MetricsAddr); err != nil {
				a.log.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	if f.file != "" {
		st, err := jsonstore.New(f.file)
		if err != nil {
			return err
		}
		a.log.Info("reading employees from file", zap.String("path", st.Path()))
		a.src = st
		return nil
	}

	fetcher, err := client.NewFetcher(cfg.API, nil, a.log, a.metrics)
	if err != nil {
		a.log.Error("configuration error", zap.Error(err))
		a.srcErr = err
		a.src = failingSource{err: err}
		return nil
	}
	a.log.Info("reading employees from api", zap.String("url", fetcher.URL()))
	a.src = fetcher
	return nil
}

// fetch is the one read used by non-interactive commands.
func (a *app) fetch(ctx context.Context) ([]model.Employee, error) {
	if a.srcErr != nil {
		return nil, fmt.Errorf("%w (set STAFF_API_URL or pass --file)", a.srcErr)
	}
	list, err := a.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// failingSource lets the screen show a configuration error like any other load failure.
type failingSource struct{ err error }

func (s failingSource) Fetch(context.Context) ([]model.Employee, error) { return nil, s.err }
