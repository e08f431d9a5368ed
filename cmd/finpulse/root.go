package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finpulse/internal/client"
	"finpulse/internal/config"
	"finpulse/internal/trace"
	"finpulse/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// flags holds command-line overrides. Only flags the user actually set
// are applied on top of the loaded config.
type flags struct {
	config   string
	apiURL   string
	interval time.Duration
	timeout  time.Duration
	logFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:          "finpulse",
		Short:        "Financial sentiment dashboard",
		Long:         "finpulse polls a sentiment summary endpoint and shows how analyzed articles split by sentiment.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, &f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "path to config file (default "+config.DefaultConfigPath()+")")
	pf.StringVar(&f.apiURL, "api-url", "", "base URL of the sentiment API")
	pf.DurationVar(&f.timeout, "timeout", 0, "per-request timeout")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	root.Flags().DurationVar(&f.interval, "interval", 0, "poll interval")
	root.Flags().StringVar(&f.logFile, "log-file", "", "dashboard log file")

	root.AddCommand(newFetchCmd(&f), newServeCmd(&f), versionCmd)
	return root
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "finpulse %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// loadConfig resolves the config file, environment and any flags set on cmd.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	set := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if set("api-url") {
		cfg.APIURL = f.apiURL
	}
	if set("timeout") {
		cfg.Timeout = f.timeout
	}
	if set("interval") {
		cfg.PollInterval = f.interval
	}
	if set("log-file") {
		cfg.LogFile = f.logFile
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, _ := config.ParseLevel(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

func runDashboard(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to a file.
	logOut, err := openLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()
	logger := newLogger(logOut, cfg.LogLevel)

	ctx := cmd.Context()
	tp, err := trace.Setup(ctx, "dashboard")
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}()

	c := client.New(cfg.SummaryURL(), cfg.Timeout,
		client.WithTracer(tp.Tracer("finpulse/client")),
		client.WithLogger(logger),
	)
	dash := ui.NewDashboardView(client.NewPoller(c, logger), cfg.PollInterval)
	app := ui.NewAppModel(dash, ui.AboutInfo{
		Version:  version,
		Endpoint: c.URL(),
		Interval: dash.Interval(),
		Timeout:  c.Timeout(),
	})

	logger.Info("dashboard starting", "url", c.URL(), "interval", cfg.PollInterval, "timeout", cfg.Timeout, "tracing", tp.Enabled())
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	// A signal kills the program without a QuitMsg, so unmount here too.
	dash.Unmount()
	return dashboardExit(ctx, err)
}

// dashboardExit maps the program's exit error. Being killed because ctx
// was cancelled (SIGINT/SIGTERM) is a normal shutdown.
func dashboardExit(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return fmt.Errorf("running dashboard: %w", err)
}
