// vital-pulse is a terminal dashboard for a VitalGuard health-telemetry
// backend.
//
// It polls the backend for recent sensor telemetry, the current discretized
// vitals status, and service health, and renders them in an interactive
// Bubbletea TUI: a rotating sensor chart, a status card, a server panel,
// and an on-demand LLM health report. Polling pauses while the terminal is
// unfocused and resumes on focus.
//
// Usage:
//
//	vital-pulse [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: XDG config search)
//	-server string  Backend base URL override
//	-snapshot       Print a one-shot plain-text status snapshot and exit
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/app"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/bus"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/config"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/monitor"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/poll"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		serverURL   = flag.String("server", "", "Backend base URL override")
		snapshot    = flag.Bool("snapshot", false, "Print a one-shot status snapshot and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("vital-pulse %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := setupLogging(cfg, *verbose, *snapshot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		cancel()
	}()

	client, err := api.NewClient(cfg.Server.URL, logger)
	if err != nil {
		logger.Error("client init failed", "error", err)
		os.Exit(1)
	}

	if *snapshot {
		if err := printSnapshot(ctx, client); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := runTUI(ctx, cfg, client, logger); err != nil {
		logger.Error("TUI error", "error", err)
		os.Exit(1)
	}
}

// setupLogging opens the configured log file. The TUI owns the terminal, so
// interactive runs log to the file only; snapshot runs mirror to stderr the
// way a normal CLI would.
func setupLogging(cfg *config.Config, verbose, mirrorStderr bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		return nil, nil, err
	}
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = logFile
	if mirrorStderr {
		w = io.MultiWriter(os.Stderr, logFile)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, func() { logFile.Close() }, nil
}

func runTUI(ctx context.Context, cfg *config.Config, client *api.Client, logger *slog.Logger) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal; use -snapshot for non-interactive output")
	}
	logger.Debug("terminal capabilities",
		"profile", termenv.ColorProfile(),
		"dark_background", termenv.HasDarkBackground(),
	)

	store := prefs.NewStore("")
	p, err := store.Load()
	if err != nil {
		logger.Warn("loading preferences failed, using defaults", "error", err)
	}

	b := bus.New()
	bridge := app.NewBridge(b)

	// The monitor reads the language on poll goroutines while the UI loop
	// owns preference state, so changes cross over through an atomic value
	// fed by the bus.
	var lang atomic.Value
	lang.Store(p.Language)
	b.Subscribe(bus.TopicLanguageChanged, func(payload any) {
		if l, ok := payload.(prefs.Language); ok {
			lang.Store(l)
		}
	})
	langFn := func() prefs.Language { return lang.Load().(prefs.Language) }

	mon := monitor.New(client, b, logger, cfg.Server.RecentLimit, langFn, bridge)
	sched := poll.NewScheduler(logger, mon.Tasks(
		cfg.Poll.Telemetry.Duration,
		cfg.Poll.Status.Duration,
		cfg.Poll.Health.Duration,
	)...)

	zones := zone.New()
	model := app.NewModel(app.Options{
		Bus:    b,
		Poller: sched,
		Bridge: bridge,
		Store:  store,
		Prefs:  p,
		Zones:  zones,
		Logger: logger,
		Widgets: []app.Widget{
			widgets.NewChartWidget(zones, p),
			widgets.NewStatusWidget(p),
			widgets.NewServerWidget(p),
			widgets.NewReportWidget(client, p),
		},
	})

	logger.Info("starting vital-pulse",
		"server", cfg.Server.URL,
		"telemetry_interval", cfg.Poll.Telemetry.Duration,
		"status_interval", cfg.Poll.Status.Duration,
		"health_interval", cfg.Poll.Health.Duration,
	)

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	_, err = program.Run()

	sched.Stop()
	client.CancelAll()
	zones.Close()

	// A cancelled context is the normal shutdown path, not a failure.
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
