package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"betboard/internal/board"
	"betboard/internal/config"
	"betboard/internal/feed"
	"betboard/internal/logging"
	"betboard/internal/mcpserver"
	"betboard/ui/console"
	"betboard/ui/tui"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "betboard",
		Usage: "leaderboard, bets and top players in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file with BETBOARD_* settings"},
			&cli.StringFlag{Name: "snapshot", Aliases: []string{"s"}, Usage: "YAML or JSON snapshot file (default: demo data)"},
			&cli.Int64Flag{Name: "seed", Usage: "seed for demo data (0 = time based)"},
			&cli.StringFlag{Name: "tab", Aliases: []string{"t"}, Usage: "tab: leaderboard, mybets or top"},
			&cli.StringFlag{Name: "mybets", Usage: "my bets sub-tab: ongoing or ended"},
			&cli.StringFlag{Name: "period", Usage: "top sub-tab: day, month or year"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file"},
			&cli.StringFlag{Name: "log-level", Usage: "log level (debug, info, warn, error)"},
			&cli.BoolFlag{Name: "no-anim", Usage: "disable row entrance animation"},
			&cli.BoolFlag{Name: "no-trend", Usage: "hide the top players win trend chart"},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			{
				Name:   "tui",
				Usage:  "interactive board (default)",
				Action: runTUI,
			},
			{
				Name:  "print",
				Usage: "print one tab as text and exit",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "no-color", Usage: "disable ANSI colors"},
				},
				Action: runPrint,
			},
			{
				Name:  "mcp",
				Usage: "serve render_tab and get_snapshot over MCP stdio",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "refresh", Value: mcpserver.DefaultConfig().RefreshInterval, Usage: "snapshot refresh interval (0 disables)"},
				},
				Action: runMCP,
			},
		},
	}
}

// loadConfig layers flags over env over defaults.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return cfg, err
	}

	if c.IsSet("snapshot") {
		cfg = cfg.WithSnapshotPath(c.String("snapshot"))
	}
	if c.IsSet("seed") {
		cfg = cfg.WithDemoSeed(c.Int64("seed"))
	}

	sel := cfg.Selection()
	if c.IsSet("tab") {
		sel.Tab = board.Tab(c.String("tab"))
	}
	if c.IsSet("mybets") {
		sel.MyBets = board.MyBetsSubTab(c.String("mybets"))
	}
	if c.IsSet("period") {
		sel.Top = board.Period(c.String("period"))
	}
	cfg = cfg.WithSelection(sel)

	file, level := cfg.LogFile, cfg.LogLevel
	if c.IsSet("log-file") {
		file = c.String("log-file")
	}
	if c.IsSet("log-level") {
		level = c.String("log-level")
	}
	cfg = cfg.WithLog(file, level)

	if c.Bool("no-anim") {
		cfg = cfg.WithAnimate(false)
	}
	if c.Bool("no-trend") {
		cfg = cfg.WithTrend(false)
	}

	return cfg, cfg.Validate()
}

// setup loads config and logging. Without a log file, logs go to fallback.
func setup(c *cli.Context, fallback io.Writer) (config.Config, io.Closer, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return cfg, nil, err
	}
	closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel, fallback)
	if err != nil {
		return cfg, nil, err
	}
	log.WithFields(log.Fields{
		"snapshot": cfg.SnapshotPath,
		"tab":      cfg.InitialTab,
	}).Debug("config loaded")
	return cfg, closer, nil
}

func runTUI(c *cli.Context) error {
	// The TUI owns the terminal, so logs only go to a file.
	cfg, closer, err := setup(c, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	provider := feed.New(cfg.SnapshotPath, cfg.DemoSeed)
	if err := tui.Start(provider, cfg); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func runPrint(c *cli.Context) error {
	cfg, closer, err := setup(c, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithTimeout(c.Context, cfg.LoadTimeout)
	defer cancel()

	snap, err := feed.New(cfg.SnapshotPath, cfg.DemoSeed).Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	printer := console.Printer{Color: !c.Bool("no-color")}
	return printer.Print(c.App.Writer, cfg.Selection(), snap)
}

func runMCP(c *cli.Context) error {
	// stdout carries the protocol.
	cfg, closer, err := setup(c, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvCfg := mcpserver.DefaultConfig()
	srvCfg.LoadTimeout = cfg.LoadTimeout
	srvCfg.RefreshInterval = c.Duration("refresh")

	srv := mcpserver.NewServer(srvCfg, feed.New(cfg.SnapshotPath, cfg.DemoSeed), console.Printer{})
	defer srv.Close()

	return srv.Start(ctx)
}
