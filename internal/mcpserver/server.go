package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	"betboard/internal/board"
	"betboard/internal/feed"
)

// TabRenderer writes the text form of one tab selection.
type TabRenderer interface {
	Print(w io.Writer, sel board.Selection, snap *board.Snapshot) error
}

// Server wraps the MCP server with betboard capabilities.
type Server struct {
	mcpServer *mcp.Server
	provider  feed.SnapshotProvider
	renderer  TabRenderer
	timeout   time.Duration

	// Latest snapshot, kept fresh by the refresh worker.
	snapMu sync.RWMutex
	snap   *board.Snapshot

	refreshMu     sync.Mutex
	refreshCancel context.CancelFunc
	refreshWg     sync.WaitGroup
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName      string
	ServerVersion   string
	LoadTimeout     time.Duration
	RefreshInterval time.Duration // zero disables the background refresh
}

func DefaultConfig() Config {
	return Config{
		ServerName:      "betboard",
		ServerVersion:   "1.0.0",
		LoadTimeout:     5 * time.Second,
		RefreshInterval: 30 * time.Second,
	}
}

// NewServer creates a new MCP server instance.
func NewServer(cfg Config, provider feed.SnapshotProvider, renderer TabRenderer) *Server {
	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}
	timeout := cfg.LoadTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().LoadTimeout
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		provider:  provider,
		renderer:  renderer,
		timeout:   timeout,
	}
	s.registerTools()

	if cfg.RefreshInterval > 0 {
		s.startBackgroundRefresh(cfg.RefreshInterval)
	}
	return s
}

// RenderTabArgs defines the input for the render_tab tool.
type RenderTabArgs struct {
	Tab          string `json:"tab" jsonschema:"tab to render: leaderboard, mybets or top"`
	MyBetsSubTab string `json:"mybets_sub_tab,omitempty" jsonschema:"ongoing or ended, defaults to ongoing"`
	TopSubTab    string `json:"top_sub_tab,omitempty" jsonschema:"day, month or year, defaults to day"`
}

// RenderTabResult defines the output for the render_tab tool.
type RenderTabResult struct {
	Text string `json:"text" jsonschema:"plain text rendering of the tab"`
}

// SnapshotArgs defines the input for the get_snapshot tool.
type SnapshotArgs struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"fetch a new snapshot instead of the cached one"`
}

// SnapshotResult wraps the snapshot for tool output.
type SnapshotResult struct {
	Snapshot *board.Snapshot `json:"snapshot" jsonschema:"leaderboard, bets and top players"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "render_tab",
		Description: "Render one betboard tab as plain text. Picks the leaderboard, the player's ongoing or ended bets, or the top players for a day, month or year.",
	}, s.handleRenderTab)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_snapshot",
		Description: "Get the raw board snapshot: leaderboard entries, ongoing bets, ended bets and top players per period.",
	}, s.handleGetSnapshot)
}

// selectionFromArgs fills defaults for empty sub-tabs. The tab itself is
// passed through unvalidated so the renderer reports unknown tabs.
func selectionFromArgs(args RenderTabArgs) (board.Selection, error) {
	sel := board.DefaultSelection()
	sel.Tab = board.Tab(strings.ToLower(strings.TrimSpace(args.Tab)))
	if args.MyBetsSubTab != "" {
		sub, err := board.ParseMyBetsSubTab(strings.ToLower(args.MyBetsSubTab))
		if err != nil {
			return sel, err
		}
		sel.MyBets = sub
	}
	if args.TopSubTab != "" {
		period, err := board.ParsePeriod(strings.ToLower(args.TopSubTab))
		if err != nil {
			return sel, err
		}
		sel.Top = period
	}
	return sel, nil
}

func (s *Server) handleRenderTab(ctx context.Context, _ *mcp.CallToolRequest, args RenderTabArgs) (*mcp.CallToolResult, RenderTabResult, error) {
	sel, err := selectionFromArgs(args)
	if err != nil {
		return nil, RenderTabResult{}, err
	}

	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return nil, RenderTabResult{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var b strings.Builder
	if err := s.renderer.Print(&b, sel, snap); err != nil {
		var unknown *board.UnknownTabError
		if errors.As(err, &unknown) {
			return nil, RenderTabResult{}, fmt.Errorf("%w (expected one of leaderboard, mybets, top)", err)
		}
		return nil, RenderTabResult{}, err
	}
	return nil, RenderTabResult{Text: b.String()}, nil
}

func (s *Server) handleGetSnapshot(ctx context.Context, _ *mcp.CallToolRequest, args SnapshotArgs) (*mcp.CallToolResult, SnapshotResult, error) {
	snap, err := s.snapshot(ctx, args.Refresh)
	if err != nil {
		return nil, SnapshotResult{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return nil, SnapshotResult{Snapshot: snap}, nil
}

// snapshot returns the cached snapshot, loading one on first use or when forced.
func (s *Server) snapshot(ctx context.Context, force bool) (*board.Snapshot, error) {
	if !force {
		s.snapMu.RLock()
		snap := s.snap
		s.snapMu.RUnlock()
		if snap != nil {
			return snap, nil
		}
	}
	return s.refresh(ctx)
}

func (s *Server) refresh(ctx context.Context) (*board.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.snapMu.Lock()
	s.snap = snap
	s.snapMu.Unlock()
	return snap, nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	log.Info("Starting betboard MCP server on stdio")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

// Close stops the refresh worker.
func (s *Server) Close() error {
	s.stopBackgroundRefresh()
	return nil
}

func (s *Server) startBackgroundRefresh(interval time.Duration) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if s.refreshCancel != nil {
		return // Already running
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.refreshCancel = cancel
	s.refreshWg.Add(1)

	go func() {
		defer s.refreshWg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.refresh(ctx); err != nil {
					log.WithError(err).Warn("background snapshot refresh failed")
				}
			}
		}
	}()

	log.WithField("interval", interval).Debug("background snapshot refresh started")
}

func (s *Server) stopBackgroundRefresh() {
	s.refreshMu.Lock()
	cancel := s.refreshCancel
	s.refreshCancel = nil
	s.refreshMu.Unlock()

	if cancel != nil {
		cancel()
		s.refreshWg.Wait()
	}
}
