package mcpserver

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"betboard/internal/board"
	"betboard/ui/console"
)

// MockSnapshotProvider implements feed.SnapshotProvider for testing
type MockSnapshotProvider struct {
	mu    sync.Mutex
	Snap  *board.Snapshot
	Err   error
	Calls int
}

func (m *MockSnapshotProvider) Snapshot(ctx context.Context) (*board.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Snap, nil
}

func testSnapshot() *board.Snapshot {
	s := &board.Snapshot{
		Leaderboard: []board.LeaderboardEntry{{Name: "Alice", Score: 2, Status: board.StatusWin}},
		OngoingBets: []board.OngoingBet{{ID: "A1B2C3D4", Score: 1.5, CurrentWin: 30}},
		EndedBets:   []board.EndedBet{{ID: "E5F6A7B8", BetAmount: 20, Status: board.StatusWin}},
		TopPlayers: board.TopPlayers{
			board.PeriodYear: {{Date: "2024-01-01", Avatar: "AL", BetAmount: 5, WinAmount: 500, Round: 7}},
		},
	}
	s.Normalize()
	return s
}

func newTestServer(p *MockSnapshotProvider) *Server {
	return &Server{
		provider: p,
		renderer: console.Printer{},
		timeout:  DefaultConfig().LoadTimeout,
	}
}

func TestHandleRenderTab_Leaderboard(t *testing.T) {
	s := newTestServer(&MockSnapshotProvider{Snap: testSnapshot()})

	_, result, err := s.handleRenderTab(context.Background(), nil, RenderTabArgs{Tab: "leaderboard"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(result.Text, "Alice") || !strings.Contains(result.Text, "100") {
		t.Errorf("Expected Alice with current win 100, got:\n%s", result.Text)
	}
}

func TestHandleRenderTab_SubTabs(t *testing.T) {
	s := newTestServer(&MockSnapshotProvider{Snap: testSnapshot()})
	ctx := context.Background()

	_, result, err := s.handleRenderTab(ctx, nil, RenderTabArgs{Tab: "MyBets", MyBetsSubTab: "ended"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(result.Text, "✔ Win") {
		t.Errorf("Expected ended bet with win indicator, got:\n%s", result.Text)
	}

	_, result, err = s.handleRenderTab(ctx, nil, RenderTabArgs{Tab: "top", TopSubTab: "year"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(result.Text, "500") || !strings.Contains(result.Text, "2024-01-01") {
		t.Errorf("Expected year top card, got:\n%s", result.Text)
	}

	// Default period is day, which has no entries.
	_, result, _ = s.handleRenderTab(ctx, nil, RenderTabArgs{Tab: "top"})
	if !strings.Contains(result.Text, board.PlaceholderTop) {
		t.Errorf("Expected top placeholder for day, got:\n%s", result.Text)
	}
}

func TestHandleRenderTab_UnknownTab(t *testing.T) {
	s := newTestServer(&MockSnapshotProvider{Snap: testSnapshot()})

	_, _, err := s.handleRenderTab(context.Background(), nil, RenderTabArgs{Tab: "history"})
	var unknown *board.UnknownTabError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownTabError, got %v", err)
	}
	if unknown.Tab != "history" {
		t.Errorf("Expected tab 'history', got %q", unknown.Tab)
	}
}

func TestHandleRenderTab_InvalidSubTab(t *testing.T) {
	s := newTestServer(&MockSnapshotProvider{Snap: testSnapshot()})

	if _, _, err := s.handleRenderTab(context.Background(), nil, RenderTabArgs{Tab: "top", TopSubTab: "week"}); err == nil {
		t.Error("Expected error for invalid period")
	}
	if _, _, err := s.handleRenderTab(context.Background(), nil, RenderTabArgs{Tab: "mybets", MyBetsSubTab: "pending"}); err == nil {
		t.Error("Expected error for invalid mybets sub-tab")
	}
}

func TestHandleGetSnapshot_CachesUntilRefresh(t *testing.T) {
	p := &MockSnapshotProvider{Snap: testSnapshot()}
	s := newTestServer(p)
	ctx := context.Background()

	_, result, err := s.handleGetSnapshot(ctx, nil, SnapshotArgs{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Snapshot.Leaderboard) != 1 {
		t.Errorf("Expected 1 leaderboard entry, got %d", len(result.Snapshot.Leaderboard))
	}

	_, _, _ = s.handleGetSnapshot(ctx, nil, SnapshotArgs{})
	if p.Calls != 1 {
		t.Errorf("Expected cached snapshot on second call, provider called %d times", p.Calls)
	}

	_, _, _ = s.handleGetSnapshot(ctx, nil, SnapshotArgs{Refresh: true})
	if p.Calls != 2 {
		t.Errorf("Expected refresh to hit provider, called %d times", p.Calls)
	}
}

func TestHandleGetSnapshot_ProviderError(t *testing.T) {
	s := newTestServer(&MockSnapshotProvider{Err: errors.New("feed down")})

	_, _, err := s.handleGetSnapshot(context.Background(), nil, SnapshotArgs{})
	if err == nil || !strings.Contains(err.Error(), "feed down") {
		t.Errorf("Expected wrapped provider error, got %v", err)
	}
}

func TestBackgroundRefresh_StartStop(t *testing.T) {
	s := newTestServer(&MockSnapshotProvider{Snap: testSnapshot()})
	s.startBackgroundRefresh(DefaultConfig().RefreshInterval)
	s.startBackgroundRefresh(DefaultConfig().RefreshInterval)

	if err := s.Close(); err != nil {
		t.Errorf("Expected clean close, got %v", err)
	}
	if s.refreshCancel != nil {
		t.Error("Expected refresh worker to be stopped")
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ServerName != "betboard" {
		t.Errorf("Expected server name 'betboard', got %q", cfg.ServerName)
	}
	if cfg.LoadTimeout <= 0 || cfg.RefreshInterval <= 0 {
		t.Errorf("Expected positive durations, got %+v", cfg)
	}
}
