package feed

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"betboard/internal/board"
)

// DemoConfig sizes the generated data set.
type DemoConfig struct {
	Players      int
	OngoingBets  int
	EndedBets    int
	TopPerPeriod int
}

func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Players:      8,
		OngoingBets:  4,
		EndedBets:    6,
		TopPerPeriod: 3,
	}
}

// DemoProvider generates a plausible snapshot with a seeded faker.
type DemoProvider struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	cfg   DemoConfig
	seed  int64
}

// NewDemoProvider creates a provider; seed 0 means time based.
func NewDemoProvider(seed int64, cfg DemoConfig) *DemoProvider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DemoProvider{
		faker: gofakeit.New(uint64(seed)),
		cfg:   cfg,
		seed:  seed,
	}
}

func (p *DemoProvider) Snapshot(ctx context.Context) (*board.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	snap := &board.Snapshot{
		Leaderboard: p.leaderboard(),
		OngoingBets: p.ongoing(),
		EndedBets:   p.ended(),
		TopPlayers:  board.TopPlayers{},
	}
	for _, period := range board.Periods {
		snap.TopPlayers[period] = p.top(period)
	}
	snap.Normalize()

	log.WithField("seed", p.seed).Debug("demo snapshot generated")
	return snap, nil
}

func (p *DemoProvider) leaderboard() []board.LeaderboardEntry {
	statuses := []string{board.StatusWin, board.StatusLoss, "pending", ""}
	out := make([]board.LeaderboardEntry, 0, p.cfg.Players)
	for i := 0; i < p.cfg.Players; i++ {
		out = append(out, board.LeaderboardEntry{
			Name:   p.faker.FirstName() + " " + p.faker.LastName(),
			Score:  float64(p.faker.Number(1, 99)),
			Status: statuses[p.faker.Number(0, len(statuses)-1)],
		})
	}
	return out
}

func (p *DemoProvider) ongoing() []board.OngoingBet {
	out := make([]board.OngoingBet, 0, p.cfg.OngoingBets)
	for i := 0; i < p.cfg.OngoingBets; i++ {
		score := float64(p.faker.Number(1, 40))
		out = append(out, board.OngoingBet{
			ID:         betID(),
			Score:      score,
			CurrentWin: round2(score * p.faker.Float64Range(1.5, 12)),
		})
	}
	return out
}

func (p *DemoProvider) ended() []board.EndedBet {
	out := make([]board.EndedBet, 0, p.cfg.EndedBets)
	for i := 0; i < p.cfg.EndedBets; i++ {
		status := board.StatusLoss
		if p.faker.Bool() {
			status = board.StatusWin
		}
		out = append(out, board.EndedBet{
			ID:        betID(),
			BetAmount: float64(p.faker.Number(5, 500)),
			Status:    status,
		})
	}
	return out
}

func (p *DemoProvider) top(period board.Period) []board.TopPlayerEntry {
	end := time.Now()
	start := end.AddDate(0, 0, -1)
	layout := "15:04"
	switch period {
	case board.PeriodMonth:
		start = end.AddDate(0, -1, 0)
		layout = "Jan 02"
	case board.PeriodYear:
		start = end.AddDate(-1, 0, 0)
		layout = "Jan 2006"
	}

	out := make([]board.TopPlayerEntry, 0, p.cfg.TopPerPeriod)
	for i := 0; i < p.cfg.TopPerPeriod; i++ {
		bet := float64(p.faker.Number(10, 1000))
		out = append(out, board.TopPlayerEntry{
			Date:      p.faker.DateRange(start, end).Format(layout),
			Avatar:    initials(p.faker.FirstName(), p.faker.LastName()),
			BetAmount: bet,
			WinAmount: round2(bet * p.faker.Float64Range(1.1, 8)),
			Round:     p.faker.Number(1, 999),
		})
	}
	return out
}

func betID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func initials(first, last string) string {
	var b strings.Builder
	for _, s := range []string{first, last} {
		if s != "" {
			b.WriteString(strings.ToUpper(string([]rune(s)[0])))
		}
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
