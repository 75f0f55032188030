package components

import (
	"betboard/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ Component = (*TrendWidget)(nil)

// TrendWidget charts a series of win amounts in display order.
type TrendWidget struct {
	Title  string
	Chart  linechart.Model
	Series []float64
	Width  int
	Height int
}

func NewTrendWidget(title string, width, height int) *TrendWidget {
	return &TrendWidget{
		Title:  title,
		Chart:  linechart.New(width, height, 0, 1, 0, 1),
		Width:  width,
		Height: height,
	}
}

func (c *TrendWidget) Init() tea.Cmd {
	return nil
}

// SetSeries replaces the plotted values and rescales the axes to fit them.
func (c *TrendWidget) SetSeries(values []float64) {
	c.Series = append(c.Series[:0], values...)
	maxY := 1.0
	for _, v := range values {
		if v > maxY {
			maxY = v
		}
	}
	maxX := float64(len(values) - 1)
	if maxX < 1 {
		maxX = 1
	}
	// width, height, minX, maxX, minY, maxY
	c.Chart = linechart.New(c.Width, c.Height, 0, maxX, 0, maxY)
}

func (c *TrendWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		w := size.Width - 8
		if w > 10 {
			c.Resize(w, c.Height)
		}
	}
	return c, nil
}

func (c *TrendWidget) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

// View returns an empty string when there is nothing to draw.
func (c *TrendWidget) View() string {
	if len(c.Series) < 2 {
		return ""
	}
	c.Chart.Clear()
	for i := 0; i < len(c.Series)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.Series[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.Series[i+1]},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Foreground(styles.GoldColor).Render(c.Title),
			c.Chart.View(),
		),
	)
}
