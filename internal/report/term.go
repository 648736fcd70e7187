package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/lox/pokernow-stats/internal/analysis"
	"github.com/lox/pokernow-stats/internal/hands"
)

// Styles for the terminal summary.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Summary holds everything the terminal summary renders.
type Summary struct {
	Hands       int
	Players     int
	TargetName  string
	AveragePots map[hands.Street]decimal.Decimal
	Wins        []analysis.HandNet
	Losses      []analysis.HandNet
}

// Render formats the post-analysis terminal summary.
func Render(s Summary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("session summary"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %d hands, %d players\n", labelStyle.Render("Parsed:"), s.Hands, s.Players)

	b.WriteString(labelStyle.Render("Average pot by street:"))
	b.WriteString("\n")
	for _, street := range hands.Streets {
		fmt.Fprintf(&b, "  %-8s %s\n", street, s.AveragePots[street].StringFixed(2))
	}

	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Target player:"), s.TargetName)
	if len(s.Wins) == 0 && len(s.Losses) == 0 {
		b.WriteString(infoStyle.Render("no qualifying hands for this player"))
		b.WriteString("\n")
		return b.String()
	}

	if len(s.Wins) > 0 {
		b.WriteString(labelStyle.Render("Top winning hands:"))
		b.WriteString("\n")
		for _, w := range s.Wins {
			b.WriteString(winStyle.Render(netLine(w)))
			b.WriteString("\n")
		}
	}
	if len(s.Losses) > 0 {
		b.WriteString(labelStyle.Render("Top losing hands:"))
		b.WriteString("\n")
		for _, l := range s.Losses {
			b.WriteString(lossStyle.Render(netLine(l)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func netLine(n analysis.HandNet) string {
	cards := n.MyCards
	if cards == "" {
		cards = "??"
	}
	return fmt.Sprintf("  hand #%d  %s  net %s (pot %s)", n.HandNumber, cards, n.Net.String(), n.PotSize.String())
}
