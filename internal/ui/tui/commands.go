package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/ports"
	"github.com/advancedcpp/drillbox/internal/usecase"
)

// drillRunTimeout bounds interactive runs so a stuck drill cannot wedge the
// UI; blocking drills observe the deadline through their ctx.
const drillRunTimeout = 30 * time.Second

func runDrillCmd(d ports.Drill) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), drillRunTimeout)
		defer cancel()

		report := usecase.ExecuteDrill(ctx, d, domain.Params{}, nil)
		return drillDoneMsg{report: report}
	}
}
