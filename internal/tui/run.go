package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/sprout/internal/dashboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the dashboard for board until the user quits or ctx is canceled.
func Run(ctx context.Context, board *dashboard.Board, opts ...Option) error {
	if board == nil {
		return fmt.Errorf("board is required")
	}

	p := tea.NewProgram(
		New(board, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
