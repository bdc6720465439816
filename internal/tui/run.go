package tui

import (
	"context"
	"fmt"

	"github.com/Makepad-fr/staff/internal/directory"
	"github.com/Makepad-fr/staff/internal/metrics"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Run starts the screen on the alt screen and blocks until the user quits.
func Run(ctx context.Context, src directory.Source, log *zap.Logger, m *metrics.Metrics, hdr Header) error {
	p := tea.NewProgram(New(ctx, src, log, m).WithHeader(hdr), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run screen: %w", err)
	}
	if fm, ok := final.(Model); ok && log != nil {
		log.Info("screen closed",
			zap.Stringer("status", fm.State().Status()),
			zap.Int("employees", len(fm.State().Employees())),
		)
	}
	return nil
}
