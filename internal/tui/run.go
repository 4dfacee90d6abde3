package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/envgrade/envgrade/internal/types"
)

// Run starts the interactive findings browser for one scan result.
func Run(res *types.ScanResult, source string) error {
	m := NewModel(res, source)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
