package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/registry"
)

// Run starts the interactive visualizer and blocks until the user quits.
func Run(reg *registry.Registry, cfg *config.Config, log logrus.FieldLogger) error {
	_, err := tea.NewProgram(NewModel(reg, cfg, log), tea.WithAltScreen()).Run()
	return err
}
