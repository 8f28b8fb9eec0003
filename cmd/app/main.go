package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Elish84/Gantt/internal/config"
	"github.com/Elish84/Gantt/internal/store"
	"github.com/Elish84/Gantt/internal/tui"
	"github.com/Elish84/Gantt/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "This program needs an interactive terminal.")
		os.Exit(1)
	}

	// 1. Initialize storage
	dataRoot := util.DataDir(config.AppName)
	util.MustSucceed("create data dir", os.MkdirAll(dataRoot, 0o755))
	s, err := store.Open(filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	// 2. Load view settings; a broken config falls back to defaults.
	configDir := util.ConfigDir(config.AppName)
	cfg, err := config.LoadViewConfig(configDir)
	if err != nil {
		util.LogError("load view config", err)
		cfg = config.DefaultViewConfig()
	}
	selections := store.NewSelectionStore(configDir)

	// 3. Start the program
	model := tui.NewModel(s, selections, cfg, configDir, util.ExportsDir(config.AppName))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
