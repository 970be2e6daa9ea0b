package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janekbaraniewski/ecomdash/internal/config"
	"github.com/janekbaraniewski/ecomdash/internal/tui"
)

func runDashboard(rt runtimeConfig) error {
	model := tui.NewModel(tui.Options{
		ChartHeight: rt.cfg.UI.ChartHeight,
		ConfigPath:  rt.path,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	err := config.Watch(ctx, rt.path, func(cfg config.Config) {
		program.Send(tui.ThemeChangedMsg{Name: cfg.Theme})
	})
	if err != nil {
		log.Printf("config watch disabled: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
			program.Quit()
		case <-ctx.Done():
		}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
