package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/sheetstack/app"
	"github.com/jask/sheetstack/internal/config"
	"github.com/jask/sheetstack/internal/store"
)

func main() {
	root := &cobra.Command{
		Use:          "sheetstack",
		Short:        "Demo TUI for the sheetstack bottom-sheet lifecycle",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
				os.Setenv("SHEETSTACK_CONFIG", cfgPath)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			st, err := store.Open(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer st.Close()
			m, err := app.NewModel(cfg, st)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	root.Flags().String("config", "", "path to config file")
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
