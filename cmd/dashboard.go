package cmd

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/pager"
	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/tui"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Browse workflow definitions interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		config := LoadConfigFromCLI()
		slog.Debug("args", "config", config)
		if err := config.Validate(); err != nil {
			return err
		}

		client, err := CreateStoreClient(cmd, config)
		if err != nil {
			return errors.WithMessage(err, "unable to create store client")
		}

		model := tui.NewModel(cmd.Context(), pager.New(client), tui.ThemeByName(config.Theme))
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
