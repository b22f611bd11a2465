package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/store"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check reachability of the credential and data endpoints",
	RunE:  StatusCmdRunE,
}

// StatusCmdRunE probes both endpoints concurrently and reports latency.
func StatusCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	client, err := CreateStoreClient(cmd, config)
	if err != nil {
		return err
	}
	rest := RestClientFromContext(cmd.Context())

	var tokenLatency, dataLatency time.Duration
	var g errgroup.Group

	g.Go(func() error {
		start := time.Now()
		if _, err := store.RequestToken(cmd.Context(), rest, config.TokenUrl); err != nil {
			return err
		}
		tokenLatency = time.Since(start)
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		if _, err := client.FetchPage(cmd.Context(), store.SortSpec{}, store.FilterSet{}, ""); err != nil {
			return err
		}
		dataLatency = time.Since(start)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "credential endpoint: ok (%s)\n", tokenLatency.Round(time.Millisecond))
	fmt.Fprintf(cmd.OutOrStdout(), "data endpoint: ok (%s)\n", dataLatency.Round(time.Millisecond))
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
