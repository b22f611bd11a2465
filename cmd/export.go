package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/store"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all matching workflow definitions as JSON",
	RunE:  ExportCmdRunE,
}

// ExportCmdRunE walks the full cursor chain sequentially and writes every
// record. The remote cursor is forward-only, so each page's nextLink is
// re-issued verbatim until it runs out.
func ExportCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	client, err := CreateStoreClient(cmd, config)
	if err != nil {
		return errors.WithMessage(err, "unable to create store client")
	}

	filter := FilterSetFromCLI("export")
	sort := SortSpecFromFlag(viper.GetString("export-sort"))

	var records []store.Workflow
	locator := ""
	for {
		page, err := client.FetchPage(cmd.Context(), sort, filter, locator)
		if err != nil {
			return errors.WithMessage(err, "unable to fetch workflows")
		}
		records = append(records, page.Records...)
		if !page.HasNext() {
			break
		}
		locator = *page.NextLink
	}
	slog.Info("export complete", "records", len(records))

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "unable to marshal workflows")
	}

	if output := viper.GetString("export-output"); output != "" {
		return os.WriteFile(output, data, 0o644)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// SetupExportCmdFlags registers the export command flags.
func SetupExportCmdFlags(command *cobra.Command) {
	SetupFilterFlags(command, "export")

	command.Flags().StringP("output", "o", "", "write JSON to this file instead of stdout")
	if err := viper.BindPFlag("export-output", command.Flags().Lookup("output")); err != nil {
		slog.Error("unable to bind flag", "error", err)
	}
}

func init() {
	SetupExportCmdFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}
