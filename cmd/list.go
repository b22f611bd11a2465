package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/store"
	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/utils"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of workflow definitions",
	RunE:  ListCmdRunE,
}

// ListCmdRunE fetches a single page and prints it as a table.
func ListCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	client, err := CreateStoreClient(cmd, config)
	if err != nil {
		return errors.WithMessage(err, "unable to create store client")
	}

	filter := FilterSetFromCLI("list")
	sort := SortSpecFromFlag(viper.GetString("list-sort"))

	page, err := client.FetchPage(cmd.Context(), sort, filter, "")
	if err != nil {
		return errors.WithMessage(err, "unable to fetch workflows")
	}

	printPage(cmd, page)
	return nil
}

// FilterSetFromCLI builds the filter set from a command's filter flags.
// The prefix keeps viper keys distinct between commands sharing flag names.
func FilterSetFromCLI(prefix string) store.FilterSet {
	filter := store.FilterSet{Search: viper.GetString(prefix + "-search")}
	if category := viper.GetInt(prefix + "-category"); category >= 0 {
		filter.Category = utils.Ptr(store.Category(category))
	}
	if state := viper.GetInt(prefix + "-state"); state >= 0 {
		filter.State = utils.Ptr(store.State(state))
	}
	return filter
}

func printPage(cmd *cobra.Command, page *store.Page) {
	tbl := table.New("NAME", "UNIQUE NAME", "CATEGORY", "STATE", "MODIFIED")
	tbl.WithWriter(cmd.OutOrStdout())
	for _, w := range page.Records {
		modified := ""
		if w.ModifiedOn != nil {
			modified = w.ModifiedOn.Format("2006-01-02 15:04:05")
		}
		tbl.AddRow(w.Name, w.UniqueName, w.Category.String(), w.StateCode.String(), modified)
	}
	tbl.Print()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d record(s)", len(page.Records), page.TotalCount)
	if page.HasNext() {
		fmt.Fprint(cmd.OutOrStdout(), " — more available")
	}
	fmt.Fprintln(cmd.OutOrStdout())
}

// SetupFilterFlags registers the shared filter/sort flags under
// prefix-qualified viper keys.
func SetupFilterFlags(command *cobra.Command, prefix string) {
	command.Flags().String("search", "", "search term matched against name and unique name")
	if err := viper.BindPFlag(prefix+"-search", command.Flags().Lookup("search")); err != nil {
		slog.Error("unable to bind flag", "error", err)
	}

	command.Flags().Int("category", -1, "workflow category filter (-1 = all)")
	if err := viper.BindPFlag(prefix+"-category", command.Flags().Lookup("category")); err != nil {
		slog.Error("unable to bind flag", "error", err)
	}

	command.Flags().Int("state", -1, "workflow state filter (-1 = all)")
	if err := viper.BindPFlag(prefix+"-state", command.Flags().Lookup("state")); err != nil {
		slog.Error("unable to bind flag", "error", err)
	}

	command.Flags().String("sort", "", "sort spec, e.g. 'name:asc' (default modifiedon desc)")
	if err := viper.BindPFlag(prefix+"-sort", command.Flags().Lookup("sort")); err != nil {
		slog.Error("unable to bind flag", "error", err)
	}
}

// SetupListCmdFlags registers the list command flags.
func SetupListCmdFlags(command *cobra.Command) {
	SetupFilterFlags(command, "list")
}

func init() {
	SetupListCmdFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}
