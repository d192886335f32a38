package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterkeeper/rosterkeeper/internal/core/catalog"
	"github.com/rosterkeeper/rosterkeeper/internal/core/db"
	"github.com/rosterkeeper/rosterkeeper/internal/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show a list's house and active attribute values",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listIDFlag, "list-id", "", "list to show (required)")
	_ = listCmd.MarkFlagRequired("list-id")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	listID, err := types.ParseListID(listIDFlag)
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	queries, err := db.LoadQueries(database)
	if err != nil {
		return fmt.Errorf("failed to load queries: %w", err)
	}
	store := catalog.NewStore(queries)

	summary, err := store.LoadListSummary(listID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (house: %s)\n", summary.Name, summary.House.Name)
	for _, sel := range summary.Values {
		fmt.Printf("  %s: %s\n", sel.Attribute.Name, sel.Value.Name)
	}
	return nil
}
