package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterkeeper/rosterkeeper/internal/core/catalog"
	"github.com/rosterkeeper/rosterkeeper/internal/core/db"
	"github.com/rosterkeeper/rosterkeeper/internal/types"
)

var listFighterIDFlag string

var equipmentListCmd = &cobra.Command{
	Use:   "equipment-list",
	Short: "Show a roster fighter's combined equipment list with resolved costs",
	RunE:  runEquipmentList,
}

func init() {
	rootCmd.AddCommand(equipmentListCmd)
	equipmentListCmd.Flags().StringVar(&listFighterIDFlag, "fighter", "", "roster fighter id (required)")
	_ = equipmentListCmd.MarkFlagRequired("fighter")
}

func runEquipmentList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
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

	fighter, err := store.ListFighter(listFighterIDFlag)
	if err != nil {
		return err
	}
	lists, err := store.EquipmentLists(fighter)
	if err != nil {
		return err
	}
	snapshot, err := store.LoadCatalog()
	if err != nil {
		return err
	}

	available := lists.Available(fighter)
	if len(available) == 0 {
		fmt.Println("equipment list is empty")
		return nil
	}
	for _, id := range available {
		name := string(id)
		if e, ok := snapshot.Equipment[id]; ok {
			name = e.Name
		}
		if cost, ok := lists.ResolveCost(fighter, id, ""); ok {
			fmt.Printf("%-30s %s\n", name, types.FormatCost(cost))
		} else {
			fmt.Printf("%-30s profile-priced\n", name)
		}
	}
	return nil
}
