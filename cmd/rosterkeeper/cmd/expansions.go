package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rosterkeeper/rosterkeeper/internal/core/catalog"
	"github.com/rosterkeeper/rosterkeeper/internal/core/db"
	"github.com/rosterkeeper/rosterkeeper/internal/expansion"
	"github.com/rosterkeeper/rosterkeeper/internal/types"
)

var (
	listIDFlag    string
	fighterIDFlag string
)

var expansionsCmd = &cobra.Command{
	Use:   "expansions",
	Short: "Show expansions applicable to a list (and optional fighter)",
	RunE:  runExpansions,
}

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "Show expansion equipment offered to a list (and optional fighter)",
	RunE:  runEquipment,
}

func init() {
	rootCmd.AddCommand(expansionsCmd)
	rootCmd.AddCommand(equipmentCmd)

	for _, c := range []*cobra.Command{expansionsCmd, equipmentCmd} {
		c.Flags().StringVar(&listIDFlag, "list-id", "", "list to evaluate against (required)")
		c.Flags().StringVar(&fighterIDFlag, "fighter-id", "", "content fighter to evaluate against")
		_ = c.MarkFlagRequired("list-id")
	}
}

// openStore opens the database and prepares the catalog store plus the
// evaluation input for the flag-selected list and fighter.
func openStore() (*catalog.Store, expansion.Input, func(), error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, expansion.Input{}, nil, err
	}

	listID, err := types.ParseListID(listIDFlag)
	if err != nil {
		return nil, expansion.Input{}, nil, err
	}
	var fighterID types.FighterID
	if fighterIDFlag != "" {
		fighterID, err = types.ParseFighterID(fighterIDFlag)
		if err != nil {
			return nil, expansion.Input{}, nil, err
		}
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, expansion.Input{}, nil, fmt.Errorf("failed to open database: %w", err)
	}
	closeDB := func() { database.Close() }

	queries, err := db.LoadQueries(database)
	if err != nil {
		closeDB()
		return nil, expansion.Input{}, nil, fmt.Errorf("failed to load queries: %w", err)
	}

	store := catalog.NewStore(queries)
	in, err := store.LoadInput(listID, fighterID)
	if err != nil {
		closeDB()
		return nil, expansion.Input{}, nil, err
	}
	return store, in, closeDB, nil
}

func runExpansions(cmd *cobra.Command, args []string) error {
	store, in, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	ids, err := store.ApplicableExpansionIDs(in)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("no applicable expansions")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func runEquipment(cmd *cobra.Command, args []string) error {
	store, in, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	snapshot, err := store.LoadCatalog()
	if err != nil {
		return err
	}

	offers := snapshot.ExpansionEquipment(in)
	if len(offers) == 0 {
		fmt.Println("no expansion equipment")
		return nil
	}
	for _, offer := range offers {
		fmt.Println(offerLine(offer.Equipment.Name, offer.EffectiveCost(), offer.Equipment.Cost, 30))

		profiles := make([]types.WeaponProfile, 0, len(offer.ProfileOverrides))
		for id := range offer.ProfileOverrides {
			if p, ok := snapshot.Profiles[id]; ok {
				profiles = append(profiles, p)
			}
		}
		sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
		for _, p := range profiles {
			if cost, ok := offer.ProfileCost(p); ok {
				fmt.Println("  " + offerLine(p.Name, cost, p.Cost, 28))
			}
		}
	}
	return nil
}

// offerLine renders one offer row; raised or discounted costs carry the
// signed delta against the native cost, e.g. "Lasgun  40¢ (+10¢)".
func offerLine(name string, effective, native, width int) string {
	line := fmt.Sprintf("%-*s %s", width, name, types.FormatCost(effective))
	if delta := effective - native; delta != 0 {
		line += fmt.Sprintf(" (%s)", types.FormatCostSigned(delta))
	}
	return line
}
