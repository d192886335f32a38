package expansion

import (
	"fmt"

	"github.com/rosterkeeper/rosterkeeper/internal/types"
)

/*
 * Combined equipment-list resolution.
 *
 * A roster fighter reads equipment-list entries from up to two source
 * fighters: its legacy content fighter (when set) and its own content
 * fighter, in that order. Availability is the union of both lists; cost
 * resolution walks sources in order, so on a key collision the legacy
 * entry's cost wins. Duplicate entries within one source resolve to the
 * earliest entry, deterministically.
 */

// EquipmentListEntry is one row of a content fighter's equipment list:
// equipment (optionally a specific weapon profile) offered at a fixed cost.
type EquipmentListEntry struct {
	Fighter       types.FighterID       `db:"fighter_id"`
	Equipment     types.EquipmentID     `db:"equipment_id"`
	WeaponProfile types.WeaponProfileID `db:"weapon_profile_id"` // empty = base equipment
	Cost          int                   `db:"cost"`
}

// ListFighter is the roster-level view needed for equipment-list
// resolution: the fighter's own content fighter and an optional legacy
// content fighter whose equipment list it additionally gains.
type ListFighter struct {
	ContentFighter types.FighterID
	LegacyFighter  types.FighterID // empty when no legacy
}

// EquipmentListFighters returns the source fighters whose equipment lists
// apply, legacy first when present. The order carries the precedence used
// by cost resolution.
func (f ListFighter) EquipmentListFighters() []types.FighterID {
	if f.LegacyFighter != "" {
		return []types.FighterID{f.LegacyFighter, f.ContentFighter}
	}
	return []types.FighterID{f.ContentFighter}
}

// ValidateLegacy enforces write-time legacy eligibility: the base fighter's
// type must allow taking a legacy, and the legacy fighter's type must allow
// serving as one. Evaluation assumes this has already been checked.
func ValidateLegacy(base, legacy types.Fighter) error {
	if !base.CanTakeLegacy {
		return fmt.Errorf("fighter type %q: %w", base.Type, types.ErrCannotTakeLegacy)
	}
	if !legacy.CanBeLegacy {
		return fmt.Errorf("fighter type %q: %w", legacy.Type, types.ErrCannotBeLegacy)
	}
	return nil
}

// EquipmentLists indexes equipment-list entries by source fighter,
// preserving entry order within each source.
type EquipmentLists struct {
	byFighter map[types.FighterID][]EquipmentListEntry
}

// NewEquipmentLists builds an index over the given entries.
func NewEquipmentLists(entries []EquipmentListEntry) *EquipmentLists {
	byFighter := make(map[types.FighterID][]EquipmentListEntry)
	for _, entry := range entries {
		byFighter[entry.Fighter] = append(byFighter[entry.Fighter], entry)
	}
	return &EquipmentLists{byFighter: byFighter}
}

// ResolveCost returns the equipment-list cost for the (equipment, profile)
// key for the given roster fighter. Sources are consulted legacy-first, so
// a legacy entry shadows a base entry for the same key. The second return
// is false when neither source lists the key; the caller then falls back to
// the equipment's or profile's native cost.
func (l *EquipmentLists) ResolveCost(f ListFighter, equipment types.EquipmentID, profile types.WeaponProfileID) (int, bool) {
	for _, source := range f.EquipmentListFighters() {
		for _, entry := range l.byFighter[source] {
			if entry.Equipment == equipment && entry.WeaponProfile == profile {
				return entry.Cost, true
			}
		}
	}
	return 0, false
}

// Contains reports whether the equipment appears in the equipment list of
// any source fighter. Union semantics: a fighter with a legacy gains the
// legacy's list in addition to its own.
func (l *EquipmentLists) Contains(f ListFighter, equipment types.EquipmentID) bool {
	for _, source := range f.EquipmentListFighters() {
		for _, entry := range l.byFighter[source] {
			if entry.Equipment == equipment {
				return true
			}
		}
	}
	return false
}

// Available returns the deduplicated equipment ids across all source
// fighters, in source order (legacy's list first).
func (l *EquipmentLists) Available(f ListFighter) []types.EquipmentID {
	seen := make(map[types.EquipmentID]bool)
	var out []types.EquipmentID
	for _, source := range f.EquipmentListFighters() {
		for _, entry := range l.byFighter[source] {
			if seen[entry.Equipment] {
				continue
			}
			seen[entry.Equipment] = true
			out = append(out, entry.Equipment)
		}
	}
	return out
}
