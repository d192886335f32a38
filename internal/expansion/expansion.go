package expansion

import (
	"fmt"

	"github.com/rosterkeeper/rosterkeeper/internal/types"
)

// Expansion is a named bundle of rules plus items. When every rule matches
// an input (AND semantics), the expansion's items become purchasable.
// Names are unique across the catalog.
type Expansion struct {
	ID    types.ExpansionID
	Name  string
	Rules []Rule
}

// AppliesTo reports whether the expansion applies to the input: every rule
// must match. An expansion with zero rules never applies; it is excluded,
// not vacuously true.
func (e Expansion) AppliesTo(in Input) bool {
	if len(e.Rules) == 0 {
		return false
	}
	for _, r := range e.Rules {
		if !r.Match(in) {
			return false
		}
	}
	return true
}

// Item is one (equipment, optional weapon profile) pair unlocked by an
// expansion. Cost overrides the equipment's or profile's native cost when
// set; nil means the native cost applies. The (Expansion, Equipment,
// WeaponProfile) key is unique within a catalog.
type Item struct {
	Expansion     types.ExpansionID
	Equipment     types.EquipmentID
	WeaponProfile types.WeaponProfileID // empty = base equipment item
	Cost          *int                  // nil = native cost
}

// ValidateItem checks write-time structural invariants for an item against
// the catalog: a set weapon profile must exist and belong to the item's
// equipment, and the (expansion, equipment, profile) key must be unused.
// Evaluation never re-checks these; violations are caught here, when
// content tooling writes the item.
func (c *Catalog) ValidateItem(it Item) error {
	if it.WeaponProfile != "" {
		profile, ok := c.Profiles[it.WeaponProfile]
		if !ok || profile.Equipment != it.Equipment {
			return fmt.Errorf("item for equipment %s: %w", it.Equipment, types.ErrProfileMismatch)
		}
	}
	for _, existing := range c.Items {
		if existing.Expansion == it.Expansion &&
			existing.Equipment == it.Equipment &&
			existing.WeaponProfile == it.WeaponProfile {
			return fmt.Errorf("item for equipment %s: %w", it.Equipment, types.ErrDuplicateItem)
		}
	}
	return nil
}

// AddItem validates and appends an item to the catalog.
func (c *Catalog) AddItem(it Item) error {
	if err := c.ValidateItem(it); err != nil {
		return err
	}
	c.Items = append(c.Items, it)
	return nil
}
