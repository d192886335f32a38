package expansion

import (
	"sort"

	"github.com/rosterkeeper/rosterkeeper/internal/types"
)

/*
 * Bulk resolution over an in-memory catalog snapshot.
 *
 * Applicable uses the two-phase shape: phase one evaluates each distinct
 * rule once to build the candidate-rule set; phase two keeps expansions
 * whose matched-rule count equals their total rule count (exact-set
 * conjunction, zero-rule expansions excluded). This avoids re-running Match
 * per rule per expansion when rules are shared across the catalog, and is
 * observably identical to evaluating AppliesTo on every expansion. The SQL
 * rendition of the same query lives in internal/core/catalog.
 *
 * ItemsForEquipment short-circuits before any rule evaluation when no item
 * anywhere references the (equipment, profile) key. The guard is a pure
 * performance measure and cannot change results: with no items for the key,
 * the filtered result would be empty regardless of which expansions apply.
 *
 * ExpansionEquipment aggregates items of applicable expansions into one
 * offer per equipment id. Base-level and profile-level cost overrides are
 * tracked separately; when several expansions override the same key, the
 * lowest effective cost wins, which keeps the result independent of
 * expansion iteration order.
 */

// Catalog is an immutable content snapshot for evaluation: expansions with
// their resolved rules, expansion items, and equipment/profile lookups.
type Catalog struct {
	Expansions []Expansion
	Items      []Item
	Equipment  map[types.EquipmentID]types.Equipment
	Profiles   map[types.WeaponProfileID]types.WeaponProfile
}

// Applicable returns the expansions that apply to the input. The result is
// deduplicated; order is unspecified.
func (c *Catalog) Applicable(in Input) []Expansion {
	// Phase 1: candidate-rule set, one Match per distinct rule.
	candidates := make(map[types.RuleID]bool)
	seen := make(map[types.RuleID]bool)
	for _, e := range c.Expansions {
		for _, r := range e.Rules {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			if r.Match(in) {
				candidates[r.ID] = true
			}
		}
	}

	// Phase 2: keep expansions where matched count equals total count.
	var out []Expansion
	for _, e := range c.Expansions {
		if len(e.Rules) == 0 {
			continue
		}
		matched := 0
		for _, r := range e.Rules {
			if candidates[r.ID] {
				matched++
			}
		}
		if matched == len(e.Rules) {
			out = append(out, e)
		}
	}
	return out
}

// ItemsForEquipment returns items for the (equipment, profile) key whose
// owning expansion applies to the input. An empty profile selects base
// equipment items. Returns nil immediately when no item in the catalog
// references the key, without evaluating any rule.
func (c *Catalog) ItemsForEquipment(in Input, equipment types.EquipmentID, profile types.WeaponProfileID) []Item {
	exists := false
	for _, it := range c.Items {
		if it.Equipment == equipment && it.WeaponProfile == profile {
			exists = true
			break
		}
	}
	if !exists {
		return nil
	}

	applicable := make(map[types.ExpansionID]bool)
	for _, e := range c.Applicable(in) {
		applicable[e.ID] = true
	}

	var out []Item
	for _, it := range c.Items {
		if it.Equipment == equipment && it.WeaponProfile == profile && applicable[it.Expansion] {
			out = append(out, it)
		}
	}
	return out
}

// EquipmentOffer is one equipment entry unlocked by applicable expansions,
// annotated with its cost overrides. BaseOverride nil means the equipment's
// native cost applies. ProfileOverrides holds the profiles listed by items,
// nil value meaning the profile is offered at its native cost.
type EquipmentOffer struct {
	Equipment        types.Equipment
	BaseOverride     *int
	ProfileOverrides map[types.WeaponProfileID]*int
}

// EffectiveCost is the base purchase cost after overrides.
func (o EquipmentOffer) EffectiveCost() int {
	if o.BaseOverride != nil {
		return *o.BaseOverride
	}
	return o.Equipment.Cost
}

// ProfileCost resolves the effective cost of one offered profile: the
// override when set, otherwise the profile's native cost. The second return
// is false when the profile is not part of the offer.
func (o EquipmentOffer) ProfileCost(profile types.WeaponProfile) (int, bool) {
	override, ok := o.ProfileOverrides[profile.ID]
	if !ok {
		return 0, false
	}
	if override != nil {
		return *override, true
	}
	return profile.Cost, true
}

// ExpansionEquipment returns the deduplicated equipment unlocked by all
// applicable expansions, each annotated with base and per-profile cost
// overrides. A key listed by a single item takes that item's cost as-is,
// raised or discounted; only when multiple expansions list the same key
// does the lowest effective cost win. Output is sorted by equipment name
// for stable display; callers must not read meaning into the order.
func (c *Catalog) ExpansionEquipment(in Input) []EquipmentOffer {
	offers := make(map[types.EquipmentID]*EquipmentOffer)
	baseListed := make(map[types.EquipmentID]bool)

	for _, e := range c.Applicable(in) {
		for _, it := range c.Items {
			if it.Expansion != e.ID {
				continue
			}
			equipment, ok := c.Equipment[it.Equipment]
			if !ok {
				continue
			}
			offer, ok := offers[it.Equipment]
			if !ok {
				offer = &EquipmentOffer{
					Equipment:        equipment,
					ProfileOverrides: make(map[types.WeaponProfileID]*int),
				}
				offers[it.Equipment] = offer
			}
			if it.WeaponProfile == "" {
				if !baseListed[it.Equipment] {
					baseListed[it.Equipment] = true
					offer.BaseOverride = it.Cost
					continue
				}
				offer.BaseOverride = mergeOverride(offer.BaseOverride, it.Cost, equipment.Cost)
				continue
			}
			profile, ok := c.Profiles[it.WeaponProfile]
			if !ok {
				continue
			}
			current, listed := offer.ProfileOverrides[it.WeaponProfile]
			if !listed {
				offer.ProfileOverrides[it.WeaponProfile] = it.Cost
				continue
			}
			offer.ProfileOverrides[it.WeaponProfile] = mergeOverride(current, it.Cost, profile.Cost)
		}
	}

	out := make([]EquipmentOffer, 0, len(offers))
	for _, offer := range offers {
		out = append(out, *offer)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Equipment.Name != out[j].Equipment.Name {
			return out[i].Equipment.Name < out[j].Equipment.Name
		}
		return out[i].Equipment.ID < out[j].Equipment.ID
	})
	return out
}

// mergeOverride combines two cost overrides for the same key, keeping the
// one with the lower effective cost. nil stands for the native cost.
func mergeOverride(current, incoming *int, native int) *int {
	currentCost := native
	if current != nil {
		currentCost = *current
	}
	incomingCost := native
	if incoming != nil {
		incomingCost = *incoming
	}
	if incomingCost < currentCost {
		return incoming
	}
	return current
}
