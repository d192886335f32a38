// Package types provides domain models shared across RosterKeeper components.
//
// Zero-dependency design: types.go and errors.go use only the standard
// library so the evaluation core stays free of storage concerns. ID utilities
// in ids.go import uuid but are isolated for selective inclusion.
package types

import "fmt"

// HouseID identifies a gang house (e.g. Delaque, Goliath).
// String alias enables type safety while maintaining JSON string serialization.
type HouseID string

// AttributeID identifies a gang attribute (e.g. Affiliation, Alignment).
type AttributeID string

// AttributeValueID identifies one value of a gang attribute
// (e.g. "Water Guild" under Affiliation).
type AttributeValueID string

// EquipmentID identifies a piece of equipment in the content catalog.
type EquipmentID string

// WeaponProfileID identifies a weapon profile belonging to one equipment
// entry (e.g. a specific ammo type).
type WeaponProfileID string

// FighterID identifies a content fighter (the catalog archetype, not a
// roster instance).
type FighterID string

// ListID identifies a gang list (a player's roster).
type ListID string

// ExpansionID identifies an equipment-list expansion.
type ExpansionID string

// RuleID identifies an expansion rule. Rules are shared between expansions,
// so IDs matter for candidate-set bookkeeping, not just storage keys.
type RuleID string

// Category classifies a fighter within a gang. Values mirror the game's
// fixed category set; content tooling never invents new ones at runtime.
type Category string

const (
	CategoryLeader       Category = "LEADER"
	CategoryChampion     Category = "CHAMPION"
	CategoryGanger       Category = "GANGER"
	CategoryJuve         Category = "JUVE"
	CategorySpecialist   Category = "SPECIALIST"
	CategoryProspect     Category = "PROSPECT"
	CategoryCrew         Category = "CREW"
	CategoryVehicle      Category = "VEHICLE"
	CategoryExoticBeast  Category = "EXOTIC_BEAST"
	CategoryBrute        Category = "BRUTE"
	CategoryHangerOn     Category = "HANGER_ON"
	CategoryHiredGun     Category = "HIRED_GUN"
	CategoryHouseAgent   Category = "HOUSE_AGENT"
	CategoryBountyHunter Category = "BOUNTY_HUNTER"
	CategoryStash        Category = "STASH"
)

// Categories lists every known fighter category.
var Categories = []Category{
	CategoryLeader,
	CategoryChampion,
	CategoryGanger,
	CategoryJuve,
	CategorySpecialist,
	CategoryProspect,
	CategoryCrew,
	CategoryVehicle,
	CategoryExoticBeast,
	CategoryBrute,
	CategoryHangerOn,
	CategoryHiredGun,
	CategoryHouseAgent,
	CategoryBountyHunter,
	CategoryStash,
}

// Valid reports whether c is one of the known fighter categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// House is a gang house from the content catalog.
type House struct {
	ID   HouseID `db:"id"`
	Name string  `db:"name"`
}

// Attribute is a gang attribute definition (e.g. Affiliation).
type Attribute struct {
	ID   AttributeID `db:"id"`
	Name string      `db:"name"`
}

// AttributeValue is one selectable value of an attribute.
type AttributeValue struct {
	ID        AttributeValueID `db:"id"`
	Attribute AttributeID      `db:"attribute_id"`
	Name      string           `db:"name"`
}

// Equipment is a catalog equipment entry. Cost is the native cost in
// credits; expansions and equipment lists may override it.
type Equipment struct {
	ID       EquipmentID `db:"id"`
	Name     string      `db:"name"`
	Category string      `db:"category"`
	Cost     int         `db:"cost"`
}

// WeaponProfile is a purchasable profile of one equipment entry.
// Equipment is the owning entry; a profile never floats free.
type WeaponProfile struct {
	ID        WeaponProfileID `db:"id"`
	Equipment EquipmentID     `db:"equipment_id"`
	Name      string          `db:"name"`
	Cost      int             `db:"cost"`
}

// Fighter is a content fighter archetype. CanTakeLegacy and CanBeLegacy
// gate the legacy mechanic: a roster fighter may borrow the equipment list
// of a legacy fighter only when both flags line up.
type Fighter struct {
	ID            FighterID `db:"id"`
	Type          string    `db:"type"`
	Category      Category  `db:"category"`
	House         HouseID   `db:"house_id"`
	BaseCost      int       `db:"base_cost"`
	CanTakeLegacy bool      `db:"can_take_legacy"`
	CanBeLegacy   bool      `db:"can_be_legacy"`
}

// FormatCost renders a credit amount for display, e.g. "25¢" or "-10¢".
func FormatCost(cost int) string {
	return fmt.Sprintf("%d¢", cost)
}

// FormatCostSigned renders a credit amount with an explicit sign for
// positive values, e.g. "+5¢". Negative values keep their own sign and
// zero stays unsigned.
func FormatCostSigned(cost int) string {
	if cost > 0 {
		return fmt.Sprintf("+%d¢", cost)
	}
	return fmt.Sprintf("%d¢", cost)
}
