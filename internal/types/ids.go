package types

import "github.com/google/uuid"

// NewExpansionID generates a UUIDv7 expansion identifier.
// Time-ordered IDs ensure sequential inserts cluster in B-tree pages.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewExpansionID() ExpansionID {
	return ExpansionID(uuid.Must(uuid.NewV7()).String())
}

// NewRuleID generates a UUIDv7 rule identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewRuleID() RuleID {
	return RuleID(uuid.Must(uuid.NewV7()).String())
}

// NewEquipmentID generates a UUIDv7 equipment identifier.
func NewEquipmentID() EquipmentID {
	return EquipmentID(uuid.Must(uuid.NewV7()).String())
}

// NewFighterID generates a UUIDv7 fighter identifier.
func NewFighterID() FighterID {
	return FighterID(uuid.Must(uuid.NewV7()).String())
}

// NewListID generates a UUIDv7 list identifier.
func NewListID() ListID {
	return ListID(uuid.Must(uuid.NewV7()).String())
}

// ParseExpansionID validates and converts a string to ExpansionID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the system.
func ParseExpansionID(s string) (ExpansionID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", err
	}
	return ExpansionID(s), nil
}

// ParseListID validates and converts a string to ListID.
func ParseListID(s string) (ListID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", err
	}
	return ListID(s), nil
}

// ParseFighterID validates and converts a string to FighterID.
func ParseFighterID(s string) (FighterID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", err
	}
	return FighterID(s), nil
}
