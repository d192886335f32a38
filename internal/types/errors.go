package types

import "errors"

// Sentinel errors for RosterKeeper operations.
var (
	// ErrMissingList indicates an evaluation input was built without a list.
	// Rules are list-scoped; only the fighter is optional.
	ErrMissingList = errors.New("evaluation input requires a list")

	// ErrProfileMismatch indicates an expansion item's weapon profile does
	// not belong to the item's equipment. Surfaced at write time, never
	// during evaluation.
	ErrProfileMismatch = errors.New("weapon profile does not belong to equipment")

	// ErrDuplicateItem indicates a second expansion item for the same
	// (expansion, equipment, weapon profile) key.
	ErrDuplicateItem = errors.New("duplicate expansion item")

	// ErrCannotTakeLegacy indicates the base fighter's type does not allow
	// taking a legacy fighter.
	ErrCannotTakeLegacy = errors.New("fighter cannot take a legacy fighter")

	// ErrCannotBeLegacy indicates the chosen legacy fighter's type cannot
	// serve as a legacy.
	ErrCannotBeLegacy = errors.New("fighter cannot be used as a legacy fighter")

	// ErrUnknownRuleKind indicates a rule row with an unrecognized kind tag.
	ErrUnknownRuleKind = errors.New("unknown expansion rule kind")

	// ErrNotFound indicates a catalog record does not exist.
	ErrNotFound = errors.New("catalog record not found")
)
