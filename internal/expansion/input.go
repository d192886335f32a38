// Package expansion implements the equipment-list expansion rule engine:
// declarative rules that unlock additional purchasable equipment for a gang
// list or fighter, and cost resolution across expansion and equipment-list
// sources.
//
// The package is pure computation over caller-supplied snapshots. It holds
// no storage handles and no shared state; concurrent evaluations are
// independent. Storage-backed equivalents of the bulk queries live in
// internal/core/catalog.
package expansion

import "github.com/rosterkeeper/rosterkeeper/internal/types"

// ListContext is the evaluation-scoped view of a gang list: its house and
// the currently active (non-archived) attribute value assignments, keyed by
// attribute. Archived assignments must not appear here; the engine treats
// every entry as active.
type ListContext struct {
	ID           types.ListID
	House        types.HouseID
	ActiveValues map[types.AttributeID][]types.AttributeValueID
}

// FighterContext is the evaluation-scoped view of a fighter. Category is
// empty when the fighter's category cannot be resolved; category rules
// treat that as a non-match.
type FighterContext struct {
	ID       types.FighterID
	Category types.Category
}

// Input carries the inputs for one rule evaluation. Constructed per call
// via NewInput and never mutated afterwards.
type Input struct {
	List    ListContext
	Fighter *FighterContext
}

// NewInput builds an evaluation input. The list is required: every rule
// variant is list-scoped, so a missing list fails fast with
// types.ErrMissingList rather than producing silently wrong results.
// The fighter is optional and may be nil.
func NewInput(list ListContext, fighter *FighterContext) (Input, error) {
	if list.ID == "" {
		return Input{}, types.ErrMissingList
	}
	return Input{List: list, Fighter: fighter}, nil
}
