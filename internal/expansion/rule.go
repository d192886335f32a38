package expansion

import "github.com/rosterkeeper/rosterkeeper/internal/types"

/*
 * Expansion rule matching.
 *
 * A rule is one boolean predicate over an evaluation input. Three variants
 * exist, expressed as a tagged union (Kind plus per-variant fields) with
 * switch dispatch, so no runtime type inspection is needed:
 *
 *   - KindAttribute: the list has an active value for Attribute, and either
 *     AllowedValues is empty (any value acceptable) or one of the list's
 *     active values is in AllowedValues.
 *   - KindHouse: the list's house equals House.
 *   - KindFighterCategory: a fighter is present and its resolved category
 *     is in Categories.
 *
 * Match is a pure function of (rule, input). Absence of data (no fighter,
 * no active attribute value, unresolvable category) evaluates to false,
 * never to an error.
 */

// Kind tags the rule variant.
type Kind int

const (
	KindUnspecified Kind = iota
	KindAttribute
	KindHouse
	KindFighterCategory
)

// String returns the storage tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindHouse:
		return "house"
	case KindFighterCategory:
		return "fighter_category"
	default:
		return "unspecified"
	}
}

// ParseKind converts a storage tag back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "attribute":
		return KindAttribute, nil
	case "house":
		return KindHouse, nil
	case "fighter_category":
		return KindFighterCategory, nil
	default:
		return KindUnspecified, types.ErrUnknownRuleKind
	}
}

// Rule is one expansion rule. Only the fields of the tagged variant are
// meaningful; the rest stay zero. Rules are immutable content configuration
// and may be shared between expansions, so identity is carried by ID.
type Rule struct {
	ID   types.RuleID
	Kind Kind

	// KindAttribute fields. An empty AllowedValues set means any value is
	// acceptable, but the attribute must be set on the list.
	Attribute     types.AttributeID
	AllowedValues []types.AttributeValueID

	// KindHouse field.
	House types.HouseID

	// KindFighterCategory field.
	Categories []types.Category
}

// Match reports whether the rule matches the input. Pure; never errors for
// well-formed rules. Unknown kinds match nothing.
func (r Rule) Match(in Input) bool {
	switch r.Kind {
	case KindAttribute:
		return r.matchAttribute(in)
	case KindHouse:
		return in.List.House == r.House
	case KindFighterCategory:
		return r.matchFighterCategory(in)
	default:
		return false
	}
}

// matchAttribute checks the list's active values for the rule's attribute.
// No active value means no match regardless of AllowedValues.
func (r Rule) matchAttribute(in Input) bool {
	active := in.List.ActiveValues[r.Attribute]
	if len(active) == 0 {
		return false
	}
	if len(r.AllowedValues) == 0 {
		return true
	}
	for _, v := range active {
		for _, allowed := range r.AllowedValues {
			if v == allowed {
				return true
			}
		}
	}
	return false
}

// matchFighterCategory requires a fighter with a resolvable category.
func (r Rule) matchFighterCategory(in Input) bool {
	if in.Fighter == nil {
		return false
	}
	category := in.Fighter.Category
	if category == "" {
		return false
	}
	for _, c := range r.Categories {
		if category == c {
			return true
		}
	}
	return false
}
