// Package catalog provides the storage-backed view of the content catalog:
// snapshot loading for the in-memory rule engine and the storage-side
// rendition of the applicable-expansion query.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rosterkeeper/rosterkeeper/internal/core/db"
	"github.com/rosterkeeper/rosterkeeper/internal/expansion"
	"github.com/rosterkeeper/rosterkeeper/internal/types"
)

// Store reads catalog records through named queries. It holds no state
// beyond the query registry; every method is an independent read.
type Store struct {
	queries *db.Queries
}

// NewStore creates a store over loaded queries.
func NewStore(queries *db.Queries) *Store {
	return &Store{queries: queries}
}

type listRow struct {
	ID    types.ListID  `db:"id"`
	Name  string        `db:"name"`
	House types.HouseID `db:"house_id"`
}

type activeValueRow struct {
	Attribute types.AttributeID      `db:"attribute_id"`
	Value     types.AttributeValueID `db:"attribute_value_id"`
}

type listFighterRow struct {
	ID             string          `db:"id"`
	List           types.ListID    `db:"list_id"`
	Name           string          `db:"name"`
	ContentFighter types.FighterID `db:"content_fighter_id"`
	LegacyFighter  sql.NullString  `db:"legacy_fighter_id"`
}

type ruleRow struct {
	ID        types.RuleID   `db:"id"`
	Kind      string         `db:"kind"`
	Attribute sql.NullString `db:"attribute_id"`
	House     sql.NullString `db:"house_id"`
}

type ruleValueRow struct {
	Rule  types.RuleID           `db:"rule_id"`
	Value types.AttributeValueID `db:"attribute_value_id"`
}

type ruleCategoryRow struct {
	Rule     types.RuleID   `db:"rule_id"`
	Category types.Category `db:"category"`
}

type expansionRow struct {
	ID   types.ExpansionID `db:"id"`
	Name string            `db:"name"`
}

type ruleLinkRow struct {
	Expansion types.ExpansionID `db:"expansion_id"`
	Rule      types.RuleID      `db:"rule_id"`
}

type itemRow struct {
	Expansion     types.ExpansionID     `db:"expansion_id"`
	Equipment     types.EquipmentID     `db:"equipment_id"`
	WeaponProfile types.WeaponProfileID `db:"weapon_profile_id"`
	Cost          sql.NullInt64         `db:"cost"`
}

// LoadInput builds an evaluation input for a list and an optional content
// fighter. A zero fighter id leaves the fighter absent. Returns
// types.ErrNotFound (wrapped) when the list or fighter does not exist.
func (s *Store) LoadInput(listID types.ListID, fighterID types.FighterID) (expansion.Input, error) {
	var list listRow
	if err := s.queries.Get("list-by-id", &list, string(listID)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return expansion.Input{}, fmt.Errorf("list %s: %w", listID, types.ErrNotFound)
		}
		return expansion.Input{}, fmt.Errorf("failed to load list %s: %w", listID, err)
	}

	var values []activeValueRow
	if err := s.queries.Select("list-active-values", &values, string(listID)); err != nil {
		return expansion.Input{}, fmt.Errorf("failed to load attribute values for list %s: %w", listID, err)
	}
	active := make(map[types.AttributeID][]types.AttributeValueID)
	for _, v := range values {
		active[v.Attribute] = append(active[v.Attribute], v.Value)
	}

	listCtx := expansion.ListContext{ID: list.ID, House: list.House, ActiveValues: active}

	var fighterCtx *expansion.FighterContext
	if fighterID != "" {
		fighter, err := s.Fighter(fighterID)
		if err != nil {
			return expansion.Input{}, err
		}
		fighterCtx = &expansion.FighterContext{ID: fighter.ID, Category: fighter.Category}
	}

	return expansion.NewInput(listCtx, fighterCtx)
}

// ListSummary is the display view of a list: its house and active
// attribute values resolved to catalog names.
type ListSummary struct {
	ID     types.ListID
	Name   string
	House  types.House
	Values []AttributeSelection
}

// AttributeSelection pairs an attribute with one of its active values.
type AttributeSelection struct {
	Attribute types.Attribute
	Value     types.AttributeValue
}

// LoadListSummary resolves a list's house and active attribute values to
// their catalog records for display.
func (s *Store) LoadListSummary(listID types.ListID) (ListSummary, error) {
	var list listRow
	if err := s.queries.Get("list-by-id", &list, string(listID)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ListSummary{}, fmt.Errorf("list %s: %w", listID, types.ErrNotFound)
		}
		return ListSummary{}, fmt.Errorf("failed to load list %s: %w", listID, err)
	}

	var house types.House
	if err := s.queries.Get("house-by-id", &house, string(list.House)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ListSummary{}, fmt.Errorf("house %s: %w", list.House, types.ErrNotFound)
		}
		return ListSummary{}, fmt.Errorf("failed to load house %s: %w", list.House, err)
	}

	var attributes []types.Attribute
	if err := s.queries.Select("attributes-all", &attributes); err != nil {
		return ListSummary{}, fmt.Errorf("failed to load attributes: %w", err)
	}
	attributeByID := make(map[types.AttributeID]types.Attribute, len(attributes))
	for _, a := range attributes {
		attributeByID[a.ID] = a
	}

	var attrValues []types.AttributeValue
	if err := s.queries.Select("attribute-values-all", &attrValues); err != nil {
		return ListSummary{}, fmt.Errorf("failed to load attribute values: %w", err)
	}
	valueByID := make(map[types.AttributeValueID]types.AttributeValue, len(attrValues))
	for _, v := range attrValues {
		valueByID[v.ID] = v
	}

	var active []activeValueRow
	if err := s.queries.Select("list-active-values", &active, string(listID)); err != nil {
		return ListSummary{}, fmt.Errorf("failed to load attribute values for list %s: %w", listID, err)
	}

	summary := ListSummary{ID: list.ID, Name: list.Name, House: house}
	for _, row := range active {
		value, ok := valueByID[row.Value]
		if !ok {
			continue
		}
		summary.Values = append(summary.Values, AttributeSelection{
			Attribute: attributeByID[row.Attribute],
			Value:     value,
		})
	}
	return summary, nil
}

// Fighter loads one content fighter.
func (s *Store) Fighter(id types.FighterID) (types.Fighter, error) {
	var fighter types.Fighter
	if err := s.queries.Get("fighter-by-id", &fighter, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Fighter{}, fmt.Errorf("fighter %s: %w", id, types.ErrNotFound)
		}
		return types.Fighter{}, fmt.Errorf("failed to load fighter %s: %w", id, err)
	}
	return fighter, nil
}

// ListFighter loads a roster fighter as the engine's equipment-list view:
// its content fighter plus the optional legacy.
func (s *Store) ListFighter(id string) (expansion.ListFighter, error) {
	var row listFighterRow
	if err := s.queries.Get("list-fighter-by-id", &row, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return expansion.ListFighter{}, fmt.Errorf("list fighter %s: %w", id, types.ErrNotFound)
		}
		return expansion.ListFighter{}, fmt.Errorf("failed to load list fighter %s: %w", id, err)
	}
	fighter := expansion.ListFighter{ContentFighter: row.ContentFighter}
	if row.LegacyFighter.Valid {
		fighter.LegacyFighter = types.FighterID(row.LegacyFighter.String)
	}
	return fighter, nil
}

// EquipmentLists loads the equipment-list entries of the fighter's sources
// (legacy included when present), indexed for combined resolution.
func (s *Store) EquipmentLists(fighter expansion.ListFighter) (*expansion.EquipmentLists, error) {
	sources := fighter.EquipmentListFighters()
	ids := make([]string, len(sources))
	for i, src := range sources {
		ids[i] = string(src)
	}

	var entries []expansion.EquipmentListEntry
	if err := s.queries.SelectIn("equipment-list-entries", &entries, ids); err != nil {
		return nil, fmt.Errorf("failed to load equipment-list entries: %w", err)
	}
	return expansion.NewEquipmentLists(entries), nil
}

// LoadCatalog assembles the full content snapshot for in-memory evaluation.
func (s *Store) LoadCatalog() (*expansion.Catalog, error) {
	var ruleRows []ruleRow
	if err := s.queries.Select("expansion-rules-all", &ruleRows); err != nil {
		return nil, fmt.Errorf("failed to load expansion rules: %w", err)
	}
	var valueRows []ruleValueRow
	if err := s.queries.Select("rule-allowed-values-all", &valueRows); err != nil {
		return nil, fmt.Errorf("failed to load rule allowed values: %w", err)
	}
	var categoryRows []ruleCategoryRow
	if err := s.queries.Select("rule-categories-all", &categoryRows); err != nil {
		return nil, fmt.Errorf("failed to load rule categories: %w", err)
	}

	rules := make(map[types.RuleID]expansion.Rule, len(ruleRows))
	for _, row := range ruleRows {
		kind, err := expansion.ParseKind(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", row.ID, err)
		}
		rule := expansion.Rule{ID: row.ID, Kind: kind}
		if row.Attribute.Valid {
			rule.Attribute = types.AttributeID(row.Attribute.String)
		}
		if row.House.Valid {
			rule.House = types.HouseID(row.House.String)
		}
		rules[row.ID] = rule
	}
	for _, row := range valueRows {
		rule, ok := rules[row.Rule]
		if !ok {
			continue
		}
		rule.AllowedValues = append(rule.AllowedValues, row.Value)
		rules[row.Rule] = rule
	}
	for _, row := range categoryRows {
		rule, ok := rules[row.Rule]
		if !ok {
			continue
		}
		rule.Categories = append(rule.Categories, row.Category)
		rules[row.Rule] = rule
	}

	var expansionRows []expansionRow
	if err := s.queries.Select("expansions-all", &expansionRows); err != nil {
		return nil, fmt.Errorf("failed to load expansions: %w", err)
	}
	var linkRows []ruleLinkRow
	if err := s.queries.Select("expansion-rule-links-all", &linkRows); err != nil {
		return nil, fmt.Errorf("failed to load expansion rule links: %w", err)
	}
	linked := make(map[types.ExpansionID][]expansion.Rule)
	for _, link := range linkRows {
		rule, ok := rules[link.Rule]
		if !ok {
			continue
		}
		linked[link.Expansion] = append(linked[link.Expansion], rule)
	}

	expansions := make([]expansion.Expansion, 0, len(expansionRows))
	for _, row := range expansionRows {
		expansions = append(expansions, expansion.Expansion{
			ID:    row.ID,
			Name:  row.Name,
			Rules: linked[row.ID],
		})
	}

	var itemRows []itemRow
	if err := s.queries.Select("expansion-items-all", &itemRows); err != nil {
		return nil, fmt.Errorf("failed to load expansion items: %w", err)
	}
	items := make([]expansion.Item, 0, len(itemRows))
	for _, row := range itemRows {
		item := expansion.Item{
			Expansion:     row.Expansion,
			Equipment:     row.Equipment,
			WeaponProfile: row.WeaponProfile,
		}
		if row.Cost.Valid {
			cost := int(row.Cost.Int64)
			item.Cost = &cost
		}
		items = append(items, item)
	}

	var equipmentRows []types.Equipment
	if err := s.queries.Select("equipment-all", &equipmentRows); err != nil {
		return nil, fmt.Errorf("failed to load equipment: %w", err)
	}
	equipment := make(map[types.EquipmentID]types.Equipment, len(equipmentRows))
	for _, e := range equipmentRows {
		equipment[e.ID] = e
	}

	var profileRows []types.WeaponProfile
	if err := s.queries.Select("weapon-profiles-all", &profileRows); err != nil {
		return nil, fmt.Errorf("failed to load weapon profiles: %w", err)
	}
	profiles := make(map[types.WeaponProfileID]types.WeaponProfile, len(profileRows))
	for _, p := range profileRows {
		profiles[p.ID] = p
	}

	return &expansion.Catalog{
		Expansions: expansions,
		Items:      items,
		Equipment:  equipment,
		Profiles:   profiles,
	}, nil
}

// ApplicableExpansionIDs resolves applicable expansions storage-side in a
// single round trip. Results match expansion.Catalog.Applicable over a
// snapshot of the same data; use this when only the expansion set is
// needed and the catalog would otherwise not be loaded.
func (s *Store) ApplicableExpansionIDs(in expansion.Input) ([]types.ExpansionID, error) {
	category := ""
	if in.Fighter != nil {
		category = string(in.Fighter.Category)
	}

	var rows []expansionRow
	err := s.queries.Select("applicable-expansions", &rows,
		string(in.List.House), string(in.List.ID), category)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve applicable expansions: %w", err)
	}

	ids := make([]types.ExpansionID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}
