package expansion

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rosterkeeper/rosterkeeper/internal/types"
)

// testCatalog builds a small catalog with three expansions:
//   - Malstrain gear: attribute=Malstrain AND category in {Leader, Champion}
//   - Delaque vehicles: house=Delaque AND category in {Vehicle}
//   - Water Guild gear: attribute=Water Guild (any fighter)
func testCatalog() *Catalog {
	tyremite := types.Equipment{ID: "equip-tyremite", Name: "Malstrain Tyremite", Cost: 50}
	psyker := types.Equipment{ID: "equip-psyker", Name: "Non-sanctioned Psyker", Cost: 30}
	waterBlade := types.Equipment{ID: "equip-water-blade", Name: "Water Blade", Cost: 100}
	stiletto := types.Equipment{ID: "equip-stiletto", Name: "Stiletto Knife", Cost: 20}
	toxinAmmo := types.WeaponProfile{ID: "profile-toxin", Equipment: stiletto.ID, Name: "Toxin Ammo", Cost: 25}

	malstrainAttr := Rule{
		ID:            "rule-malstrain",
		Kind:          KindAttribute,
		Attribute:     affiliationAttr,
		AllowedValues: []types.AttributeValueID{malstrainValue},
	}
	leaderOrChampion := Rule{
		ID:         "rule-leader-champion",
		Kind:       KindFighterCategory,
		Categories: []types.Category{types.CategoryLeader, types.CategoryChampion},
	}
	delaque := Rule{ID: "rule-delaque", Kind: KindHouse, House: delaqueHouse}
	vehicle := Rule{
		ID:         "rule-vehicle",
		Kind:       KindFighterCategory,
		Categories: []types.Category{types.CategoryVehicle},
	}
	waterGuild := Rule{
		ID:            "rule-water-guild",
		Kind:          KindAttribute,
		Attribute:     affiliationAttr,
		AllowedValues: []types.AttributeValueID{waterGuildValue},
	}

	return &Catalog{
		Expansions: []Expansion{
			{ID: "exp-malstrain", Name: "Malstrain Gear", Rules: []Rule{malstrainAttr, leaderOrChampion}},
			{ID: "exp-delaque-vehicles", Name: "Delaque Vehicle Gear", Rules: []Rule{delaque, vehicle}},
			{ID: "exp-water-guild", Name: "Water Guild Gear", Rules: []Rule{waterGuild}},
			{ID: "exp-no-rules", Name: "Orphaned"},
		},
		Items: []Item{
			{Expansion: "exp-malstrain", Equipment: tyremite.ID},                                        // native cost
			{Expansion: "exp-malstrain", Equipment: psyker.ID, Cost: intPtr(25)},                        // discounted
			{Expansion: "exp-malstrain", Equipment: stiletto.ID, WeaponProfile: toxinAmmo.ID},           // profile only
			{Expansion: "exp-water-guild", Equipment: waterBlade.ID, Cost: intPtr(75)},                  // discounted
			{Expansion: "exp-water-guild", Equipment: psyker.ID, Cost: intPtr(28)},                      // collides with malstrain item
			{Expansion: "exp-no-rules", Equipment: waterBlade.ID, Cost: intPtr(1)},                      // unreachable
			{Expansion: "exp-delaque-vehicles", Equipment: stiletto.ID, WeaponProfile: toxinAmmo.ID, Cost: intPtr(15)},
		},
		Equipment: map[types.EquipmentID]types.Equipment{
			tyremite.ID: tyremite, psyker.ID: psyker, waterBlade.ID: waterBlade, stiletto.ID: stiletto,
		},
		Profiles: map[types.WeaponProfileID]types.WeaponProfile{toxinAmmo.ID: toxinAmmo},
	}
}

func expansionIDs(expansions []Expansion) map[types.ExpansionID]bool {
	ids := make(map[types.ExpansionID]bool, len(expansions))
	for _, e := range expansions {
		ids[e.ID] = true
	}
	return ids
}

func TestApplicable(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name    string
		list    ListContext
		fighter *FighterContext
		want    []types.ExpansionID
	}{
		{
			name:    "malstrain leader in delaque gang",
			list:    listWithValues(malstrainValue),
			fighter: fighterWithCategory(types.CategoryLeader),
			want:    []types.ExpansionID{"exp-malstrain"},
		},
		{
			name:    "delaque vehicle",
			list:    listWithValues(),
			fighter: fighterWithCategory(types.CategoryVehicle),
			want:    []types.ExpansionID{"exp-delaque-vehicles"},
		},
		{
			name:    "water guild gang without fighter",
			list:    listWithValues(waterGuildValue),
			fighter: nil,
			want:    []types.ExpansionID{"exp-water-guild"},
		},
		{
			name:    "no attribute and no fighter matches nothing",
			list:    ListContext{ID: "list-x", House: goliathHouse},
			fighter: nil,
			want:    nil,
		},
		{
			// Exact-set semantics: the malstrain attribute rule alone must
			// not unlock the expansion that also requires a category rule,
			// even though an unrelated expansion's rule matches too.
			name:    "partial rule match excludes expansion",
			list:    listWithValues(malstrainValue, waterGuildValue),
			fighter: fighterWithCategory(types.CategoryGanger),
			want:    []types.ExpansionID{"exp-water-guild"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := NewInput(tt.list, tt.fighter)
			if err != nil {
				t.Fatalf("NewInput() error = %v", err)
			}
			got := expansionIDs(c.Applicable(in))
			if len(got) != len(tt.want) {
				t.Fatalf("Applicable() = %v, want %v", got, tt.want)
			}
			for _, id := range tt.want {
				if !got[id] {
					t.Errorf("Applicable() missing %s", id)
				}
			}
		})
	}
}

func TestApplicable_ExcludesZeroRuleExpansions(t *testing.T) {
	c := testCatalog()
	in, _ := NewInput(listWithValues(malstrainValue, waterGuildValue), fighterWithCategory(types.CategoryLeader))
	for _, e := range c.Applicable(in) {
		if e.ID == "exp-no-rules" {
			t.Fatalf("Applicable() included zero-rule expansion")
		}
	}
}

func TestItemsForEquipment(t *testing.T) {
	c := testCatalog()
	in, _ := NewInput(listWithValues(malstrainValue), fighterWithCategory(types.CategoryLeader))

	t.Run("unreferenced equipment returns empty without rule evaluation", func(t *testing.T) {
		got := c.ItemsForEquipment(in, "equip-unknown", "")
		if len(got) != 0 {
			t.Errorf("ItemsForEquipment() = %v, want empty", got)
		}
	})

	t.Run("profile key distinct from base key", func(t *testing.T) {
		// Stiletto only has profile-level items; the base key has none.
		got := c.ItemsForEquipment(in, "equip-stiletto", "")
		if len(got) != 0 {
			t.Errorf("ItemsForEquipment(base key) = %v, want empty", got)
		}
		got = c.ItemsForEquipment(in, "equip-stiletto", "profile-toxin")
		if len(got) != 1 || got[0].Expansion != "exp-malstrain" {
			t.Errorf("ItemsForEquipment(profile key) = %v, want single malstrain item", got)
		}
	})

	t.Run("items of inapplicable expansions filtered out", func(t *testing.T) {
		got := c.ItemsForEquipment(in, "equip-water-blade", "")
		if len(got) != 0 {
			t.Errorf("ItemsForEquipment() = %v, want empty for inapplicable expansion", got)
		}
	})
}

func TestExpansionEquipment(t *testing.T) {
	c := testCatalog()

	t.Run("base overrides and native fallback", func(t *testing.T) {
		in, _ := NewInput(listWithValues(malstrainValue), fighterWithCategory(types.CategoryLeader))
		offers := c.ExpansionEquipment(in)
		if len(offers) != 3 {
			t.Fatalf("ExpansionEquipment() returned %d offers, want 3", len(offers))
		}

		byID := make(map[types.EquipmentID]EquipmentOffer)
		for _, o := range offers {
			byID[o.Equipment.ID] = o
		}

		tyremite := byID["equip-tyremite"]
		if tyremite.BaseOverride != nil || tyremite.EffectiveCost() != 50 {
			t.Errorf("tyremite = override %v cost %d, want native 50", tyremite.BaseOverride, tyremite.EffectiveCost())
		}

		psyker := byID["equip-psyker"]
		if psyker.EffectiveCost() != 25 {
			t.Errorf("psyker effective cost = %d, want 25", psyker.EffectiveCost())
		}

		// Profile-only equipment keeps nil base override and exposes the
		// profile alongside.
		stiletto := byID["equip-stiletto"]
		if stiletto.BaseOverride != nil || stiletto.EffectiveCost() != 20 {
			t.Errorf("stiletto base = override %v cost %d, want native 20", stiletto.BaseOverride, stiletto.EffectiveCost())
		}
		profileCost, ok := stiletto.ProfileCost(c.Profiles["profile-toxin"])
		if !ok || profileCost != 25 {
			t.Errorf("stiletto toxin profile cost = %d (%v), want native 25", profileCost, ok)
		}
	})

	t.Run("lowest effective cost wins across expansions", func(t *testing.T) {
		// Malstrain (psyker at 25) and Water Guild (psyker at 28) both apply.
		in, _ := NewInput(listWithValues(malstrainValue, waterGuildValue), fighterWithCategory(types.CategoryChampion))
		offers := c.ExpansionEquipment(in)
		for _, o := range offers {
			if o.Equipment.ID == "equip-psyker" {
				if o.EffectiveCost() != 25 {
					t.Errorf("psyker effective cost = %d, want 25 (lowest override)", o.EffectiveCost())
				}
				return
			}
		}
		t.Fatalf("psyker missing from offers")
	})

	t.Run("profile override applies for vehicle expansion", func(t *testing.T) {
		// The delaque vehicle expansion lists toxin ammo at 15; the
		// malstrain expansion lists it at native cost but does not apply to
		// a vehicle, so only the 15 override is live here.
		in, _ := NewInput(listWithValues(), fighterWithCategory(types.CategoryVehicle))
		offers := c.ExpansionEquipment(in)
		if len(offers) != 1 {
			t.Fatalf("ExpansionEquipment() returned %d offers, want 1", len(offers))
		}
		cost, ok := offers[0].ProfileCost(c.Profiles["profile-toxin"])
		if !ok || cost != 15 {
			t.Errorf("toxin profile cost = %d (%v), want 15", cost, ok)
		}
	})

	t.Run("sole override above native cost applies outright", func(t *testing.T) {
		// A single applicable item's override is the effective cost even
		// when it raises the price; lowest-wins only arbitrates collisions.
		lasgun := types.Equipment{ID: "equip-lasgun", Name: "Lasgun", Cost: 30}
		blade := types.Equipment{ID: "equip-blade", Name: "Power Blade", Cost: 20}
		master := types.WeaponProfile{ID: "profile-master", Equipment: blade.ID, Name: "Master-crafted", Cost: 35}

		premium := &Catalog{
			Expansions: []Expansion{{
				ID:    "exp-premium",
				Name:  "Premium Gear",
				Rules: []Rule{{ID: "rule-delaque", Kind: KindHouse, House: delaqueHouse}},
			}},
			Items: []Item{
				{Expansion: "exp-premium", Equipment: lasgun.ID, Cost: intPtr(40)},
				{Expansion: "exp-premium", Equipment: blade.ID, WeaponProfile: master.ID, Cost: intPtr(50)},
			},
			Equipment: map[types.EquipmentID]types.Equipment{lasgun.ID: lasgun, blade.ID: blade},
			Profiles:  map[types.WeaponProfileID]types.WeaponProfile{master.ID: master},
		}

		in, _ := NewInput(listWithValues(), nil)
		offers := premium.ExpansionEquipment(in)
		if len(offers) != 2 {
			t.Fatalf("ExpansionEquipment() returned %d offers, want 2", len(offers))
		}

		byID := make(map[types.EquipmentID]EquipmentOffer)
		for _, o := range offers {
			byID[o.Equipment.ID] = o
		}

		got := byID[lasgun.ID]
		if got.BaseOverride == nil || got.EffectiveCost() != 40 {
			t.Errorf("lasgun = override %v cost %d, want override 40", got.BaseOverride, got.EffectiveCost())
		}
		cost, ok := byID[blade.ID].ProfileCost(master)
		if !ok || cost != 50 {
			t.Errorf("master-crafted profile cost = %d (%v), want 50", cost, ok)
		}
	})
}

// genInput builds arbitrary evaluation inputs over the fixture's ID space.
func genInput() gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(), // malstrain active
		gen.Bool(), // water guild active
		gen.Bool(), // delaque house (else goliath)
		gen.IntRange(0, 4), // fighter: 0=absent, 1=leader, 2=champion, 3=ganger, 4=vehicle
	).Map(func(vs []interface{}) Input {
		var values []types.AttributeValueID
		if vs[0].(bool) {
			values = append(values, malstrainValue)
		}
		if vs[1].(bool) {
			values = append(values, waterGuildValue)
		}
		list := listWithValues(values...)
		if !vs[2].(bool) {
			list.House = goliathHouse
		}
		var fighter *FighterContext
		switch vs[3].(int) {
		case 1:
			fighter = fighterWithCategory(types.CategoryLeader)
		case 2:
			fighter = fighterWithCategory(types.CategoryChampion)
		case 3:
			fighter = fighterWithCategory(types.CategoryGanger)
		case 4:
			fighter = fighterWithCategory(types.CategoryVehicle)
		}
		in, _ := NewInput(list, fighter)
		return in
	})
}

// Property: bulk resolution agrees with per-expansion AppliesTo.
func TestApplicable_PropertyAgreesWithAppliesTo(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	c := testCatalog()

	properties.Property("membership in Applicable equals AppliesTo", prop.ForAll(
		func(in Input) bool {
			applicable := expansionIDs(c.Applicable(in))
			for _, e := range c.Expansions {
				if applicable[e.ID] != e.AppliesTo(in) {
					return false
				}
			}
			return true
		},
		genInput(),
	))

	properties.TestingRun(t)
}

// Property: evaluation is pure and idempotent.
func TestApplicable_PropertyIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	c := testCatalog()

	properties.Property("repeated evaluation yields identical results", prop.ForAll(
		func(in Input) bool {
			first := expansionIDs(c.Applicable(in))
			second := expansionIDs(c.Applicable(in))
			if len(first) != len(second) {
				return false
			}
			for id := range first {
				if !second[id] {
					return false
				}
			}
			for _, e := range c.Expansions {
				for _, r := range e.Rules {
					if r.Match(in) != r.Match(in) {
						return false
					}
				}
			}
			return true
		},
		genInput(),
	))

	properties.TestingRun(t)
}
