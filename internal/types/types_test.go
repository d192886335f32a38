package types

import "testing"

func TestFormatCost(t *testing.T) {
	tests := []struct {
		cost int
		want string
	}{
		{25, "25¢"},
		{0, "0¢"},
		{-10, "-10¢"},
	}
	for _, tt := range tests {
		if got := FormatCost(tt.cost); got != tt.want {
			t.Errorf("FormatCost(%d) = %q, want %q", tt.cost, got, tt.want)
		}
	}
}

func TestFormatCostSigned(t *testing.T) {
	tests := []struct {
		cost int
		want string
	}{
		{10, "+10¢"},
		{0, "0¢"},
		{-5, "-5¢"},
	}
	for _, tt := range tests {
		if got := FormatCostSigned(tt.cost); got != tt.want {
			t.Errorf("FormatCostSigned(%d) = %q, want %q", tt.cost, got, tt.want)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("Valid() = false for %s", c)
		}
	}
	if Category("WARLORD").Valid() {
		t.Errorf("Valid() = true for unknown category")
	}
	if Category("").Valid() {
		t.Errorf("Valid() = true for empty category")
	}
}
