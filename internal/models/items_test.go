package models

import "testing"

func TestNormalizeItemName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{" 'millet seed' ", "Millet Seed"},
		{"CHIP", "Chip"},
		{`"Sunflower   SEED"`, "Sunflower Seed"},
		{"pretzel", "Pretzel"},
		{"millet-seed", "Millet-seed"},
		{"3d chip", "3d Chip"},
		{"mcDONALD", "Mcdonald"},
		{"éclair", "Éclair"},
		{`"`, ""},
		{"'", ""},
		{`'cracker"`, `'cracker"`},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeItemName(tt.in); got != tt.want {
			t.Errorf("NormalizeItemName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
