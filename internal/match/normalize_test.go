package match

import (
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"HONEY_BOTTLE", "honeybottle"},
		{"honey_bottle", "honeybottle"},
		{"honey-bottle", "honeybottle"},
		{"honey bottle", "honeybottle"},
		{"HoneyBottle", "honeybottle"},
		{"honeyBottle", "honeybottle"},

		// Namespaced keys
		{"minecraft:speed", "minecraftspeed"},

		// Acronyms
		{"TNTMinecart", "tntminecart"},
		{"TNT_MINECART", "tntminecart"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"A", "a"},

		// Mixed separators
		{"enchanted_golden-apple", "enchantedgoldenapple"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"DiamondSword", []string{"Diamond", "Sword"}},
		{"nightVision", []string{"night", "Vision"}},
		{"TNTMinecart", []string{"TNT", "Minecart"}},
		{"HONEY_BOTTLE", []string{"HONEY", "BOTTLE"}},
		{"glass bottle", []string{"glass", "bottle"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"lowercase", []string{"lowercase"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AB", []string{"AB"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
