package util

import (
	"strings"
	"testing"
)

func TestValidateIngredientName_Valid(t *testing.T) {
	testCases := []string{"rice", "Milk ", " chicken breast", "baking powder"}

	for _, name := range testCases {
		err := ValidateIngredientName(name)
		if err != nil {
			t.Errorf("ValidateIngredientName(%q) error = %v, want nil", name, err)
		}
	}
}

func TestValidateIngredientName_Empty(t *testing.T) {
	testCases := []string{"", "   ", "\t"}

	for _, name := range testCases {
		err := ValidateIngredientName(name)
		if err == nil {
			t.Errorf("ValidateIngredientName(%q) error = nil, want error", name)
		}
	}
}

func TestValidateIngredientName_TooLong(t *testing.T) {
	long := strings.Repeat("a", 65)

	err := ValidateIngredientName(long)
	if err == nil {
		t.Error("ValidateIngredientName() with 65 chars error = nil, want error")
	}
}

func TestValidateAmount_Positive(t *testing.T) {
	testCases := []int64{1, 10, 500, 99999}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err != nil {
			t.Errorf("ValidateAmount(%d) error = %v, want nil", amount, err)
		}
	}
}

func TestValidateAmount_NonPositive(t *testing.T) {
	testCases := []int64{0, -1, -500}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err == nil {
			t.Errorf("ValidateAmount(%d) error = nil, want error", amount)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	if err := ValidateUsername("Auren_1337"); err != nil {
		t.Errorf("ValidateUsername(\"Auren_1337\") error = %v, want nil", err)
	}
	if err := ValidateUsername("ab"); err == nil {
		t.Error("ValidateUsername(\"ab\") error = nil, want error")
	}
	if err := ValidateUsername(strings.Repeat("x", 31)); err == nil {
		t.Error("ValidateUsername() with 31 chars error = nil, want error")
	}
}
