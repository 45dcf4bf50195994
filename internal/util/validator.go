package util

import (
	"fmt"
	"strings"
)

// ValidateIngredientName checks a raw (pre-normalization) ingredient name.
func ValidateIngredientName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("ingredient name is empty")
	}
	if len(trimmed) > 64 {
		return fmt.Errorf("ingredient name too long, max 64 characters")
	}
	return nil
}

// ValidateAmount checks a pantry quantity (must be a positive integer).
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", amount)
	}
	return nil
}

// ValidateUsername checks a username for the user endpoints.
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if len(trimmed) < 3 {
		return fmt.Errorf("username too short, min 3 characters")
	}
	if len(trimmed) > 30 {
		return fmt.Errorf("username too long, max 30 characters")
	}
	return nil
}
