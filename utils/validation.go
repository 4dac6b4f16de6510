package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	skuRegex      = regexp.MustCompile(`^[A-Z0-9-]{3,32}$`)

	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasNumber  = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[@$!%*?&]`)
)

// SanitizeString removes potentially dangerous characters and HTML tags
func SanitizeString(input string) string {
	sanitized := html.EscapeString(input)

	htmlTagRegex := regexp.MustCompile(`<[^>]*>`)
	sanitized = htmlTagRegex.ReplaceAllString(sanitized, "")

	return strings.TrimSpace(sanitized)
}

// ValidateUsername checks username format
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-20 characters of letters, numbers or underscores")
	}
	return nil
}

// ValidateEmail checks email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf(ErrInvalidEmail)
	}
	return nil
}

// ValidatePhone checks phone number format
func ValidatePhone(phone string) error {
	if phone != "" && !phoneRegex.MatchString(phone) {
		return fmt.Errorf(ErrInvalidPhone)
	}
	return nil
}

// ValidatePassword enforces the password policy
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength ||
		!hasLower.MatchString(password) ||
		!hasUpper.MatchString(password) ||
		!hasNumber.MatchString(password) ||
		!hasSpecial.MatchString(password) {
		return fmt.Errorf(ErrInvalidPassword)
	}
	return nil
}

// ValidateSKU checks product SKU format
func ValidateSKU(sku string) error {
	if !skuRegex.MatchString(sku) {
		return fmt.Errorf("SKU must be 3-32 characters of uppercase letters, digits or dashes")
	}
	return nil
}

// ValidateRating checks a review rating bound
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf(ErrInvalidRating)
	}
	return nil
}
