package validation

import (
	"fmt"
	"strings"

	"recipe-kit/internal/models"
)

// MaxServingCount caps per-order servings; matches the storefront's selector.
const MaxServingCount = 100

// ValidationError reports a single rejected field. It maps to a 400 response
// at the HTTP boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCreateOrder checks a creation request against the order contract
// and normalizes its string fields in place. It never consults the store:
// whether the referenced recipe exists is decided at creation time.
func ValidateCreateOrder(req *models.CreateOrderRequest) error {
	if req.RecipeID <= 0 {
		return ValidationError{Field: "recipeId", Message: "recipe id must be a positive integer"}
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if err := validateRequired("customerName", req.CustomerName); err != nil {
		return err
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	req.Address = strings.TrimSpace(req.Address)
	if err := validateRequired("address", req.Address); err != nil {
		return err
	}

	req.Phone = strings.TrimSpace(req.Phone)
	if err := validateRequired("phone", req.Phone); err != nil {
		return err
	}

	if req.ServingCount < 0 {
		return ValidationError{Field: "servingCount", Message: "serving count must be at least 1"}
	}
	if req.ServingCount > MaxServingCount {
		return ValidationError{
			Field:   "servingCount",
			Message: fmt.Sprintf("serving count must not exceed %d", MaxServingCount),
		}
	}

	return nil
}

// ValidateJoinWaitlist checks a waitlist signup request and normalizes its
// string fields in place.
func ValidateJoinWaitlist(req *models.JoinWaitlistRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequired("name", req.Name); err != nil {
		return err
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if req.Phone != nil {
		trimmed := strings.TrimSpace(*req.Phone)
		req.Phone = &trimmed
	}

	return nil
}

func validateRequired(field, value string) error {
	if value == "" {
		return ValidationError{Field: field, Message: field + " is required"}
	}
	if len(value) > 500 {
		return ValidationError{Field: field, Message: field + " must be less than 500 characters"}
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return ValidationError{Field: "email", Message: "email is malformed"}
	}
	if strings.ContainsAny(email, " \t") {
		return ValidationError{Field: "email", Message: "email is malformed"}
	}

	return nil
}
