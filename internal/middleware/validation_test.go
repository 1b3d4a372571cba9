package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Checkout-shaped struct exercising the tags the API relies on
type testCheckoutRequest struct {
	ProductID     string `json:"product_id" validate:"required,uuid"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card mobile"`
}

// Feature: sales-analytics, Property 9: Required field validation works
// Validates: Requirements 8.2
func TestProperty_RequiredFieldValidationWorks(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing required fields are rejected", prop.ForAll(
		func(includeProduct bool, includeQuantity bool, includeMethod bool) bool {
			// Create request with some fields missing
			reqMap := make(map[string]interface{})

			if includeProduct {
				reqMap["product_id"] = uuid.New().String()
			}
			if includeQuantity {
				reqMap["quantity"] = 2
			}
			if includeMethod {
				reqMap["payment_method"] = "cash"
			}

			// If all fields are present, this should pass validation
			allFieldsPresent := includeProduct && includeQuantity && includeMethod

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/test", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var testReq testCheckoutRequest
			err := DecodeAndValidate(req, &testReq)

			if allFieldsPresent {
				// Should pass validation
				return err == nil
			} else {
				// Should fail validation
				return err != nil
			}
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Test that payment methods outside the allowed set are rejected
func TestProperty_PaymentMethodOneOfValidation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	allowed := map[string]bool{"cash": true, "card": true, "mobile": true}

	properties.Property("only known payment methods pass", prop.ForAll(
		func(method string) bool {
			reqMap := map[string]interface{}{
				"product_id":     uuid.New().String(),
				"quantity":       1,
				"payment_method": method,
			}

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/test", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var testReq testCheckoutRequest
			err := DecodeAndValidate(req, &testReq)

			if allowed[method] {
				return err == nil
			}
			return err != nil
		},
		gen.OneConstOf("cash", "card", "mobile", "check", "crypto", "CASH", ""),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Test quantity bound validation
func TestProperty_QuantityMustBePositive(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("non-positive quantities are rejected", prop.ForAll(
		func(quantity int) bool {
			reqMap := map[string]interface{}{
				"product_id":     uuid.New().String(),
				"quantity":       quantity,
				"payment_method": "card",
			}

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/test", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var testReq testCheckoutRequest
			err := DecodeAndValidate(req, &testReq)

			if quantity > 0 {
				return err == nil
			}
			return err != nil
		},
		gen.IntRange(-10, 10),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Test that validation errors are properly formatted
func TestProperty_ValidationErrorsAreFormatted(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("validation errors include field information", prop.ForAll(
		func() bool {
			// Invalid UUID and unknown payment method
			reqMap := map[string]interface{}{
				"product_id":     "not-a-uuid",
				"quantity":       1,
				"payment_method": "check",
			}

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/test", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var testReq testCheckoutRequest
			err := DecodeAndValidate(req, &testReq)

			if err == nil {
				return false // Should have validation error
			}

			// Format the errors
			validationErrors := FormatValidationErrors(err)

			// Should have at least one error
			if len(validationErrors) == 0 {
				return false
			}

			// Each error should have a field and message
			for _, ve := range validationErrors {
				if ve.Field == "" || ve.Message == "" {
					return false
				}
			}

			return true
		},
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
