// Package validation checks inbound payment requests against the
// gateway's business rules before anything else runs.
package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator"

	"github.com/acquirepay/payment-gateway/internal/application"
)

// AllowedCurrencies is the fixed allow-list, compared case-insensitively.
var AllowedCurrencies = []string{"USD", "EUR", "GBP"}

// RequestValidator validates payment requests and collects every
// field-level violation, not just the first.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()

	_ = v.RegisterValidation("digits_only", validateDigitsOnly)
	_ = v.RegisterValidation("supported_currency", validateSupportedCurrency)
	_ = v.RegisterValidation("min_current_year", validateMinCurrentYear)
	v.RegisterStructValidation(validateNotExpired, application.PaymentRequest{})

	return &RequestValidator{validate: v}
}

// Validate returns nil when the request passes every rule. Otherwise it
// returns one violation per failed rule, with stable field names.
func (rv *RequestValidator) Validate(req *application.PaymentRequest) []application.Violation {
	err := rv.validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []application.Violation{{Field: "request", Message: err.Error()}}
	}

	violations := make([]application.Violation, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, application.Violation{
			Field:   fieldName(fieldErr.Field()),
			Message: violationMessage(fieldErr.Field(), fieldErr.Tag()),
		})
	}
	return violations
}

func validateDigitsOnly(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateSupportedCurrency(fl validator.FieldLevel) bool {
	code := strings.ToUpper(fl.Field().String())
	for _, allowed := range AllowedCurrencies {
		if code == allowed {
			return true
		}
	}
	return false
}

func validateMinCurrentYear(fl validator.FieldLevel) bool {
	return fl.Field().Int() >= int64(time.Now().UTC().Year())
}

// validateNotExpired checks the combined month/year against now. The
// card is valid through 23:59:59 on the last day of its expiry month,
// so the cutoff is the first instant of the following month, UTC.
// Independent of the single-field month and year rules.
func validateNotExpired(sl validator.StructLevel) {
	req := sl.Current().Interface().(application.PaymentRequest)

	firstOfNextMonth := time.Date(req.ExpiryYear, time.Month(req.ExpiryMonth)+1, 1, 0, 0, 0, 0, time.UTC)
	if !time.Now().UTC().Before(firstOfNextMonth) {
		sl.ReportError(req.ExpiryMonth, "Expiry", "expiry", "not_expired", "")
	}
}

var fieldNames = map[string]string{
	"CardNumber":  "card_number",
	"ExpiryMonth": "expiry_month",
	"ExpiryYear":  "expiry_year",
	"Expiry":      "expiry",
	"Currency":    "currency",
	"AmountMinor": "amount",
	"CVV":         "cvv",
}

func fieldName(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return structField
}

var violationMessages = map[string]map[string]string{
	"CardNumber": {
		"required":    "Card number is required.",
		"min":         "Card number must be between 14 and 19 characters.",
		"max":         "Card number must be between 14 and 19 characters.",
		"digits_only": "Card number must contain only numeric characters.",
	},
	"ExpiryMonth": {
		"min": "Expiry month must be between 1 and 12.",
		"max": "Expiry month must be between 1 and 12.",
	},
	"ExpiryYear": {
		"min_current_year": "Expiry year cannot be in the past.",
	},
	"Expiry": {
		"not_expired": "The card is expired.",
	},
	"expiry": {
		"not_expired": "The card is expired.",
	},
	"Currency": {
		"required":           "Currency is required.",
		"len":                "Currency must be a 3-letter ISO code.",
		"alpha":              "Currency must contain only letters.",
		"supported_currency": "Currency is not supported.",
	},
	"AmountMinor": {
		"gt": "Amount must be greater than zero.",
	},
	"CVV": {
		"required":    "CVV is required.",
		"min":         "CVV must be 3 or 4 digits.",
		"max":         "CVV must be 3 or 4 digits.",
		"digits_only": "CVV must contain only numeric characters.",
	},
}

func violationMessage(structField, tag string) string {
	if byTag, ok := violationMessages[structField]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return "Invalid value."
}
