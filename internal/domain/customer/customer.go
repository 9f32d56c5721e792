package customer

import (
	"regexp"

	"github.com/ecommerce/backend/internal/domain/shared"
)

var nonDigits = regexp.MustCompile(`\D`)

// Customer represents a buyer identified by name and national tax id.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseEntity
	Name  string
	TaxID string
}

// Snapshot is the audit snapshot of a customer's mutable fields
type Snapshot struct {
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
}

// NewCustomer creates a new customer with required fields.
// The tax id is stored normalized (digits only).
func NewCustomer(name, taxID string) (*Customer, error) {
	normalized, err := normalizeTaxID(taxID)
	if err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		TaxID:      normalized,
	}, nil
}

// Update replaces the customer's name and tax id and stamps the update timestamp
func (c *Customer) Update(name, taxID string) error {
	normalized, err := normalizeTaxID(taxID)
	if err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	c.Name = name
	c.TaxID = normalized
	c.Touch()

	return nil
}

// Snapshot returns the audit snapshot of the customer's current state
func (c *Customer) Snapshot() Snapshot {
	return Snapshot{Name: c.Name, TaxID: c.TaxID}
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

// normalizeTaxID strips formatting and validates the 11-digit tax id
// using the official check-digit algorithm.
func normalizeTaxID(taxID string) (string, error) {
	digits := nonDigits.ReplaceAllString(taxID, "")
	if len(digits) != 11 {
		return "", shared.NewDomainError("INVALID_TAX_ID", "Tax id must contain exactly 11 digits")
	}

	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return "", shared.NewDomainError("INVALID_TAX_ID", "Invalid tax id")
	}

	if int(digits[9]-'0') != checkDigit(digits, 9) || int(digits[10]-'0') != checkDigit(digits, 10) {
		return "", shared.NewDomainError("INVALID_TAX_ID", "Invalid tax id")
	}

	return digits, nil
}

// checkDigit computes the verification digit over the first n digits
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	rest := 11 - sum%11
	if rest < 2 {
		return 0
	}
	return rest
}
