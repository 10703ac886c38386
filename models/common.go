// Package models defines the data types exchanged with the PayPal REST API.
// Field names follow PayPal's documented JSON schemas: snake_case keys,
// optional fields omitted when absent and enum values in upper snake case.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount of money in a given currency. The value is kept as the
// decimal string PayPal uses on the wire, never a float.
type Money struct {
	CurrencyCode string `json:"currency_code" validate:"required"`
	Value        string `json:"value"         validate:"required"`
}

// Decimal returns the monetary value as an exact decimal.
func (m Money) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(m.Value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error converting money value to decimal: [%s]", err)
	}
	return d, nil
}

// Address is a portable postal address as defined by PayPal
type Address struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	AdminArea2   string `json:"admin_area_2,omitempty"`
	AdminArea1   string `json:"admin_area_1,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	CountryCode  string `json:"country_code" validate:"required"`
}

// LinkDescription is a HATEOAS link returned alongside PayPal resources
type LinkDescription struct {
	Href   string `json:"href" validate:"required"`
	Rel    string `json:"rel,omitempty"`
	Method string `json:"method,omitempty"`
}
