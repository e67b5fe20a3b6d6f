// Package checkout turns a cart into an order submission. The server
// owns the subtotal; this package derives the charges layered on top of
// it and assembles the order payload.
package checkout

import (
	"math"

	"github.com/go-playground/validator/v10"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// TaxRate is applied to the cart subtotal.
const TaxRate = 0.12

var validate = validator.New(validator.WithRequiredStructEnabled())

// Tax is the subtotal's tax charge, rounded to cents.
func Tax(subtotal float64) float64 {
	return round2(subtotal * TaxRate)
}

// ShippingCost returns the charge for a shipping method. Shipping is
// currently free across the board; the method still travels with the
// order so fulfilment can honor it.
func ShippingCost(method string) float64 {
	return 0
}

// Total is the amount the customer pays.
func Total(subtotal, tax, shipping float64) float64 {
	return round2(subtotal + tax + shipping)
}

// Summary is the priced breakdown shown before the order is placed.
type Summary struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

// Summarize prices a cart for a shipping method.
func Summarize(cart *entity.Cart, shippingMethod string) Summary {
	subtotal := 0.0
	if cart != nil {
		subtotal = cart.Subtotal
	}

	tax := Tax(subtotal)
	shipping := ShippingCost(shippingMethod)

	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    Total(subtotal, tax, shipping),
	}
}

// Input is the checkout form. Saved-address IDs win over the inline
// fields when both are present.
type Input struct {
	Email       string `validate:"required,email"`
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	CountryCode string `validate:"omitempty,max=8"`
	PhoneNumber string `validate:"omitempty,max=32"`

	ShippingMethod string `validate:"required,oneof=standard express"`
	PaymentMethod  string `validate:"required,oneof=credit_card bank_transfer cash_on_delivery"`

	ShippingAddressID *int
	ShippingLine1     string `validate:"required_without=ShippingAddressID"`
	ShippingLine2     string
	ShippingCity      string `validate:"required_without=ShippingAddressID"`
	ShippingZipCode   string `validate:"required_without=ShippingAddressID"`
	ShippingCountry   string `validate:"required_without=ShippingAddressID"`

	BillingSameAsShipping bool
	BillingAddressID      *int
	BillingLine1          string
	BillingLine2          string
	BillingCity           string
	BillingZipCode        string
	BillingCountry        string
}

// Validate checks the form the way a checkout page would before
// submitting.
func (in Input) Validate() error {
	if err := validate.Struct(in); err != nil {
		return errors.Wrap(err, "validate checkout input")
	}

	return nil
}

// BuildOrderInput assembles the order submission from the form and the
// priced cart.
func BuildOrderInput(in Input, summary Summary) repository.CreateOrderInput {
	order := repository.CreateOrderInput{
		ShippingAddressID: in.ShippingAddressID,
		BillingAddressID:  in.BillingAddressID,

		ShippingLine1:   in.ShippingLine1,
		ShippingLine2:   in.ShippingLine2,
		ShippingCity:    in.ShippingCity,
		ShippingZipCode: in.ShippingZipCode,
		ShippingCountry: in.ShippingCountry,

		BillingLine1:   in.BillingLine1,
		BillingLine2:   in.BillingLine2,
		BillingCity:    in.BillingCity,
		BillingZipCode: in.BillingZipCode,
		BillingCountry: in.BillingCountry,

		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		CountryCode: in.CountryCode,
		PhoneNumber: in.PhoneNumber,

		ShippingMethod: in.ShippingMethod,
		Tax:            summary.Tax,
		ShippingCost:   summary.Shipping,
	}

	if in.BillingSameAsShipping {
		order.BillingAddressID = in.ShippingAddressID
		order.BillingLine1 = in.ShippingLine1
		order.BillingLine2 = in.ShippingLine2
		order.BillingCity = in.ShippingCity
		order.BillingZipCode = in.ShippingZipCode
		order.BillingCountry = in.ShippingCountry
	}

	return order
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
