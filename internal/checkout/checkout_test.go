package checkout

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_StandardRates(t *testing.T) {
	cart := &entity.Cart{Subtotal: 1000.00}

	summary := Summarize(cart, entity.ShippingMethodStandard)

	assert.Equal(t, 1000.00, summary.Subtotal)
	assert.Equal(t, 120.00, summary.Tax)
	assert.Equal(t, 0.00, summary.Shipping)
	assert.Equal(t, 1120.00, summary.Total)
}

func TestSummarize_ShippingFreeForEveryMethod(t *testing.T) {
	cart := &entity.Cart{Subtotal: 250.50}

	for _, method := range []string{entity.ShippingMethodStandard, entity.ShippingMethodExpress, ""} {
		summary := Summarize(cart, method)
		assert.Zero(t, summary.Shipping, "method %q", method)
	}
}

func TestSummarize_NilCart(t *testing.T) {
	summary := Summarize(nil, entity.ShippingMethodStandard)

	assert.Zero(t, summary.Subtotal)
	assert.Zero(t, summary.Tax)
	assert.Zero(t, summary.Total)
}

func TestTax_RoundsToCents(t *testing.T) {
	// 33.33 * 0.12 = 3.9996
	assert.Equal(t, 4.00, Tax(33.33))
	assert.Equal(t, 1.2, Tax(10))
}

func TestInput_Validate(t *testing.T) {
	valid := Input{
		Email:           "a@b.com",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		ShippingMethod:  "standard",
		PaymentMethod:   "credit_card",
		ShippingLine1:   "1 Main St",
		ShippingCity:    "Springfield",
		ShippingZipCode: "12345",
		ShippingCountry: "US",
	}
	require.NoError(t, valid.Validate())

	missingEmail := valid
	missingEmail.Email = ""
	assert.Error(t, missingEmail.Validate())

	badMethod := valid
	badMethod.ShippingMethod = "teleport"
	assert.Error(t, badMethod.Validate())

	// A saved address stands in for the inline fields.
	savedAddress := valid
	savedAddress.ShippingLine1 = ""
	savedAddress.ShippingCity = ""
	savedAddress.ShippingZipCode = ""
	savedAddress.ShippingCountry = ""
	id := 3
	savedAddress.ShippingAddressID = &id
	assert.NoError(t, savedAddress.Validate())
}

func TestBuildOrderInput_BillingSameAsShipping(t *testing.T) {
	id := 9
	in := Input{
		Email:                 "a@b.com",
		FirstName:             "Ada",
		LastName:              "Lovelace",
		ShippingMethod:        "express",
		PaymentMethod:         "credit_card",
		ShippingAddressID:     &id,
		ShippingLine1:         "1 Main St",
		ShippingCity:          "Springfield",
		BillingSameAsShipping: true,
	}
	summary := Summarize(&entity.Cart{Subtotal: 100}, in.ShippingMethod)

	order := BuildOrderInput(in, summary)

	require.NotNil(t, order.BillingAddressID)
	assert.Equal(t, 9, *order.BillingAddressID)
	assert.Equal(t, "1 Main St", order.BillingLine1)
	assert.Equal(t, "Springfield", order.BillingCity)
	assert.Equal(t, 12.00, order.Tax)
	assert.Equal(t, 0.00, order.ShippingCost)
	assert.Equal(t, "express", order.ShippingMethod)
}
