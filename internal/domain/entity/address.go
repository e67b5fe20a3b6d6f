package entity

// Address types recognized by the API.
const (
	AddressTypeShipping = "shipping"
	AddressTypeBilling  = "billing"
)

// Address is a saved shipping or billing address belonging to a user.
type Address struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`   // AddressTypeShipping or AddressTypeBilling.
	Line1   string `json:"line_1"` // Street address.
	Line2   string `json:"line_2"` // Apartment, suite, unit (optional).
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}
