// Package entity contains the storefront's core business objects as
// served by the remote API. The client never owns these records; every
// struct here is a disposable cache of the server's representation.
package entity

// User is a customer or administrator account.
type User struct {
	ID          int       `json:"id"`           // Server-assigned identifier.
	Email       string    `json:"email"`        // Login identifier and contact email.
	FirstName   string    `json:"first_name"`   // Given name.
	LastName    string    `json:"last_name"`    // Family name.
	CountryCode string    `json:"country_code"` // Dialing prefix for the phone number.
	PhoneNumber string    `json:"phone_number"` // Contact phone number.
	IsAdmin     bool      `json:"is_admin"`     // Grants access to the back-office operations.
	Addresses   []Address `json:"addresses"`    // Saved shipping/billing addresses.
	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
}

// FullName joins the first and last name for display.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
