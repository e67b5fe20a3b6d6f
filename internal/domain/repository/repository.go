// Package repository defines the contracts for the remote resources the
// storefront consumes. The implementations in internal/infra/rest speak
// JSON over HTTPS to the storefront API; everything here is expressed in
// domain terms so the stores never see transport details.
package repository

// ListOptions selects one page of a paginated listing.
type ListOptions struct {
	Page    int
	PerPage int
}

// Page is one page of a listing plus the server's pagination metadata.
// The metadata is taken verbatim from the response, never derived.
type Page[T any] struct {
	Items      []T
	Count      int
	TotalPages int
	Page       int
}

// Result wraps a fetched or mutated resource together with the server's
// human-readable message.
type Result[T any] struct {
	Resource T
	Message  string
}

// Deleted reports a successful delete: the removed identifier and the
// server's message.
type Deleted struct {
	ID      int
	Message string
}
