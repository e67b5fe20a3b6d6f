// Package delivery defines the contract for long-running entry points
// the application hosts, such as the payment callback listener.
package delivery

import "context"

// Delivery is a serving surface with its own lifecycle. Serve blocks
// until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
