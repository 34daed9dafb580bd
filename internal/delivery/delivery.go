// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface started by the application runtime.
type Delivery interface {
	// Serve blocks until the surface stops or the context is cancelled.
	Serve(ctx context.Context) error
}
