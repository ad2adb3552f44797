// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a served transport (HTTP today). Serve blocks until the
// transport stops; shutdown happens through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
