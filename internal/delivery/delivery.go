// Package delivery defines the entry points through which the outside
// world reaches the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP, worker, etc.) managed by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
