// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) whose lifecycle is managed by the
// application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
