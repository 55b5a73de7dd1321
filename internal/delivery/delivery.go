// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a runnable transport (HTTP API server, worker server).
type Delivery interface {
	Serve(ctx context.Context) error
}
