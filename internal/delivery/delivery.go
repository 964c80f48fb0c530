// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport endpoint started by the application runner.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
