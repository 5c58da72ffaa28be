// Package delivery defines the common contract for inbound adapters
// (HTTP server, alarm scheduler) started by the application runtime.
package delivery

import "context"

// Delivery is a long-running inbound adapter. Serve blocks until the adapter
// stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
