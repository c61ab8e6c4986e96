// Package delivery defines the contract shared by every transport the binaries start.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, push worker) started by fx.
type Delivery interface {
	Serve(ctx context.Context) error
}
