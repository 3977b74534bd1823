package delivery

import "context"

// Delivery is a transport started by the application after fx wiring completes.
type Delivery interface {
	Serve(ctx context.Context) error
}
