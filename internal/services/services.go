package services

import (
	"context"
	"time"
)

// withTimeout bounds a single store operation. A hung database should fail
// the request, not hold it open.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
