package middleware

import (
	"context"
	"time"

	"restaurant-menu/pkg/shell"
)

// Timeout bounds each command. A non-positive duration disables it.
func Timeout(d time.Duration) shell.Middleware {
	return func(next shell.HandlerFunc) shell.HandlerFunc {
		return func(ctx context.Context, req *shell.Request) error {
			if d <= 0 {
				return next(ctx, req)
			}
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, req)
		}
	}
}
