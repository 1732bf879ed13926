package middleware

import (
	"context"
	"fmt"

	"restaurant-menu/pkg/shell"

	"go.uber.org/zap"
)

// Recover turns a handler panic into an error so the shell keeps running.
func Recover(logger *zap.Logger) shell.Middleware {
	return func(next shell.HandlerFunc) shell.HandlerFunc {
		return func(ctx context.Context, req *shell.Request) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("PANIC recovered",
						zap.Any("error", rec),
						zap.String("command", req.Command),
						zap.Stack("stack"),
					)
					err = fmt.Errorf("internal error in %s", req.Command)
				}
			}()
			return next(ctx, req)
		}
	}
}
