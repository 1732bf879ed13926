package middleware

import (
	"context"
	"fmt"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/pkg/shell"
	"restaurant-menu/pkg/utils"

	"go.uber.org/zap"
)

// RequireSession rejects commands issued before login. Role checks stay in the services.
func RequireSession(logger *zap.Logger) shell.Middleware {
	return func(next shell.HandlerFunc) shell.HandlerFunc {
		return func(ctx context.Context, req *shell.Request) error {
			session := req.State.Session()
			if session == nil {
				logger.Warn("Command without login", zap.String("command", req.Command))
				return fmt.Errorf("%s requires login: %w", req.Command, apperr.ErrUnauthorized)
			}

			ctx = utils.SetSessionContext(ctx, session.ID)
			return next(ctx, req)
		}
	}
}
