package middleware

import (
	"context"
	"errors"
	"time"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/pkg/shell"
	"restaurant-menu/pkg/utils"

	"go.uber.org/zap"
)

// Logger records every command with its outcome and duration. Arguments are
// not logged because they can carry passwords.
func Logger(logger *zap.Logger) shell.Middleware {
	return func(next shell.HandlerFunc) shell.HandlerFunc {
		return func(ctx context.Context, req *shell.Request) error {
			start := time.Now()
			ctx = utils.SetCommandContext(ctx, req.Command)

			err := next(ctx, req)

			fields := []zap.Field{
				zap.String("command", req.Command),
				zap.Int("args", len(req.Args)),
				zap.Duration("duration", time.Since(start)),
			}
			if session := req.State.Session(); session != nil {
				fields = append(fields,
					zap.Int64("user_id", session.UserID),
					zap.String("session_id", session.ID.String()),
				)
			}

			switch {
			case err == nil, errors.Is(err, shell.ErrExit):
				logger.Info("Shell command", fields...)
			case isUserError(err):
				logger.Warn("Shell command rejected", append(fields, zap.Error(err))...)
			default:
				logger.Error("Shell command failed", append(fields, zap.Error(err))...)
			}
			return err
		}
	}
}

func isUserError(err error) bool {
	for _, kind := range []error{
		apperr.ErrValidation,
		apperr.ErrDuplicateUsername,
		apperr.ErrDuplicateCategory,
		apperr.ErrNotFound,
		apperr.ErrForeignKey,
		apperr.ErrUnauthorized,
		apperr.ErrInvalidCredentials,
		apperr.ErrWeakPassword,
		shell.ErrUnknownCommand,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
