package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
	CommandKey   contextKey = "command"
)

// SetSessionContext tags ctx with the login it runs under, for log correlation only.
func SetSessionContext(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(SessionIDKey).(uuid.UUID)
	return id, ok
}

func SetCommandContext(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, CommandKey, command)
}

func GetCommandFromContext(ctx context.Context) (string, bool) {
	command, ok := ctx.Value(CommandKey).(string)
	return command, ok
}
