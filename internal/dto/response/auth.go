package response

import (
	"time"

	"restaurant-menu/internal/data/entity"
)

type SessionResponse struct {
	SessionID string          `json:"session_id"`
	UserID    int64           `json:"user_id"`
	Username  string          `json:"username"`
	Role      entity.UserRole `json:"role"`
	IssuedAt  time.Time       `json:"issued_at"`
}

type UserResponse struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Role      entity.UserRole `json:"role"`
	FullName  *string         `json:"full_name,omitempty"`
	Email     *string         `json:"email,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserToResponse(u))
	}
	return out
}

func SessionToResponse(session *entity.Session) SessionResponse {
	return SessionResponse{
		SessionID: session.ID.String(),
		UserID:    session.UserID,
		Username:  session.Username,
		Role:      session.Role,
		IssuedAt:  session.IssuedAt,
	}
}
