package usecase

import (
	"fmt"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/data/entity"
)

type Action string

const (
	ActionViewMenu      Action = "view_menu"
	ActionSearchMenu    Action = "search_menu"
	ActionManageMenu    Action = "manage_menu"
	ActionViewUsers     Action = "view_users"
	ActionRegisterStaff Action = "register_staff"
)

var policy = map[entity.UserRole]map[Action]bool{
	entity.RoleAdmin: {
		ActionViewMenu:      true,
		ActionSearchMenu:    true,
		ActionManageMenu:    true,
		ActionViewUsers:     true,
		ActionRegisterStaff: true,
	},
	entity.RoleStaff: {
		ActionViewMenu:   true,
		ActionSearchMenu: true,
	},
}

// Authorize reports whether the session's role may perform action.
// A nil session or an unknown role is denied everything.
func Authorize(session *entity.Session, action Action) bool {
	if session == nil {
		return false
	}
	return policy[session.Role][action]
}

func authorize(session *entity.Session, action Action) error {
	if Authorize(session, action) {
		return nil
	}
	return fmt.Errorf("%s: %w", action, apperr.ErrUnauthorized)
}
