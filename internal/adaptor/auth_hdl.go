package adaptor

import (
	"context"
	"fmt"
	"strings"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/dto/request"
	"restaurant-menu/internal/usecase"
	"restaurant-menu/pkg/shell"
	"restaurant-menu/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles: login [username]
func (h *AuthHandler) Login(ctx context.Context, req *shell.Request) error {
	username := ""
	if len(req.Args) > 0 {
		username = req.Args[0]
	} else {
		line, err := req.Prompt.ReadLine("Username: ")
		if err != nil {
			return err
		}
		username = strings.TrimSpace(line)
	}

	password, err := req.Prompt.ReadPassword("Password: ")
	if err != nil {
		return err
	}

	session, err := h.service.Authenticate(ctx, &request.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	// a new login replaces the previous one
	if previous := req.State.Logout(); previous != nil {
		h.service.Logout(ctx, previous)
	}
	req.State.Login(session)

	utils.ResponseSuccess(req.Out, fmt.Sprintf("Welcome, %s (%s)", session.Username, session.Role))
	return nil
}

func (h *AuthHandler) Logout(ctx context.Context, req *shell.Request) error {
	session := req.State.Logout()
	h.service.Logout(ctx, session)
	utils.ResponseSuccess(req.Out, "Logged out.")
	return nil
}

func (h *AuthHandler) WhoAmI(ctx context.Context, req *shell.Request) error {
	session := req.State.Session()
	utils.ResponseKeyValue(req.Out, "Session", [][2]string{
		{"Username", session.Username},
		{"Role", string(session.Role)},
		{"User ID", fmt.Sprint(session.UserID)},
		{"Session", session.ID.String()},
		{"Since", session.IssuedAt.Format("2006-01-02 15:04:05")},
	})
	return nil
}

// RegisterUser handles: register-user --username NAME [--role staff|admin] [--full-name ..] [--email ..]
func (h *AuthHandler) RegisterUser(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	username := fs.String("username", "", "login name")
	role := fs.String("role", "staff", "admin or staff")
	fullName := fs.String("full-name", "", "display name")
	email := fs.String("email", "", "email address")
	if err := req.Parse(fs); err != nil {
		return err
	}

	password, err := ReadNewPassword(req.Prompt)
	if err != nil {
		return err
	}

	user, err := h.service.Register(ctx, req.State.Session(), &request.RegisterRequest{
		Username: *username,
		Password: password,
		Role:     *role,
		FullName: utils.OptionalString(*fullName),
		Email:    utils.OptionalString(*email),
	})
	if err != nil {
		return err
	}

	utils.ResponseSuccess(req.Out, fmt.Sprintf("User %s created with id %d (%s).", user.Username, user.ID, user.Role))
	return nil
}

// ReadNewPassword asks for a password twice.
func ReadNewPassword(p shell.Prompter) (string, error) {
	password, err := p.ReadPassword("Password: ")
	if err != nil {
		return "", err
	}
	confirm, err := p.ReadPassword("Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", apperr.NewValidationError("password", "Passwords do not match")
	}
	return password, nil
}
