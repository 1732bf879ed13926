package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/data/entity"
	"restaurant-menu/internal/data/repository"
	"restaurant-menu/internal/dto/request"
	"restaurant-menu/internal/dto/response"
	"restaurant-menu/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, actor *entity.Session, req *request.RegisterRequest) (*response.UserResponse, error)
	Bootstrap(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Authenticate(ctx context.Context, req *request.LoginRequest) (*entity.Session, error)
	Logout(ctx context.Context, session *entity.Session)
}

type authService struct {
	userRepo repository.UserRepository
	security utils.SecurityConfig
	log      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	security utils.SecurityConfig,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		security: security,
		log:      log.With(zap.String("service", "auth")),
	}
}

// Register creates a user. Without a session only staff self-registration is
// allowed; with one, the session must be allowed to register users.
func (s *authService) Register(ctx context.Context, actor *entity.Session, req *request.RegisterRequest) (*response.UserResponse, error) {
	role := entity.UserRole(req.Role)
	if role == "" {
		role = entity.RoleStaff
	}

	// 1. Gate
	if actor != nil || role == entity.RoleAdmin {
		if err := authorize(actor, ActionRegisterStaff); err != nil {
			s.log.Warn("Registration denied",
				zap.String("username", req.Username),
				zap.String("role", string(role)),
				zap.Int64("actor_id", actorID(actor)),
			)
			return nil, err
		}
	}

	// 2. Validate and create
	user, err := s.createUser(ctx, req, role)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
		zap.Int64("actor_id", actorID(actor)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Bootstrap creates the first admin. It only works on an empty users table.
func (s *authService) Bootstrap(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	count, err := s.userRepo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	if count > 0 {
		s.log.Warn("Bootstrap refused, users already exist", zap.Int64("count", count))
		return nil, fmt.Errorf("bootstrap with %d existing users: %w", count, apperr.ErrUnauthorized)
	}

	user, err := s.createUser(ctx, req, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.log.Info("Initial admin created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) createUser(ctx context.Context, req *request.RegisterRequest, role entity.UserRole) (*entity.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := utils.ValidateStruct(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	if len(req.Password) < s.security.MinPasswordLength {
		return nil, fmt.Errorf("password shorter than %d characters: %w",
			s.security.MinPasswordLength, apperr.ErrWeakPassword)
	}
	if len(req.Password) > utils.MaxPasswordBytes {
		return nil, apperr.NewValidationError("password",
			fmt.Sprintf("Maximum length is %d bytes", utils.MaxPasswordBytes))
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.security.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         role,
		FullName:     req.FullName,
		Email:        req.Email,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrDuplicateUsername) {
			s.log.Warn("Username already taken", zap.String("username", user.Username))
		} else {
			s.log.Error("Failed to create user", zap.Error(err), zap.String("username", user.Username))
		}
		return nil, err
	}

	return user, nil
}

// Authenticate never tells a caller whether the username or the password was wrong.
func (s *authService) Authenticate(ctx context.Context, req *request.LoginRequest) (*entity.Session, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	hash := ""
	if user != nil {
		hash = user.PasswordHash
	}
	if !utils.CheckPasswordTimingSafe(req.Password, hash, s.security.BcryptCost) {
		s.log.Warn("Failed login attempt", zap.String("username", req.Username))
		return nil, apperr.ErrInvalidCredentials
	}

	session := &entity.Session{
		ID:       uuid.New(),
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		IssuedAt: time.Now(),
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("session_id", session.ID.String()),
	)

	return session, nil
}

func (s *authService) Logout(ctx context.Context, session *entity.Session) {
	if session == nil {
		return
	}
	s.log.Info("User logged out",
		zap.Int64("user_id", session.UserID),
		zap.String("session_id", session.ID.String()),
		zap.Duration("duration", time.Since(session.IssuedAt)),
	)
}

func actorID(actor *entity.Session) int64 {
	if actor == nil {
		return 0
	}
	return actor.UserID
}
