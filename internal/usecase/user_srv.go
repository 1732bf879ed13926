package usecase

import (
	"context"
	"fmt"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/data/entity"
	"restaurant-menu/internal/data/repository"
	"restaurant-menu/internal/dto/request"
	"restaurant-menu/internal/dto/response"
	"restaurant-menu/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	ListUsers(ctx context.Context, session *entity.Session) ([]response.UserResponse, error)
	GetProfile(ctx context.Context, session *entity.Session) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, session *entity.Session, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) ListUsers(ctx context.Context, session *entity.Session) ([]response.UserResponse, error) {
	if err := authorize(session, ActionViewUsers); err != nil {
		return nil, err
	}

	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		us.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	return response.UsersToResponse(users), nil
}

func (us *userService) GetProfile(ctx context.Context, session *entity.Session) (*response.UserResponse, error) {
	user, err := us.currentUser(ctx, session)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateProfile changes the caller's own full name and email.
func (us *userService) UpdateProfile(ctx context.Context, session *entity.Session, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	user, err := us.currentUser(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	user.FullName = req.FullName
	user.Email = req.Email
	if err := us.userRepo.UpdateProfile(ctx, user); err != nil {
		us.log.Error("Failed to update profile", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, err
	}

	us.log.Info("Profile updated", zap.Int64("user_id", user.ID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) currentUser(ctx context.Context, session *entity.Session) (*entity.User, error) {
	if session == nil {
		return nil, fmt.Errorf("profile: %w", apperr.ErrUnauthorized)
	}

	user, err := us.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", session.UserID))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", session.UserID, apperr.ErrNotFound)
	}

	return user, nil
}
