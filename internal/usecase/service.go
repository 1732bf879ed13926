package usecase

import (
	"restaurant-menu/internal/data/repository"
	"restaurant-menu/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Menu     MenuService
	Category CategoryService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, config.Security, log),
		User:     NewUserService(repo.User, log),
		Menu:     NewMenuService(repo, log),
		Category: NewCategoryService(repo.Category, log),
	}
}
