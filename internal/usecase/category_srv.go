package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant-menu/internal/data/entity"
	"restaurant-menu/internal/data/repository"
	"restaurant-menu/internal/dto/request"
	"restaurant-menu/internal/dto/response"
	"restaurant-menu/pkg/utils"

	"go.uber.org/zap"
)

type CategoryService interface {
	AddCategory(ctx context.Context, session *entity.Session, req *request.CategoryRequest) (*response.CategoryResponse, error)
	ListCategories(ctx context.Context, session *entity.Session, activeOnly bool) ([]response.CategoryResponse, error)
	DeactivateCategory(ctx context.Context, session *entity.Session, id int64) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) AddCategory(ctx context.Context, session *entity.Session, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if err := authorize(session, ActionManageMenu); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.log.Warn("Failed to add category", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}

	s.log.Info("Category added",
		zap.Int64("category_id", category.ID),
		zap.String("name", category.Name),
		zap.Int64("user_id", session.UserID),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) ListCategories(ctx context.Context, session *entity.Session, activeOnly bool) ([]response.CategoryResponse, error) {
	if err := authorize(session, ActionViewMenu); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return response.CategoriesToResponse(categories), nil
}

// DeactivateCategory hides a category; its items keep pointing at it.
func (s *categoryService) DeactivateCategory(ctx context.Context, session *entity.Session, id int64) error {
	if err := authorize(session, ActionManageMenu); err != nil {
		return err
	}

	if err := s.categoryRepo.Deactivate(ctx, id); err != nil {
		s.log.Warn("Failed to deactivate category", zap.Error(err), zap.Int64("category_id", id))
		return err
	}

	s.log.Info("Category deactivated", zap.Int64("category_id", id), zap.Int64("user_id", session.UserID))
	return nil
}
