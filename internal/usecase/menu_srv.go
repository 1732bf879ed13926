package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/data/entity"
	"restaurant-menu/internal/data/repository"
	"restaurant-menu/internal/dto/request"
	"restaurant-menu/internal/dto/response"
	"restaurant-menu/pkg/utils"

	"go.uber.org/zap"
)

type MenuService interface {
	AddMenuItem(ctx context.Context, session *entity.Session, req *request.MenuItemRequest) (*response.MenuItemResponse, error)
	UpdateMenuItem(ctx context.Context, session *entity.Session, id int64, req *request.MenuItemUpdateRequest) (*response.MenuItemResponse, error)
	SetAvailability(ctx context.Context, session *entity.Session, id int64, available bool) (*response.MenuItemResponse, error)
	DeleteMenuItem(ctx context.Context, session *entity.Session, id int64) error
	GetMenuItem(ctx context.Context, session *entity.Session, id int64) (*response.MenuItemResponse, error)
	BrowseMenu(ctx context.Context, session *entity.Session) ([]response.MenuItemResponse, error)
	SearchMenu(ctx context.Context, session *entity.Session, query string) ([]response.MenuItemResponse, error)
	BrowseByCategory(ctx context.Context, session *entity.Session, categoryID int64) ([]response.MenuItemResponse, error)
	GetStatistics(ctx context.Context, session *entity.Session) (*response.MenuStatsResponse, error)
}

type menuService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMenuService(repo *repository.Repository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) AddMenuItem(ctx context.Context, session *entity.Session, req *request.MenuItemRequest) (*response.MenuItemResponse, error) {
	// 1. Authorize
	if err := authorize(session, ActionManageMenu); err != nil {
		s.log.Warn("Add menu item denied", zap.Int64("user_id", actorID(session)))
		return nil, err
	}

	// 2. Validate request shape
	req.Name = strings.TrimSpace(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	// 3. Build entity with defaults
	item := &entity.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		IsAvailable:     true,
		PreparationTime: entity.DefaultPreparationTime,
		Ingredients:     req.Ingredients,
		Allergens:       req.Allergens,
		Calories:        req.Calories,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}

	// 4. Domain ranges
	if err := item.Validate(); err != nil {
		return nil, err
	}

	// 5. Save
	if err := s.repo.MenuItem.Create(ctx, item); err != nil {
		s.log.Warn("Failed to add menu item", zap.Error(err), zap.String("name", item.Name))
		return nil, err
	}

	s.log.Info("Menu item added",
		zap.Int64("item_id", item.ID),
		zap.String("name", item.Name),
		zap.Int64("user_id", session.UserID),
	)

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, session *entity.Session, id int64, req *request.MenuItemUpdateRequest) (*response.MenuItemResponse, error) {
	if err := authorize(session, ActionManageMenu); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.ClearCategory && req.CategoryID != nil {
		return nil, apperr.NewValidationError("category_id", "Cannot set and clear the category at once")
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	changes := entity.MenuItemChanges{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		ClearCategory:   req.ClearCategory,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
		Ingredients:     req.Ingredients,
		Allergens:       req.Allergens,
		Calories:        req.Calories,
	}
	if changes.IsEmpty() {
		return nil, apperr.NewValidationError("changes", "No fields to update")
	}

	return s.update(ctx, session, id, changes)
}

// SetAvailability toggles whether an item can be ordered.
func (s *menuService) SetAvailability(ctx context.Context, session *entity.Session, id int64, available bool) (*response.MenuItemResponse, error) {
	if err := authorize(session, ActionManageMenu); err != nil {
		return nil, err
	}

	return s.update(ctx, session, id, entity.MenuItemChanges{IsAvailable: &available})
}

func (s *menuService) update(ctx context.Context, session *entity.Session, id int64, changes entity.MenuItemChanges) (*response.MenuItemResponse, error) {
	item, err := s.repo.MenuItem.Update(ctx, id, changes)
	if err != nil {
		s.log.Warn("Failed to update menu item", zap.Error(err), zap.Int64("item_id", id))
		return nil, err
	}

	s.log.Info("Menu item updated",
		zap.Int64("item_id", item.ID),
		zap.Int64("user_id", session.UserID),
	)

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, session *entity.Session, id int64) error {
	if err := authorize(session, ActionManageMenu); err != nil {
		return err
	}

	if err := s.repo.MenuItem.Delete(ctx, id); err != nil {
		s.log.Warn("Failed to delete menu item", zap.Error(err), zap.Int64("item_id", id))
		return err
	}

	s.log.Info("Menu item deleted", zap.Int64("item_id", id), zap.Int64("user_id", session.UserID))
	return nil
}

func (s *menuService) GetMenuItem(ctx context.Context, session *entity.Session, id int64) (*response.MenuItemResponse, error) {
	if err := authorize(session, ActionViewMenu); err != nil {
		return nil, err
	}

	item, err := s.repo.MenuItem.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("menu item %d: %w", id, apperr.ErrNotFound)
	}

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

// BrowseMenu lists every item, available or not.
func (s *menuService) BrowseMenu(ctx context.Context, session *entity.Session) ([]response.MenuItemResponse, error) {
	if err := authorize(session, ActionViewMenu); err != nil {
		return nil, err
	}

	items, err := s.repo.MenuItem.FindAll(ctx, entity.MenuItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("browse menu: %w", err)
	}

	return response.MenuItemsToResponse(items), nil
}

func (s *menuService) SearchMenu(ctx context.Context, session *entity.Session, query string) ([]response.MenuItemResponse, error) {
	if err := authorize(session, ActionSearchMenu); err != nil {
		return nil, err
	}

	items, err := s.repo.MenuItem.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search menu: %w", err)
	}

	s.log.Debug("Menu searched", zap.String("query", query), zap.Int("results", len(items)))
	return response.MenuItemsToResponse(items), nil
}

// BrowseByCategory lists the available items of one existing category.
func (s *menuService) BrowseByCategory(ctx context.Context, session *entity.Session, categoryID int64) ([]response.MenuItemResponse, error) {
	if err := authorize(session, ActionViewMenu); err != nil {
		return nil, err
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("browse category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %d: %w", categoryID, apperr.ErrNotFound)
	}

	items, err := s.repo.MenuItem.FindAll(ctx, entity.MenuItemFilter{
		CategoryID:    &categoryID,
		AvailableOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("browse category: %w", err)
	}

	return response.MenuItemsToResponse(items), nil
}

func (s *menuService) GetStatistics(ctx context.Context, session *entity.Session) (*response.MenuStatsResponse, error) {
	if err := authorize(session, ActionViewMenu); err != nil {
		return nil, err
	}

	stats, err := s.repo.MenuItem.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("menu statistics: %w", err)
	}

	resp := response.StatsToResponse(stats)
	return &resp, nil
}
