package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/data/entity"
	"restaurant-menu/internal/data/repository"
)

// memStore is an in-memory store enforcing the same uniqueness and
// reference rules as the Postgres schema.
type memStore struct {
	mu         sync.Mutex
	users      map[int64]*entity.User
	categories map[int64]*entity.Category
	items      map[int64]*entity.MenuItem
	nextID     int64
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[int64]*entity.User{},
		categories: map[int64]*entity.Category{},
		items:      map[int64]*entity.MenuItem{},
	}
}

func (m *memStore) repository() *repository.Repository {
	return &repository.Repository{
		User:     &memUsers{m},
		Category: &memCategories{m},
		MenuItem: &memItems{m},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

type memUsers struct{ *memStore }

func (r *memUsers) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("create user %s: %w", user.Username, apperr.ErrDuplicateUsername)
		}
	}
	if user.Role == "" {
		user.Role = entity.RoleStaff
	}
	now := time.Now()
	user.ID, user.CreatedAt, user.UpdatedAt = r.id(), now, now
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUsers) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, nil
}

func (r *memUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUsers) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := []*entity.User{}
	for _, u := range r.users {
		out := *u
		users = append(users, &out)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memUsers) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *memUsers) UpdateProfile(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	stored.FullName, stored.Email = user.FullName, user.Email
	stored.UpdatedAt = time.Now()
	user.UpdatedAt = stored.UpdatedAt
	return nil
}

type memCategories struct{ *memStore }

func (r *memCategories) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return apperr.NewValidationError("name", "This field is required")
	}
	for _, c := range r.categories {
		if c.Name == category.Name {
			return fmt.Errorf("create category %s: %w", category.Name, apperr.ErrDuplicateCategory)
		}
	}
	category.ID, category.CreatedAt, category.IsActive = r.id(), time.Now(), true
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *memCategories) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.categories[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, nil
}

func (r *memCategories) FindAll(_ context.Context, activeOnly bool) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	categories := []*entity.Category{}
	for _, c := range r.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		out := *c
		categories = append(categories, &out)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (r *memCategories) Deactivate(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return fmt.Errorf("deactivate category %d: %w", id, apperr.ErrNotFound)
	}
	c.IsActive = false
	return nil
}

type memItems struct{ *memStore }

// read returns a copy with the category name joined in. Caller holds mu.
func (r *memItems) read(item *entity.MenuItem) *entity.MenuItem {
	out := *item
	out.CategoryName = nil
	if item.CategoryID != nil {
		if c, ok := r.categories[*item.CategoryID]; ok {
			name := c.Name
			out.CategoryName = &name
		}
	}
	return &out
}

func (r *memItems) checkCategory(categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	if _, ok := r.categories[*categoryID]; !ok {
		return fmt.Errorf("category %d: %w", *categoryID, apperr.ErrForeignKey)
	}
	return nil
}

func (r *memItems) Create(_ context.Context, item *entity.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkCategory(item.CategoryID); err != nil {
		return err
	}
	now := time.Now()
	item.ID, item.CreatedAt, item.UpdatedAt = r.id(), now, now
	stored := *item
	r.items[item.ID] = &stored
	item.CategoryName = r.read(&stored).CategoryName
	return nil
}

func (r *memItems) FindByID(_ context.Context, id int64) (*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, ok := r.items[id]; ok {
		return r.read(item), nil
	}
	return nil, nil
}

func (r *memItems) FindAll(_ context.Context, filter entity.MenuItemFilter) ([]*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []*entity.MenuItem{}
	for _, item := range r.items {
		if filter.CategoryID != nil && (item.CategoryID == nil || *item.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.AvailableOnly && !item.IsAvailable {
			continue
		}
		items = append(items, r.read(item))
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.CategoryName == nil && b.CategoryName != nil:
			return false
		case a.CategoryName != nil && b.CategoryName == nil:
			return true
		case a.CategoryName != nil && *a.CategoryName != *b.CategoryName:
			return *a.CategoryName < *b.CategoryName
		case a.Name != b.Name:
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return items, nil
}

func (r *memItems) Search(_ context.Context, query string) ([]*entity.MenuItem, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []*entity.MenuItem{}, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []*entity.MenuItem{}
	for _, item := range r.items {
		desc := ""
		if item.Description != nil {
			desc = *item.Description
		}
		if strings.Contains(strings.ToLower(item.Name), term) || strings.Contains(strings.ToLower(desc), term) {
			items = append(items, r.read(item))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *memItems) Update(_ context.Context, id int64, changes entity.MenuItemChanges) (*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("update menu item %d: %w", id, apperr.ErrNotFound)
	}
	item := *stored
	changes.Apply(&item)
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := r.checkCategory(item.CategoryID); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now()
	r.items[id] = &item
	return r.read(&item), nil
}

func (r *memItems) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("delete menu item %d: %w", id, apperr.ErrNotFound)
	}
	delete(r.items, id)
	return nil
}

func (r *memItems) Statistics(_ context.Context) (*entity.MenuStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &entity.MenuStats{CountPerCategory: []entity.CategoryCount{}}
	var sum float64
	perCategory := map[int64]int64{}
	var uncategorized int64
	for _, item := range r.items {
		stats.TotalItems++
		if item.IsAvailable {
			stats.AvailableItems++
			sum += item.Price
		}
		if item.CategoryID == nil {
			uncategorized++
		} else {
			perCategory[*item.CategoryID]++
		}
	}
	stats.UnavailableItems = stats.TotalItems - stats.AvailableItems
	if stats.AvailableItems > 0 {
		stats.AveragePrice = math.Round(sum/float64(stats.AvailableItems)*100) / 100
	}
	for id, c := range r.categories {
		if c.IsActive {
			stats.ActiveCategories++
		}
		if n := perCategory[id]; n > 0 {
			categoryID := id
			stats.CountPerCategory = append(stats.CountPerCategory, entity.CategoryCount{
				CategoryID: &categoryID, CategoryName: c.Name, Count: n,
			})
		}
	}
	sort.Slice(stats.CountPerCategory, func(i, j int) bool {
		return stats.CountPerCategory[i].CategoryName < stats.CountPerCategory[j].CategoryName
	})
	if uncategorized > 0 {
		stats.CountPerCategory = append(stats.CountPerCategory, entity.CategoryCount{
			CategoryName: "Uncategorized", Count: uncategorized,
		})
	}
	return stats, nil
}
