package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool() error = %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func expectMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMenuItemCreate(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuItemRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT name FROM categories").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"name"}).AddRow("Desserts"))
	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs("Chocolate Cake", pgxmock.AnyArg(), 8.99, pgxmock.AnyArg(), true,
			entity.DefaultPreparationTime, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))
	mock.ExpectCommit()

	categoryID := int64(3)
	item := &entity.MenuItem{
		Name:            "Chocolate Cake",
		Price:           8.99,
		CategoryID:      &categoryID,
		IsAvailable:     true,
		PreparationTime: entity.DefaultPreparationTime,
	}

	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if item.ID != 7 {
		t.Errorf("item.ID = %d, want 7", item.ID)
	}
	if item.CategoryName == nil || *item.CategoryName != "Desserts" {
		t.Errorf("item.CategoryName = %v, want Desserts", item.CategoryName)
	}
	expectMet(t, mock)
}

func TestMenuItemCreateMissingCategory(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuItemRepository(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT name FROM categories").
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	categoryID := int64(42)
	item := &entity.MenuItem{
		Name:            "Ghost Dish",
		Price:           1,
		CategoryID:      &categoryID,
		PreparationTime: entity.DefaultPreparationTime,
	}

	err := repo.Create(context.Background(), item)
	if !errors.Is(err, apperr.ErrForeignKey) {
		t.Fatalf("Create() error = %v, want ErrForeignKey", err)
	}
	expectMet(t, mock)
}

func TestMenuItemCreateInvalidNeverTouchesDB(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuItemRepository(mock, zap.NewNop())

	item := &entity.MenuItem{Name: "Bad", Price: -0.01, PreparationTime: 15}
	err := repo.Create(context.Background(), item)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("Create() error = %v, want ErrValidation", err)
	}
	expectMet(t, mock)
}

func TestMenuItemCreateForeignKeyViolationFromDB(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuItemRepository(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs("Soup", pgxmock.AnyArg(), 4.5, pgxmock.AnyArg(), false,
			10, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	item := &entity.MenuItem{Name: "Soup", Price: 4.5, PreparationTime: 10}
	err := repo.Create(context.Background(), item)
	if !errors.Is(err, apperr.ErrForeignKey) {
		t.Fatalf("Create() error = %v, want ErrForeignKey", err)
	}
	expectMet(t, mock)
}

func TestMenuItemUpdateNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuItemRepository(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("FROM menu_items").
		WithArgs(int64(9999)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	price := 1.0
	_, err := repo.Update(context.Background(), 9999, entity.MenuItemChanges{Price: &price})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Update() error = %v, want ErrNotFound", err)
	}
	expectMet(t, mock)
}

func TestMenuItemDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"existing", 1, nil},
		{"missing", 0, apperr.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewMenuItemRepository(mock, zap.NewNop())

			mock.ExpectExec("DELETE FROM menu_items").
				WithArgs(int64(9999)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := repo.Delete(context.Background(), 9999)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Delete() error = %v, want %v", err, tt.wantErr)
			}
			expectMet(t, mock)
		})
	}
}

func TestMenuItemSearchBlankQuery(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuItemRepository(mock, zap.NewNop())

	for _, q := range []string{"", "   "} {
		items, err := repo.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", q, err)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("Search(%q) = %v, want empty non-nil slice", q, items)
		}
	}
	expectMet(t, mock)
}

func TestMenuItemSearchEscapesPattern(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuItemRepository(mock, zap.NewNop())

	mock.ExpectQuery("ILIKE").
		WithArgs(`%50\%%`).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "description", "price", "category_id", "is_available",
			"preparation_time", "ingredients", "allergens", "calories",
			"created_at", "updated_at", "name",
		}))

	items, err := repo.Search(context.Background(), "50%")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Search() = %d items, want 0", len(items))
	}
	expectMet(t, mock)
}

func TestMenuItemStatistics(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuItemRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM menu_items").
		WillReturnRows(pgxmock.NewRows([]string{"count", "available", "avg"}).AddRow(int64(4), int64(3), 10.5))
	mock.ExpectQuery("FROM categories WHERE is_active").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))
	mock.ExpectQuery("GROUP BY").
		WillReturnRows(pgxmock.NewRows([]string{"category_id", "name", "count"}))

	stats, err := repo.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}
	if stats.TotalItems != 4 || stats.AvailableItems != 3 || stats.UnavailableItems != 1 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.AveragePrice != 10.5 || stats.ActiveCategories != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.CountPerCategory == nil {
		t.Error("CountPerCategory should be an empty slice, not nil")
	}
	expectMet(t, mock)
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"cake":   "cake",
		"50%":    `50\%`,
		"a_b":    `a\_b`,
		`back\s`: `back\\s`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
