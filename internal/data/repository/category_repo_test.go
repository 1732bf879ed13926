package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/data/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func TestCategoryCreate(t *testing.T) {
	mock := newMock(t)
	repo := NewCategoryRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("Desserts", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "is_active", "created_at"}).AddRow(int64(3), true, now))

	category := &entity.Category{Name: "  Desserts "}
	if err := repo.Create(context.Background(), category); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if category.ID != 3 || !category.IsActive || category.Name != "Desserts" {
		t.Errorf("category = %+v", category)
	}
	expectMet(t, mock)
}

func TestCategoryCreateDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewCategoryRepository(mock, zap.NewNop())

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("Desserts", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &entity.Category{Name: "Desserts"})
	if !errors.Is(err, apperr.ErrDuplicateCategory) {
		t.Fatalf("Create() error = %v, want ErrDuplicateCategory", err)
	}
	expectMet(t, mock)
}

func TestCategoryDeactivateMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewCategoryRepository(mock, zap.NewNop())

	mock.ExpectExec("UPDATE categories").
		WithArgs(int64(9999)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Deactivate(context.Background(), 9999)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Deactivate() error = %v, want ErrNotFound", err)
	}
	expectMet(t, mock)
}

func TestCategoryCreateNameLength(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"multibyte within limit", strings.Repeat("é", entity.MaxNameLength), false},
		{"one rune over", strings.Repeat("é", entity.MaxNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewCategoryRepository(mock, zap.NewNop())
			if !tt.wantErr {
				mock.ExpectQuery("INSERT INTO categories").
					WithArgs(tt.input, pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id", "is_active", "created_at"}).AddRow(int64(1), true, now))
			}

			err := repo.Create(context.Background(), &entity.Category{Name: tt.input})
			if tt.wantErr != errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			expectMet(t, mock)
		})
	}
}
