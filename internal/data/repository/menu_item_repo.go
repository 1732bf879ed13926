package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/data/entity"
	"restaurant-menu/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id int64) (*entity.MenuItem, error)
	FindAll(ctx context.Context, filter entity.MenuItemFilter) ([]*entity.MenuItem, error)
	Search(ctx context.Context, query string) ([]*entity.MenuItem, error)
	Update(ctx context.Context, id int64, changes entity.MenuItemChanges) (*entity.MenuItem, error)
	Delete(ctx context.Context, id int64) error
	Statistics(ctx context.Context) (*entity.MenuStats, error)
}

type menuItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuItemRepository(db database.PgxIface, log *zap.Logger) MenuItemRepository {
	return &menuItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu_item")),
	}
}

const menuItemSelect = `
		SELECT m.id, m.name, m.description, m.price, m.category_id, m.is_available,
		       m.preparation_time, m.ingredients, m.allergens, m.calories,
		       m.created_at, m.updated_at, c.name
		FROM menu_items m
		LEFT JOIN categories c ON c.id = m.category_id
`

// Create validates, checks the category reference under a key-share lock, and inserts.
func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create menu item: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op once committed

	var categoryName *string
	if item.CategoryID != nil {
		name, err := r.lockCategory(ctx, tx, *item.CategoryID)
		if err != nil {
			return err
		}
		categoryName = &name
	}

	query := `
		INSERT INTO menu_items (name, description, price, category_id, is_available,
		                        preparation_time, ingredients, allergens, calories)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.Price,
		item.CategoryID,
		item.IsAvailable,
		item.PreparationTime,
		item.Ingredients,
		item.Allergens,
		item.Calories,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return r.mapWriteError("create", item.Name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit menu item", zap.Error(err), zap.String("name", item.Name))
		return fmt.Errorf("commit create menu item: %w", err)
	}

	item.CategoryName = categoryName
	return nil
}

func (r *menuItemRepository) FindByID(ctx context.Context, id int64) (*entity.MenuItem, error) {
	query := menuItemSelect + ` WHERE m.id = $1`

	item, err := scanMenuItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu item by ID",
			zap.Error(err),
			zap.Int64("item_id", id),
		)
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}

	return item, nil
}

// FindAll orders by category name (uncategorized last), then item name, then id.
func (r *menuItemRepository) FindAll(ctx context.Context, filter entity.MenuItemFilter) ([]*entity.MenuItem, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(menuItemSelect)
	queryBuilder.WriteString(" WHERE TRUE")

	args := []interface{}{}
	argCount := 1

	if filter.CategoryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND m.category_id = $%d", argCount))
		args = append(args, *filter.CategoryID)
		argCount++
	}

	if filter.AvailableOnly {
		queryBuilder.WriteString(" AND m.is_available")
	}

	queryBuilder.WriteString(" ORDER BY c.name NULLS LAST, m.name, m.id")

	items, err := r.queryItems(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find menu items",
			zap.Error(err),
			zap.Int64p("category_id", filter.CategoryID),
			zap.Bool("available_only", filter.AvailableOnly),
		)
		return nil, fmt.Errorf("failed to find menu items: %w", err)
	}

	r.log.Debug("Menu items found", zap.Int("count", len(items)))
	return items, nil
}

// Search matches name or description case-insensitively. A blank query matches nothing.
func (r *menuItemRepository) Search(ctx context.Context, query string) ([]*entity.MenuItem, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return []*entity.MenuItem{}, nil
	}

	searchQuery := menuItemSelect + `
		WHERE m.name ILIKE $1 ESCAPE '\' OR m.description ILIKE $1 ESCAPE '\'
		ORDER BY m.name, m.id
	`

	items, err := r.queryItems(ctx, searchQuery, "%"+escapeLike(term)+"%")
	if err != nil {
		r.log.Error("Failed to search menu items",
			zap.Error(err),
			zap.String("query", term),
		)
		return nil, fmt.Errorf("failed to search menu items: %w", err)
	}

	return items, nil
}

// Update locks the row, applies changes, revalidates the whole item, and writes it back.
func (r *menuItemRepository) Update(ctx context.Context, id int64, changes entity.MenuItemChanges) (*entity.MenuItem, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update menu item: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op once committed

	lockQuery := `
		SELECT id, name, description, price, category_id, is_available,
		       preparation_time, ingredients, allergens, calories,
		       created_at, updated_at, NULL::text
		FROM menu_items
		WHERE id = $1
		FOR UPDATE
	`

	item, err := scanMenuItem(tx.QueryRow(ctx, lockQuery, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update menu item %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to lock menu item", zap.Error(err), zap.Int64("item_id", id))
		return nil, fmt.Errorf("lock menu item %d: %w", id, err)
	}

	changes.Apply(item)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if item.CategoryID != nil {
		name, err := r.lockCategory(ctx, tx, *item.CategoryID)
		if err != nil {
			return nil, err
		}
		item.CategoryName = &name
	}

	updateQuery := `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category_id = $5,
		    is_available = $6, preparation_time = $7, ingredients = $8,
		    allergens = $9, calories = $10,
		    updated_at = GREATEST(NOW(), created_at)
		WHERE id = $1
		RETURNING updated_at
	`

	err = tx.QueryRow(ctx, updateQuery,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.CategoryID,
		item.IsAvailable,
		item.PreparationTime,
		item.Ingredients,
		item.Allergens,
		item.Calories,
	).Scan(&item.UpdatedAt)
	if err != nil {
		return nil, r.mapWriteError("update", item.Name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit menu item update", zap.Error(err), zap.Int64("item_id", id))
		return nil, fmt.Errorf("commit update menu item: %w", err)
	}

	return item, nil
}

// Delete removes the row; nothing references menu items.
func (r *menuItemRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM menu_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete menu item",
			zap.Error(err),
			zap.Int64("item_id", id),
		)
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete menu item %d: %w", id, apperr.ErrNotFound)
	}

	r.log.Info("Menu item deleted", zap.Int64("item_id", id))
	return nil
}

func (r *menuItemRepository) Statistics(ctx context.Context) (*entity.MenuStats, error) {
	stats := &entity.MenuStats{CountPerCategory: []entity.CategoryCount{}}

	totalsQuery := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_available),
		       COALESCE(ROUND(AVG(price) FILTER (WHERE is_available), 2), 0)::float8
		FROM menu_items
	`
	err := r.db.QueryRow(ctx, totalsQuery).Scan(&stats.TotalItems, &stats.AvailableItems, &stats.AveragePrice)
	if err != nil {
		r.log.Error("Failed to compute menu totals", zap.Error(err))
		return nil, fmt.Errorf("menu totals: %w", err)
	}
	stats.UnavailableItems = stats.TotalItems - stats.AvailableItems

	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE is_active`).Scan(&stats.ActiveCategories)
	if err != nil {
		r.log.Error("Failed to count active categories", zap.Error(err))
		return nil, fmt.Errorf("count active categories: %w", err)
	}

	perCategoryQuery := `
		SELECT m.category_id, COALESCE(c.name, 'Uncategorized'), COUNT(*)
		FROM menu_items m
		LEFT JOIN categories c ON c.id = m.category_id
		GROUP BY m.category_id, c.name
		ORDER BY c.name NULLS LAST
	`
	rows, err := r.db.Query(ctx, perCategoryQuery)
	if err != nil {
		r.log.Error("Failed to count items per category", zap.Error(err))
		return nil, fmt.Errorf("count per category: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cc entity.CategoryCount
		if err := rows.Scan(&cc.CategoryID, &cc.CategoryName, &cc.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		stats.CountPerCategory = append(stats.CountPerCategory, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}

	return stats, nil
}

// lockCategory proves the category exists and holds it until the transaction ends.
func (r *menuItemRepository) lockCategory(ctx context.Context, tx pgx.Tx, categoryID int64) (string, error) {
	var name string
	err := tx.QueryRow(ctx, `SELECT name FROM categories WHERE id = $1 FOR KEY SHARE`, categoryID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("category %d: %w", categoryID, apperr.ErrForeignKey)
	}
	if err != nil {
		r.log.Error("Failed to check category", zap.Error(err), zap.Int64("category_id", categoryID))
		return "", fmt.Errorf("check category %d: %w", categoryID, err)
	}
	return name, nil
}

func (r *menuItemRepository) mapWriteError(op, name string, err error) error {
	if pgErrorCode(err) == pgForeignKeyViolation {
		return fmt.Errorf("%s menu item %s: %w", op, name, apperr.ErrForeignKey)
	}
	if verr := checkViolation(err); verr != nil {
		return verr
	}
	r.log.Error("Failed to write menu item",
		zap.Error(err),
		zap.String("op", op),
		zap.String("name", name),
	)
	return fmt.Errorf("%s menu item %s: %w", op, name, err)
}

func (r *menuItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]*entity.MenuItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*entity.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}

	return items, nil
}

func scanMenuItem(row rowScanner) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.CategoryID,
		&item.IsAvailable,
		&item.PreparationTime,
		&item.Ingredients,
		&item.Allergens,
		&item.Calories,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
