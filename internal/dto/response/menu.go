package response

import (
	"time"

	"restaurant-menu/internal/data/entity"
)

type MenuItemResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	CategoryID      *int64    `json:"category_id,omitempty"`
	CategoryName    *string   `json:"category_name,omitempty"`
	IsAvailable     bool      `json:"is_available"`
	PreparationTime int       `json:"preparation_time"`
	Ingredients     *string   `json:"ingredients,omitempty"`
	Allergens       *string   `json:"allergens,omitempty"`
	Calories        *int      `json:"calories,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CategoryCountResponse struct {
	CategoryID   *int64 `json:"category_id,omitempty"`
	CategoryName string `json:"category_name"`
	Count        int64  `json:"count"`
}

type MenuStatsResponse struct {
	TotalItems       int64                   `json:"total_items"`
	AvailableItems   int64                   `json:"available_items"`
	UnavailableItems int64                   `json:"unavailable_items"`
	ActiveCategories int64                   `json:"active_categories"`
	AveragePrice     float64                 `json:"average_price"`
	CountPerCategory []CategoryCountResponse `json:"count_per_category"`
}

func MenuItemToResponse(item *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		CategoryID:      item.CategoryID,
		CategoryName:    item.CategoryName,
		IsAvailable:     item.IsAvailable,
		PreparationTime: item.PreparationTime,
		Ingredients:     item.Ingredients,
		Allergens:       item.Allergens,
		Calories:        item.Calories,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func MenuItemsToResponse(items []*entity.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, MenuItemToResponse(item))
	}
	return out
}

func StatsToResponse(stats *entity.MenuStats) MenuStatsResponse {
	resp := MenuStatsResponse{
		TotalItems:       stats.TotalItems,
		AvailableItems:   stats.AvailableItems,
		UnavailableItems: stats.UnavailableItems,
		ActiveCategories: stats.ActiveCategories,
		AveragePrice:     stats.AveragePrice,
		CountPerCategory: make([]CategoryCountResponse, 0, len(stats.CountPerCategory)),
	}
	for _, cc := range stats.CountPerCategory {
		resp.CountPerCategory = append(resp.CountPerCategory, CategoryCountResponse{
			CategoryID:   cc.CategoryID,
			CategoryName: cc.CategoryName,
			Count:        cc.Count,
		})
	}
	return resp
}
