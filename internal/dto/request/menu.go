package request

type MenuItemRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price" validate:"gte=0"`
	CategoryID      *int64  `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	IsAvailable     *bool   `json:"is_available,omitempty"`
	PreparationTime *int    `json:"preparation_time,omitempty" validate:"omitempty,gt=0"`
	Ingredients     *string `json:"ingredients,omitempty"`
	Allergens       *string `json:"allergens,omitempty"`
	Calories        *int    `json:"calories,omitempty" validate:"omitempty,gte=0"`
}

// MenuItemUpdateRequest is a partial update; nil fields are left alone.
type MenuItemUpdateRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	CategoryID      *int64   `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	ClearCategory   bool     `json:"clear_category,omitempty"`
	IsAvailable     *bool    `json:"is_available,omitempty"`
	PreparationTime *int     `json:"preparation_time,omitempty" validate:"omitempty,gt=0"`
	Ingredients     *string  `json:"ingredients,omitempty"`
	Allergens       *string  `json:"allergens,omitempty"`
	Calories        *int     `json:"calories,omitempty" validate:"omitempty,gte=0"`
}
