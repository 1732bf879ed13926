package entity

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"restaurant-menu/internal/apperr"
)

const (
	DefaultPreparationTime = 15
	MaxNameLength          = 100
	// MaxPrice is the largest value a NUMERIC(10,2) column holds.
	MaxPrice = 99999999.99
)

type MenuItem struct {
	Base
	Name            string  `db:"name"`
	Description     *string `db:"description"`
	Price           float64 `db:"price"`
	CategoryID      *int64  `db:"category_id"`
	IsAvailable     bool    `db:"is_available"`
	PreparationTime int     `db:"preparation_time"`
	Ingredients     *string `db:"ingredients"`
	Allergens       *string `db:"allergens"`
	Calories        *int    `db:"calories"`

	// CategoryName is filled from a join on reads.
	CategoryName *string `db:"category_name"`
}

// Validate checks the stored-field invariants of a menu item.
func (m *MenuItem) Validate() error {
	v := &apperr.ValidationError{}

	name := strings.TrimSpace(m.Name)
	switch {
	case name == "":
		v.Add("name", "This field is required")
	case utf8.RuneCountInString(name) > MaxNameLength:
		v.Add("name", fmt.Sprintf("Maximum length is %d", MaxNameLength))
	}

	switch {
	case math.IsNaN(m.Price) || math.IsInf(m.Price, 0):
		v.Add("price", "Must be a number")
	case m.Price < 0:
		v.Add("price", "Must be greater than or equal to 0")
	case m.Price > MaxPrice:
		v.Add("price", fmt.Sprintf("Must be at most %.2f", MaxPrice))
	case !hasAtMostTwoDecimals(m.Price):
		v.Add("price", "Must have at most two decimal places")
	}

	if m.PreparationTime <= 0 {
		v.Add("preparation_time", "Must be greater than 0")
	}

	if m.Calories != nil && *m.Calories < 0 {
		v.Add("calories", "Must be greater than or equal to 0")
	}

	if m.CategoryID != nil && *m.CategoryID <= 0 {
		v.Add("category_id", "Must be a positive id")
	}

	return v.OrNil()
}

func hasAtMostTwoDecimals(price float64) bool {
	cents := price * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// MenuItemChanges is a partial update. Nil fields are left untouched.
type MenuItemChanges struct {
	Name            *string
	Description     *string
	Price           *float64
	CategoryID      *int64
	ClearCategory   bool
	IsAvailable     *bool
	PreparationTime *int
	Ingredients     *string
	Allergens       *string
	Calories        *int
}

// IsEmpty reports whether the changes would modify nothing.
func (c MenuItemChanges) IsEmpty() bool {
	return c.Name == nil && c.Description == nil && c.Price == nil &&
		c.CategoryID == nil && !c.ClearCategory && c.IsAvailable == nil &&
		c.PreparationTime == nil && c.Ingredients == nil && c.Allergens == nil &&
		c.Calories == nil
}

// Apply copies the set fields onto item. The caller validates afterwards.
func (c MenuItemChanges) Apply(item *MenuItem) {
	if c.Name != nil {
		item.Name = *c.Name
	}
	if c.Description != nil {
		item.Description = c.Description
	}
	if c.Price != nil {
		item.Price = *c.Price
	}
	if c.ClearCategory {
		item.CategoryID = nil
		item.CategoryName = nil
	} else if c.CategoryID != nil {
		id := *c.CategoryID
		item.CategoryID = &id
		item.CategoryName = nil
	}
	if c.IsAvailable != nil {
		item.IsAvailable = *c.IsAvailable
	}
	if c.PreparationTime != nil {
		item.PreparationTime = *c.PreparationTime
	}
	if c.Ingredients != nil {
		item.Ingredients = c.Ingredients
	}
	if c.Allergens != nil {
		item.Allergens = c.Allergens
	}
	if c.Calories != nil {
		item.Calories = c.Calories
	}
}

type MenuItemFilter struct {
	CategoryID    *int64
	AvailableOnly bool
}
