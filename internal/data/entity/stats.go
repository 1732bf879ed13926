package entity

type CategoryCount struct {
	CategoryID   *int64 `db:"category_id"`
	CategoryName string `db:"category_name"`
	Count        int64  `db:"item_count"`
}

type MenuStats struct {
	TotalItems       int64
	AvailableItems   int64
	UnavailableItems int64
	ActiveCategories int64
	AveragePrice     float64
	CountPerCategory []CategoryCount
}
