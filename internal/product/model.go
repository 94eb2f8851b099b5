package product

import "time"

type SortOption string

const (
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortNewest    SortOption = "newest"
)

// Product prices are stored in currency minor units.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Category    string
	Images      []string
	StockQty    int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ListOptions struct {
	Search     *string
	Category   *string
	MinPrice   *int64
	MaxPrice   *int64
	Sort       SortOption
	OnlyActive bool
}

type NewProduct struct {
	Name        string
	Description string
	Price       int64
	Category    string
	Images      []string
	StockQty    int
	IsActive    *bool
}

// UpdateProduct carries only the fields to change; nil means leave as is.
type UpdateProduct struct {
	Name        *string
	Description *string
	Price       *int64
	Category    *string
	Images      []string
	StockQty    *int
	IsActive    *bool
}

func (u UpdateProduct) HasAnyField() bool {
	return u.Name != nil ||
		u.Description != nil ||
		u.Price != nil ||
		u.Category != nil ||
		u.Images != nil ||
		u.StockQty != nil ||
		u.IsActive != nil
}
