package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")

	// -- Validation & Input --
	ErrNameRequired        = errors.New("product name is required")
	ErrDescriptionRequired = errors.New("product description is required")
	ErrCategoryRequired    = errors.New("product category is required")
	ErrImageRequired       = errors.New("at least one product image is required")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrNegativeStock       = errors.New("stock quantity cannot be negative")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
)
