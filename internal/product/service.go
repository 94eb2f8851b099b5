package product

import (
	"context"
	"strings"

	"minimart-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetList(ctx context.Context, opts ListOptions) ([]Product, error)
	GetByID(ctx context.Context, productID string) (*Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, input NewProduct) (*Product, error)
	Update(ctx context.Context, productID string, input UpdateProduct) (*Product, error)
	Delete(ctx context.Context, productID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetList(ctx context.Context, opts ListOptions) ([]Product, error) {
	products, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Debug("product list fetched",
		zap.Int("count", len(products)),
		zap.Bool("only_active", opts.OnlyActive),
	)

	return products, nil
}

func (s *service) GetByID(ctx context.Context, productID string) (*Product, error) {
	return s.repo.GetByID(ctx, productID)
}

func (s *service) GetCategories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *service) Create(ctx context.Context, input NewProduct) (*Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, ErrCategoryRequired
	}
	if len(input.Images) == 0 {
		return nil, ErrImageRequired
	}
	if input.Price < 0 {
		return nil, ErrNegativePrice
	}
	if input.StockQty < 0 {
		return nil, ErrNegativeStock
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	p := Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Images:      input.Images,
		StockQty:    input.StockQty,
		IsActive:    isActive,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create product", zap.Error(err))
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.String("product_id", created.ID),
		zap.String("name", created.Name),
	)

	return created, nil
}

func (s *service) Update(ctx context.Context, productID string, input UpdateProduct) (*Product, error) {
	if !input.HasAnyField() {
		return nil, ErrNoFieldsToUpdate
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, ErrNameRequired
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, ErrNegativePrice
	}
	if input.StockQty != nil && *input.StockQty < 0 {
		return nil, ErrNegativeStock
	}

	return s.repo.Update(ctx, productID, input)
}

func (s *service) Delete(ctx context.Context, productID string) error {
	if err := s.repo.Deactivate(ctx, productID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("product deactivated", zap.String("product_id", productID))
	return nil
}
