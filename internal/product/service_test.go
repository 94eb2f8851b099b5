package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, opts ListOptions) ([]Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, productID string) (*Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p Product) (*Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, productID string, input UpdateProduct) (*Product, error) {
	args := m.Called(ctx, productID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Deactivate(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func newProductInput() NewProduct {
	return NewProduct{
		Name:        "Blue Mug",
		Description: "Ceramic mug, 350ml",
		Price:       200,
		Category:    "Kitchen",
		Images:      []string{"mug.jpg"},
		StockQty:    5,
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := newProductInput()

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p Product) bool {
			return p.ID != "" && p.Name == "Blue Mug" && p.IsActive
		})).Return(&Product{ID: "prod-1", Name: "Blue Mug", IsActive: true}, nil).Once()

		p, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, "prod-1", p.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Explicit Inactive", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := newProductInput()
		inactive := false
		input.IsActive = &inactive

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p Product) bool {
			return !p.IsActive
		})).Return(&Product{ID: "prod-1", IsActive: false}, nil).Once()

		_, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Missing Name", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := newProductInput()
		input.Name = "  "

		_, err := svc.Create(ctx, input)

		assert.Equal(t, ErrNameRequired, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error - Missing Description", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := newProductInput()
		input.Description = ""

		_, err := svc.Create(ctx, input)

		assert.Equal(t, ErrDescriptionRequired, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error - No Images", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := newProductInput()
		input.Images = nil

		_, err := svc.Create(ctx, input)

		assert.Equal(t, ErrImageRequired, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error - Negative Price", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := newProductInput()
		input.Price = -1

		_, err := svc.Create(ctx, input)

		assert.Equal(t, ErrNegativePrice, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error - Negative Stock", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := newProductInput()
		input.StockQty = -5

		_, err := svc.Create(ctx, input)

		assert.Equal(t, ErrNegativeStock, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		price := int64(250)
		input := UpdateProduct{Price: &price}
		expected := &Product{ID: "prod-1", Price: 250}

		mockRepo.On("Update", ctx, "prod-1", input).Return(expected, nil).Once()

		p, err := svc.Update(ctx, "prod-1", input)

		assert.NoError(t, err)
		assert.Equal(t, expected, p)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - No Fields", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Update(ctx, "prod-1", UpdateProduct{})

		assert.Equal(t, ErrNoFieldsToUpdate, err)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Error - Blank Name", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		blank := "   "

		_, err := svc.Update(ctx, "prod-1", UpdateProduct{Name: &blank})

		assert.Equal(t, ErrNameRequired, err)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Error - Negative Price", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		price := int64(-10)

		_, err := svc.Update(ctx, "prod-1", UpdateProduct{Price: &price})

		assert.Equal(t, ErrNegativePrice, err)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Error - Not Found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		price := int64(250)
		input := UpdateProduct{Price: &price}

		mockRepo.On("Update", ctx, "missing", input).Return(nil, ErrProductNotFound).Once()

		_, err := svc.Update(ctx, "missing", input)

		assert.Equal(t, ErrProductNotFound, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Deactivate", ctx, "prod-1").Return(nil).Once()

		err := svc.Delete(ctx, "prod-1")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Not Found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Deactivate", ctx, "missing").Return(ErrProductNotFound).Once()

		err := svc.Delete(ctx, "missing")

		assert.Equal(t, ErrProductNotFound, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_GetList(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		opts := ListOptions{OnlyActive: true}
		expected := []Product{{ID: "prod-1"}}

		mockRepo.On("List", ctx, opts).Return(expected, nil).Once()

		products, err := svc.GetList(ctx, opts)

		assert.NoError(t, err)
		assert.Equal(t, expected, products)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		dbErr := errors.New("db error")

		mockRepo.On("List", ctx, ListOptions{}).Return(nil, dbErr).Once()

		_, err := svc.GetList(ctx, ListOptions{})

		assert.Equal(t, dbErr, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_GetCategories(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	expected := []string{"Kitchen", "Stationery"}

	mockRepo.On("Categories", ctx).Return(expected, nil).Once()

	categories, err := svc.GetCategories(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, categories)
	mockRepo.AssertExpectations(t)
}
