package rest

import (
	"time"

	"minimart-be/internal/order"
	"minimart-be/internal/product"
	"minimart-be/internal/user"
)

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type customerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

type createOrderRequest struct {
	Items         []cartItemRequest `json:"items"`
	Customer      customerRequest   `json:"customer"`
	PaymentMethod string            `json:"paymentMethod"`
}

func (r createOrderRequest) toInput() order.PlaceOrderInput {
	items := make([]order.CartItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, order.CartItem{
			ProductID: item.ProductID,
			Qty:       item.Qty,
		})
	}

	return order.PlaceOrderInput{
		Items: items,
		Customer: order.Customer{
			Name:    r.Customer.Name,
			Phone:   r.Customer.Phone,
			Address: r.Customer.Address,
			City:    r.Customer.City,
			Pincode: r.Customer.Pincode,
		},
		PaymentMethod: order.PaymentMethod(r.PaymentMethod),
	}
}

type orderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	Items         []orderItemResponse `json:"items"`
	Customer      customerRequest     `json:"customer"`
	TotalAmount   int64               `json:"totalAmount"`
	PaymentMethod string              `json:"paymentMethod"`
	PaymentStatus string              `json:"paymentStatus"`
	OrderStatus   string              `json:"orderStatus"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Qty:       item.Qty,
		})
	}

	return orderResponse{
		ID:    o.ID,
		Items: items,
		Customer: customerRequest{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
			City:    o.Customer.City,
			Pincode: o.Customer.Pincode,
		},
		TotalAmount:   o.TotalAmount,
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		OrderStatus:   string(o.OrderStatus),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toOrderResponses(orders []*order.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	StockQty    int       `json:"stockQty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProductResponse(p *product.Product) productResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Images:      images,
		StockQty:    p.StockQty,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []product.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

type userResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
	}
}
