package rest

import (
	"errors"
	"net/http"

	"minimart-be/internal/order"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create handles POST /api/orders, the public checkout endpoint.
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.svc.Place(c.Request.Context(), req.toInput())
	if err != nil {
		respondOrderError(c, err, "Error creating order")
		return
	}

	respondMessage(c, http.StatusCreated, "Order created successfully", toOrderResponse(o))
}

// Get handles GET /api/orders/:id (order confirmation page).
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondOrderError(c, err, "Error fetching order")
		return
	}

	respondData(c, http.StatusOK, toOrderResponse(o))
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// UpdatePaymentStatus handles PATCH /api/orders/:orderId/payment-status,
// the customer-facing "I paid" action.
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	var req paymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.svc.UpdatePaymentStatus(
		c.Request.Context(),
		c.Param("orderId"),
		order.PaymentStatus(req.PaymentStatus),
	)
	if err != nil {
		respondOrderError(c, err, "Error updating payment status")
		return
	}

	respondMessage(c, http.StatusOK, "Payment status updated", toOrderResponse(o))
}

// ListAll handles GET /api/admin/orders with optional status filters.
func (h *OrderHandler) ListAll(c *gin.Context) {
	var filter order.ListFilter

	if raw := c.Query("status"); raw != "" {
		status := order.Status(raw)
		if !status.Valid() {
			respondError(c, http.StatusBadRequest, order.ErrInvalidOrderStatus.Error())
			return
		}
		filter.Status = &status
	}

	if raw := c.Query("paymentStatus"); raw != "" {
		status := order.PaymentStatus(raw)
		if !status.Valid() {
			respondError(c, http.StatusBadRequest, order.ErrInvalidPaymentStatus.Error())
			return
		}
		filter.PaymentStatus = &status
	}

	orders, err := h.svc.ListAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching orders")
		return
	}

	respondList(c, http.StatusOK, len(orders), toOrderResponses(orders))
}

type updateOrderRequest struct {
	OrderStatus   *string `json:"orderStatus"`
	PaymentStatus *string `json:"paymentStatus"`
}

// Update handles PATCH /api/admin/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var update order.StatusUpdate
	if req.OrderStatus != nil {
		status := order.Status(*req.OrderStatus)
		update.OrderStatus = &status
	}
	if req.PaymentStatus != nil {
		status := order.PaymentStatus(*req.PaymentStatus)
		update.PaymentStatus = &status
	}

	o, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondOrderError(c, err, "Error updating order")
		return
	}

	respondMessage(c, http.StatusOK, "Order updated successfully", toOrderResponse(o))
}

// respondOrderError maps the order error taxonomy onto HTTP status codes:
// validation and business-rule failures are 400, missing resources 404,
// anything else a storage-level 500 with a generic message.
func respondOrderError(c *gin.Context, err error, fallback string) {
	status := orderErrorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = fallback
	}
	respondError(c, status, message)
}

func orderErrorStatus(err error) int {
	var (
		notFound     *order.ProductNotFoundError
		unavailable  *order.ProductUnavailableError
		insufficient *order.InsufficientStockError
	)

	switch {
	case errors.Is(err, order.ErrOrderNotFound), errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrCustomerIncomplete),
		errors.Is(err, order.ErrInvalidPaymentMethod),
		errors.Is(err, order.ErrInvalidPaymentStatus),
		errors.Is(err, order.ErrInvalidOrderStatus),
		errors.Is(err, order.ErrNoFieldsToUpdate),
		errors.As(err, &unavailable),
		errors.As(err, &insufficient):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
