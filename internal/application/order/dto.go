package order

import (
	"time"

	customerapp "github.com/ecommerce/backend/internal/application/customer"
	"github.com/ecommerce/backend/internal/domain/customer"
	"github.com/ecommerce/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest is one line of an order creation request
type CreateOrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	CustomerID uuid.UUID                `json:"customerId" binding:"required"`
	Items      []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ListFilter narrows an order listing
type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=Created Paid Cancelled"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents a full order in API responses. The detail
// view carries the complete customer object, not just its id.
type OrderResponse struct {
	ID        uuid.UUID                    `json:"id"`
	Customer  customerapp.CustomerResponse `json:"customer"`
	Status    string                       `json:"status"`
	OrderDate time.Time                    `json:"orderDate"`
	Items     []OrderItemResponse          `json:"items"`
	Total     decimal.Decimal              `json:"total"`
}

// OrderSummaryResponse represents an order in listing responses
type OrderSummaryResponse struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Status       string          `json:"status"`
	OrderDate    time.Time       `json:"orderDate"`
	ItemCount    int             `json:"itemCount"`
	Total        decimal.Decimal `json:"total"`
}

// ToOrderResponse converts a domain order to a full response DTO
func ToOrderResponse(o *order.Order, c *customer.Customer) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		}
	}

	return OrderResponse{
		ID:        o.ID,
		Customer:  customerapp.ToCustomerResponse(c),
		Status:    string(o.Status),
		OrderDate: o.OrderDate,
		Items:     items,
		Total:     o.Total(),
	}
}

// ToOrderSummaryResponse converts a domain order to a listing DTO
func ToOrderSummaryResponse(o *order.Order, customerName string) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: customerName,
		Status:       string(o.Status),
		OrderDate:    o.OrderDate,
		ItemCount:    len(o.Items),
		Total:        o.Total(),
	}
}
