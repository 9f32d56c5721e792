package order

import (
	"time"

	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of an order
type Status string

const (
	StatusCreated   Status = "Created"
	StatusPaid      Status = "Paid"
	StatusCancelled Status = "Cancelled"
)

// IsValid checks if the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions
func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// Item is an order line holding the unit price frozen at order creation
type Item struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal returns quantity times the frozen unit price
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the aggregate root for a customer order and its lines
type Order struct {
	shared.BaseEntity
	CustomerID uuid.UUID
	Status     Status
	OrderDate  time.Time
	Items      []Item
}

// CreatedSnapshot is the audit snapshot written when an order is created
type CreatedSnapshot struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Status     Status    `json:"status"`
	OrderDate  time.Time `json:"orderDate"`
	ItemCount  int       `json:"itemCount"`
}

// StatusSnapshot is the audit snapshot written on status transitions
type StatusSnapshot struct {
	Status Status `json:"status"`
}

// NewOrder creates a new order in the Created state for the given customer
func NewOrder(customerID uuid.UUID) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Order customer cannot be empty")
	}

	base := shared.NewBaseEntity()
	return &Order{
		BaseEntity: base,
		CustomerID: customerID,
		Status:     StatusCreated,
		OrderDate:  base.CreatedAt,
		Items:      []Item{},
	}, nil
}

// AddItem appends a line with the product's current price frozen into it
func (o *Order) AddItem(productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_ITEM", "Order item product cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Order item quantity must be positive")
	}

	o.Items = append(o.Items, Item{
		ID:          uuid.New(),
		OrderID:     o.ID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})

	return nil
}

// Pay transitions the order from Created to Paid
func (o *Order) Pay() error {
	if o.Status != StatusCreated {
		return shared.NewDomainError("INVALID_STATE", "Only orders in Created status can be paid")
	}

	o.Status = StatusPaid
	o.Touch()

	return nil
}

// Cancel transitions the order from Created to Cancelled
func (o *Order) Cancel() error {
	if o.Status != StatusCreated {
		return shared.NewDomainError("INVALID_STATE", "Only orders in Created status can be cancelled")
	}

	o.Status = StatusCancelled
	o.Touch()

	return nil
}

// Total sums the subtotals of all lines
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// CreatedSnapshot returns the audit snapshot for order creation
func (o *Order) CreatedSnapshot() CreatedSnapshot {
	return CreatedSnapshot{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		OrderDate:  o.OrderDate,
		ItemCount:  len(o.Items),
	}
}

// StatusSnapshot returns the audit snapshot of the current status
func (o *Order) StatusSnapshot() StatusSnapshot {
	return StatusSnapshot{Status: o.Status}
}
