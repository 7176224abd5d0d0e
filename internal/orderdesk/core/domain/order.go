package domain

import "time"

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// MenuItem is the caller-supplied description of what was ordered.
// There is no catalog behind it; the client owns these values.
type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
}

// OrderItem is one line of an order. Subtotal is caller-computed and is
// not verified against Price × Quantity.
type OrderItem struct {
	Menu     MenuItem `json:"menuItem"`
	Quantity float64  `json:"quantity"`
	Subtotal float64  `json:"subtotal"`
}

// Order is the sole entity of the system.
//
// ID is the surrogate identity assigned by the store on insert. OrderID is
// the client-supplied business identifier; it is required but NOT unique —
// two tills can legitimately reuse a daily counter.
type Order struct {
	ID           int64       `json:"-"`
	OrderID      int64       `json:"orderId"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Date         time.Time   `json:"date"`
	Status       Status      `json:"status"`
	TableNumber  *int64      `json:"tableNumber,omitempty"`
	CustomerName string      `json:"customerName,omitempty"`
}
