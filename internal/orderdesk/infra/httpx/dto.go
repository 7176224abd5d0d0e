package httpx

import (
	"time"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/domain"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/service"
)

// CreateOrderRequest is the incoming order payload.
//
// Both "orderId" and the legacy "id" are accepted; older POS clients still
// send the latter. Pointer fields distinguish absent from zero.
type CreateOrderRequest struct {
	OrderID      *int64         `json:"orderId"`
	LegacyID     *int64         `json:"id"`
	Items        []OrderItemDTO `json:"items"`
	Total        float64        `json:"total"`
	Date         *time.Time     `json:"date"`
	Status       *string        `json:"status"`
	TableNumber  *int64         `json:"tableNumber"`
	CustomerName string         `json:"customerName"`
}

type OrderItemDTO struct {
	Menu     MenuItemDTO `json:"menuItem"`
	Quantity float64     `json:"quantity"`
	Subtotal float64     `json:"subtotal"`
}

type MenuItemDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

func (r CreateOrderRequest) toInput() service.IngestInput {
	items := make([]domain.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.OrderItem{
			Menu: domain.MenuItem{
				ID:          it.Menu.ID,
				Name:        it.Menu.Name,
				Description: it.Menu.Description,
				Price:       it.Menu.Price,
				Category:    it.Menu.Category,
			},
			Quantity: it.Quantity,
			Subtotal: it.Subtotal,
		}
	}
	return service.IngestInput{
		OrderID:      r.OrderID,
		LegacyID:     r.LegacyID,
		Items:        items,
		Total:        r.Total,
		Date:         r.Date,
		Status:       r.Status,
		TableNumber:  r.TableNumber,
		CustomerName: r.CustomerName,
	}
}

// TotalResponse is the body of GET /api/orders/total.
type TotalResponse struct {
	TotalAmount float64 `json:"totalAmount"`
	Timestamp   string  `json:"timestamp"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// MessageResponse is the generic error body.
type MessageResponse struct {
	Message string `json:"message"`
}
