// internal/domain/order/entity.go
package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Order mirrors the upstream commerce API's order resource as the
// admin list views consume it.
type Order struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Status       Status    `json:"status"`
	ItemCount    int       `json:"itemCount"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
