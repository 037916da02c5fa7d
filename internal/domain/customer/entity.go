// internal/domain/customer/entity.go
package customer

import "time"

// Customer mirrors the upstream commerce API's customer resource as
// the admin list views consume it.
type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	OrderCount int       `json:"orderCount"`
	TotalSpent float64   `json:"totalSpent"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}
