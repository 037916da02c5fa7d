// internal/domain/notification/entity.go
package notification

import "time"

// Type classifies a notification. The set is open: unknown values
// coming off the wire are kept as-is.
type Type string

const (
	TypeOrder     Type = "order"
	TypeInventory Type = "inventory"
	TypeSuccess   Type = "success"
	TypeAlert     Type = "alert"
)

// Record is a single notification as cached by the gateway. ID is the
// stable identity the cache is keyed by; CreatedAt is parsed from the
// wire's ISO-8601 string so ordering compares instants, never raw
// strings.
type Record struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	IsRead    bool      `json:"isRead"`
}

// DTOs

type Summary struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
	Read   int `json:"read"`
}

type ListResponse struct {
	Notifications []Record `json:"notifications"`
	Summary       Summary  `json:"summary"`
}
