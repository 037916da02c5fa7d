// internal/listquery/sort.go
package listquery

import (
	"fmt"
	"strings"
)

// SortField names a column a list can be ordered by.
type SortField string

const (
	SortFieldCreatedAt SortField = "createdAt"
	SortFieldUpdatedAt SortField = "updatedAt"
	SortFieldName      SortField = "name"
	SortFieldPrice     SortField = "price"
	SortFieldStock     SortField = "stock"
)

// SortDirection is the ordering direction for a sort field.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortDescriptor pairs a field with a direction. Field and direction
// are kept as independent state; the composite token exists only for
// the UI-selection boundary.
type SortDescriptor struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort is newest-first.
var DefaultSort = SortDescriptor{Field: SortFieldCreatedAt, Direction: SortDesc}

// Token serializes the descriptor as "field-direction" for use as a
// UI selection value.
func (s SortDescriptor) Token() string {
	return string(s.Field) + "-" + string(s.Direction)
}

// ParseSortToken recovers the descriptor that produced a token. The
// split is on the last hyphen so that fields containing hyphens still
// round-trip.
func ParseSortToken(token string) (SortDescriptor, error) {
	idx := strings.LastIndex(token, "-")
	if idx <= 0 || idx == len(token)-1 {
		return SortDescriptor{}, fmt.Errorf("invalid sort token %q", token)
	}

	field := SortField(token[:idx])
	dir := SortDirection(token[idx+1:])
	if dir != SortAsc && dir != SortDesc {
		return SortDescriptor{}, fmt.Errorf("invalid sort direction %q", string(dir))
	}

	return SortDescriptor{Field: field, Direction: dir}, nil
}
