// internal/listquery/query.go
package listquery

import (
	"net/url"
	"strconv"
	"sync"
)

// Query is the canonical descriptor of "what the next list fetch
// should request". It is a flat value carrying only comparable data,
// so two descriptors built from identical inputs are deep-equal and a
// caching fetch layer can deduplicate on them.
type Query struct {
	Search    string
	SortBy    SortField
	SortOrder SortDirection
	Filters   map[string]string
	Page      int
	Limit     int
}

// Equal reports value equality, comparing filters by content.
func (q *Query) Equal(other *Query) bool {
	if q == nil || other == nil {
		return q == other
	}
	if q.Search != other.Search ||
		q.SortBy != other.SortBy ||
		q.SortOrder != other.SortOrder ||
		q.Page != other.Page ||
		q.Limit != other.Limit ||
		len(q.Filters) != len(other.Filters) {
		return false
	}
	for k, v := range q.Filters {
		ov, ok := other.Filters[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Values encodes the descriptor under the key names the upstream list
// endpoints expect. Filter values are carried verbatim, including
// empty ones; validating them is the upstream API's job.
func (q *Query) Values() url.Values {
	v := url.Values{}
	v.Set("search", q.Search)
	v.Set("sortBy", string(q.SortBy))
	v.Set("sortOrder", string(q.SortOrder))
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	for k, fv := range q.Filters {
		v.Set(k, fv)
	}
	return v
}

// Composer memoizes the latest descriptor: composing with inputs that
// are value-identical to the previous call returns the previous
// *Query unchanged, so downstream consumers can rely on referential
// stability to skip redundant fetches.
type Composer struct {
	mu   sync.Mutex
	last *Query
}

// NewComposer returns an empty composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose builds the descriptor for the given inputs. The filters map
// is copied; callers may keep mutating their own map.
func (c *Composer) Compose(search string, sort SortDescriptor, filters map[string]string, page, limit int) *Query {
	next := &Query{
		Search:    search,
		SortBy:    sort.Field,
		SortOrder: sort.Direction,
		Page:      page,
		Limit:     limit,
	}
	if len(filters) > 0 {
		next.Filters = make(map[string]string, len(filters))
		for k, v := range filters {
			next.Filters[k] = v
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last.Equal(next) {
		return c.last
	}
	c.last = next
	return next
}
