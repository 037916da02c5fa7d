// internal/handlers/params/params.go
package params

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"vendora-admin/internal/listquery"
	xerrors "vendora-admin/internal/pkg/errors"
)

// ListQuery parses the UI's list-view query parameters into the
// canonical descriptor. Recognized keys: search, sort (the composite
// "field-direction" selector token), page, limit, plus any caller-named
// categorical filter keys. Filter values are forwarded verbatim —
// validating them is the upstream API's job — but only keys actually
// present on the request become filters. defaultLimit is the page size
// used when the request names none; pass 0 for the package default.
func ListQuery(c *gin.Context, composer *listquery.Composer, defaultLimit int, filterKeys ...string) (*listquery.Query, error) {
	if defaultLimit < 1 {
		defaultLimit = listquery.DefaultPageSize
	}

	search := c.Query("search")

	sort := listquery.DefaultSort
	if token := c.Query("sort"); token != "" {
		parsed, err := listquery.ParseSortToken(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", xerrors.ErrInvalidQuery, err)
		}
		sort = parsed
	}

	page := intQuery(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := intQuery(c, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}

	var filters map[string]string
	for _, key := range filterKeys {
		if v, ok := c.GetQuery(key); ok {
			if filters == nil {
				filters = make(map[string]string, len(filterKeys))
			}
			filters[key] = v
		}
	}

	return composer.Compose(search, sort, filters, page, limit), nil
}

// Meta builds the pagination metadata block served alongside a page.
func Meta(q *listquery.Query, total int) gin.H {
	totalPages := listquery.TotalPages(total, q.Limit)

	pager := listquery.NewPager(q.Limit)
	pager.GoToPage(q.Page, totalPages)

	return gin.H{
		"total":      total,
		"totalPages": totalPages,
		"page":       q.Page,
		"limit":      q.Limit,
		"range":      pager.RangeLabel(total),
	}
}

// Reclamp recomposes the descriptor onto the last valid page after the
// fetched total revealed the requested page ran off the end.
func Reclamp(composer *listquery.Composer, q *listquery.Query, totalPages int) *listquery.Query {
	pager := listquery.NewPager(q.Limit)
	pager.GoToPage(q.Page, totalPages)

	sort := listquery.SortDescriptor{Field: q.SortBy, Direction: q.SortOrder}
	return composer.Compose(q.Search, sort, q.Filters, pager.Page(), q.Limit)
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
