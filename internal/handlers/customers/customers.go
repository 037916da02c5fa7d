// internal/handlers/customers/customers.go
package customers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vendora-admin/internal/handlers/params"
	"vendora-admin/internal/listquery"
	"vendora-admin/internal/pkg/response"
	"vendora-admin/internal/upstream"
)

type CustomerHandler struct {
	api          *upstream.Client
	logger       *zap.Logger
	defaultLimit int
	queries      *listquery.Composer
}

func NewCustomerHandler(api *upstream.Client, defaultLimit int, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		api:          api,
		logger:       logger,
		defaultLimit: defaultLimit,
		queries:      listquery.NewComposer(),
	}
}

// ListCustomers serves one page of the customer list view.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	q, err := params.ListQuery(c, h.queries, h.defaultLimit, "status")
	if err != nil {
		response.ValidationError(c, "invalid query parameters", err)
		return
	}

	result, err := h.api.ListCustomers(c.Request.Context(), q)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}

	if totalPages := listquery.TotalPages(result.Total, q.Limit); q.Page > totalPages && totalPages > 0 {
		q = params.Reclamp(h.queries, q, totalPages)
		if result, err = h.api.ListCustomers(c.Request.Context(), q); err != nil {
			response.UpstreamError(c, err)
			return
		}
	}

	response.Success(c, http.StatusOK, "customers retrieved", gin.H{
		"data": result.Data,
		"meta": params.Meta(q, result.Total),
	})
}
