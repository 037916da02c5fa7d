// internal/handlers/catalog/products.go
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vendora-admin/internal/handlers/params"
	"vendora-admin/internal/listquery"
	"vendora-admin/internal/pkg/response"
	"vendora-admin/internal/upstream"
)

type CatalogHandler struct {
	api          *upstream.Client
	logger       *zap.Logger
	defaultLimit int

	// One composer per list view: each memoizes its own last
	// descriptor so unchanged inputs skip recomposition.
	productQueries  *listquery.Composer
	categoryQueries *listquery.Composer
}

func NewCatalogHandler(api *upstream.Client, defaultLimit int, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		api:             api,
		logger:          logger,
		defaultLimit:    defaultLimit,
		productQueries:  listquery.NewComposer(),
		categoryQueries: listquery.NewComposer(),
	}
}

// ListProducts serves one page of the product list view.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	q, err := params.ListQuery(c, h.productQueries, h.defaultLimit, "category", "status")
	if err != nil {
		response.ValidationError(c, "invalid query parameters", err)
		return
	}

	result, err := h.api.ListProducts(c.Request.Context(), q)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}

	// The requested page may have run off the end of a result set
	// that shrank since the UI last saw it; clamp and refetch once.
	if totalPages := listquery.TotalPages(result.Total, q.Limit); q.Page > totalPages && totalPages > 0 {
		q = params.Reclamp(h.productQueries, q, totalPages)
		if result, err = h.api.ListProducts(c.Request.Context(), q); err != nil {
			response.UpstreamError(c, err)
			return
		}
	}

	response.Success(c, http.StatusOK, "products retrieved", gin.H{
		"data": result.Data,
		"meta": params.Meta(q, result.Total),
	})
}

// ListCategories serves one page of the category list view.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	q, err := params.ListQuery(c, h.categoryQueries, h.defaultLimit)
	if err != nil {
		response.ValidationError(c, "invalid query parameters", err)
		return
	}

	result, err := h.api.ListCategories(c.Request.Context(), q)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}

	if totalPages := listquery.TotalPages(result.Total, q.Limit); q.Page > totalPages && totalPages > 0 {
		q = params.Reclamp(h.categoryQueries, q, totalPages)
		if result, err = h.api.ListCategories(c.Request.Context(), q); err != nil {
			response.UpstreamError(c, err)
			return
		}
	}

	response.Success(c, http.StatusOK, "categories retrieved", gin.H{
		"data": result.Data,
		"meta": params.Meta(q, result.Total),
	})
}
