// internal/upstream/resources.go
package upstream

import (
	"context"

	"vendora-admin/internal/domain/catalog"
	"vendora-admin/internal/domain/customer"
	"vendora-admin/internal/domain/order"
	"vendora-admin/internal/listquery"
)

// ListProducts fetches one page of products for the given descriptor.
func (c *Client) ListProducts(ctx context.Context, q *listquery.Query) (*ListResult[catalog.Product], error) {
	return listResource[catalog.Product](ctx, c, "/admin/products", q)
}

// ListCategories fetches one page of categories.
func (c *Client) ListCategories(ctx context.Context, q *listquery.Query) (*ListResult[catalog.Category], error) {
	return listResource[catalog.Category](ctx, c, "/admin/categories", q)
}

// ListOrders fetches one page of orders.
func (c *Client) ListOrders(ctx context.Context, q *listquery.Query) (*ListResult[order.Order], error) {
	return listResource[order.Order](ctx, c, "/admin/orders", q)
}

// ListCustomers fetches one page of customers.
func (c *Client) ListCustomers(ctx context.Context, q *listquery.Query) (*ListResult[customer.Customer], error) {
	return listResource[customer.Customer](ctx, c, "/admin/customers", q)
}
