package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora-admin/internal/listquery"
)

func testQuery() *listquery.Query {
	return listquery.NewComposer().Compose(
		"mug",
		listquery.DefaultSort,
		map[string]string{"category": "kitchen"},
		2, 12,
	)
}

func TestClient_ListProducts(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/products", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		q := r.URL.Query()
		gotQuery = map[string]string{
			"search":    q.Get("search"),
			"sortBy":    q.Get("sortBy"),
			"sortOrder": q.Get("sortOrder"),
			"page":      q.Get("page"),
			"limit":     q.Get("limit"),
			"category":  q.Get("category"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"id":"p1","name":"Coffee Mug","price":9.5,"stock":40,"category":"kitchen"},
				{"id":"p2","name":"Travel Mug","price":14.0,"stock":12,"category":"kitchen"}
			],
			"meta": {"total": 30}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token", nil)
	result, err := c.ListProducts(context.Background(), testQuery())
	require.NoError(t, err)

	assert.Equal(t, 30, result.Total)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Coffee Mug", result.Data[0].Name)

	assert.Equal(t, map[string]string{
		"search":    "mug",
		"sortBy":    "createdAt",
		"sortOrder": "desc",
		"page":      "2",
		"limit":     "12",
		"category":  "kitchen",
	}, gotQuery)
}

func TestClient_ErrorWithUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"data":{"message":"price filter out of range"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	_, err := c.ListProducts(context.Background(), testQuery())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "price filter out of range", ErrorMessage(err))
}

func TestClient_ErrorWithoutBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	_, err := c.ListOrders(context.Background(), testQuery())
	require.Error(t, err)

	assert.Equal(t, "Request failed with status 502", ErrorMessage(err))
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
}

func TestClient_TransportErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "", nil)
	_, err := c.ListCustomers(context.Background(), testQuery())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures must not masquerade as API errors")
	assert.Equal(t, GenericErrorMessage, ErrorMessage(err))
	assert.Equal(t, 0, StatusOf(err))
}

func TestClient_MarkNotificationReadTolerates404(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/admin/notifications/n1/read", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	require.NoError(t, c.MarkNotificationRead(context.Background(), "n1"))
	assert.Equal(t, 1, calls)
}

func TestClient_DeleteNotificationTolerates404(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	require.NoError(t, c.DeleteNotification(context.Background(), "n9"))
}

func TestClient_FetchNotificationsParsesTimestamps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Mixed timestamp precision: both forms must parse to instants.
		w.Write([]byte(`{"data":[
			{"id":"n1","type":"order","title":"New order","message":"#1042","createdAt":"2026-03-01T12:00:00Z","isRead":false},
			{"id":"n2","type":"inventory","title":"Low stock","message":"SKU-7","createdAt":"2026-03-01T12:00:00.250Z","isRead":true}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	records, err := c.FetchNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[1].CreatedAt.After(records[0].CreatedAt),
		"fractional-second timestamps must compare chronologically")
}
