// internal/handlers/params/params_test.go
package params

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora-admin/internal/listquery"
	xerrors "vendora-admin/internal/pkg/errors"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/products?"+rawQuery, nil)
	return c
}

func TestListQuery_Defaults(t *testing.T) {
	c := testContext(t, "")
	composer := listquery.NewComposer()

	q, err := ListQuery(c, composer, 0)
	require.NoError(t, err)

	assert.Equal(t, "", q.Search)
	assert.Equal(t, listquery.SortFieldCreatedAt, q.SortBy)
	assert.Equal(t, listquery.SortDesc, q.SortOrder)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, listquery.DefaultPageSize, q.Limit)
	assert.Nil(t, q.Filters)
}

func TestListQuery_FullRequest(t *testing.T) {
	c := testContext(t, "search=laptop&sort=price-asc&page=3&limit=24&category=electronics&status=active")
	composer := listquery.NewComposer()

	q, err := ListQuery(c, composer, 0, "category", "status")
	require.NoError(t, err)

	assert.Equal(t, "laptop", q.Search)
	assert.Equal(t, listquery.SortFieldPrice, q.SortBy)
	assert.Equal(t, listquery.SortAsc, q.SortOrder)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 24, q.Limit)
	assert.Equal(t, map[string]string{"category": "electronics", "status": "active"}, q.Filters)
}

func TestListQuery_OnlyDeclaredFilterKeysAreRead(t *testing.T) {
	c := testContext(t, "category=books&status=active")
	composer := listquery.NewComposer()

	q, err := ListQuery(c, composer, 0, "category")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"category": "books"}, q.Filters)
}

func TestListQuery_InvalidSortToken(t *testing.T) {
	c := testContext(t, "sort=price-sideways")
	composer := listquery.NewComposer()

	_, err := ListQuery(c, composer, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrInvalidQuery))
}

func TestListQuery_BadNumbersFallBack(t *testing.T) {
	c := testContext(t, "page=abc&limit=-5")
	composer := listquery.NewComposer()

	q, err := ListQuery(c, composer, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, listquery.DefaultPageSize, q.Limit)
}

func TestListQuery_ComposerMemoizes(t *testing.T) {
	composer := listquery.NewComposer()

	q1, err := ListQuery(testContext(t, "search=mug&page=2"), composer, 0)
	require.NoError(t, err)
	q2, err := ListQuery(testContext(t, "search=mug&page=2"), composer, 0)
	require.NoError(t, err)

	assert.Same(t, q1, q2)
}

func TestMeta(t *testing.T) {
	composer := listquery.NewComposer()
	q, err := ListQuery(testContext(t, "page=2&limit=12"), composer, 0)
	require.NoError(t, err)

	meta := Meta(q, 30)

	assert.Equal(t, 30, meta["total"])
	assert.Equal(t, 3, meta["totalPages"])
	assert.Equal(t, 2, meta["page"])
	assert.Equal(t, 12, meta["limit"])
	assert.Equal(t, "13 - 24 of 30 results", meta["range"])
}

func TestReclamp(t *testing.T) {
	composer := listquery.NewComposer()
	q, err := ListQuery(testContext(t, "search=mug&page=9&limit=12"), composer, 0)
	require.NoError(t, err)

	clamped := Reclamp(composer, q, 3)

	assert.Equal(t, 3, clamped.Page)
	assert.Equal(t, "mug", clamped.Search)
	assert.Equal(t, q.SortBy, clamped.SortBy)
	assert.Equal(t, q.Limit, clamped.Limit)
}
