package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery_Defaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
}

func TestParseFilterFromQuery_Pagination(t *testing.T) {
	v, _ := url.ParseQuery("limit=10&page=3")
	filter := ParseFilterFromQuery(v)

	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 20, filter.Offset, "offset is derived from the page when absent")
}

func TestParseFilterFromQuery_LimitCap(t *testing.T) {
	v, _ := url.ParseQuery("limit=99999")
	filter := ParseFilterFromQuery(v)

	assert.Equal(t, MaxLimit, filter.Limit)
}

func TestParseFilterFromQuery_SearchSortFilter(t *testing.T) {
	v, _ := url.ParseQuery("search=jane&sort[created_at]=desc&filter[shop_id]=1&filter[product_id]=42")
	filter := ParseFilterFromQuery(v)

	assert.Equal(t, "jane", filter.Search)
	assert.Equal(t, map[string]string{"created_at": "desc"}, filter.Sort)
	assert.Equal(t, "1", filter.Filter["shop_id"])
	assert.Equal(t, "42", filter.Filter["product_id"])
}

func TestParseFilterFromQuery_IgnoresBadSortDirection(t *testing.T) {
	v, _ := url.ParseQuery("sort[created_at]=sideways")
	filter := ParseFilterFromQuery(v)

	assert.Empty(t, filter.Sort)
}

func TestParseFilterFromQuery_WithPaginationOff(t *testing.T) {
	v, _ := url.ParseQuery("withPagination=false")
	filter := ParseFilterFromQuery(v)

	assert.False(t, filter.WithPagination)
}
