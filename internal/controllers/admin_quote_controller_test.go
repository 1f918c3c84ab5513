package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"requestquote/internal/dto"
	apperrors "requestquote/pkg/errors"
)

func sampleQuotes() []dto.QuoteDTO {
	return []dto.QuoteDTO{
		{ID: 2, ProductID: 42, ProductName: "Pallet Rack System", ClientName: "Bob", Email: "bob@example.com", CreatedAt: "2026-01-16 09:00:00"},
		{ID: 1, ProductID: 42, ProductName: "Pallet Rack System", ClientName: "Alice", Email: "alice@example.com", CreatedAt: "2026-01-15 10:30:00"},
	}
}

func adminRequest(t *testing.T, handler echo.HandlerFunc, target string, paramName, paramValue string) *httptest.ResponseRecorder {
	t.Helper()
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	require.NoError(t, handler(c))
	return rec
}

func TestGetQuotes_PaginatedEnvelope(t *testing.T) {
	svc := &stubQuoteService{quotes: sampleQuotes(), total: 12}
	ctrl := NewAdminQuoteController(svc, zap.NewNop())

	rec := adminRequest(t, ctrl.GetQuotes, "/api/admin/quotes?limit=2&page=1", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["status"])

	envelope := body["body"].(map[string]interface{})
	list := envelope["list"].([]interface{})
	assert.Len(t, list, 2)

	pagination := envelope["pagination"].(map[string]interface{})
	assert.Equal(t, float64(12), pagination["total_count"])
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(2), pagination["limit"])
	assert.Equal(t, float64(6), pagination["total_pages"])
}

func TestGetQuotes_WithoutPagination(t *testing.T) {
	svc := &stubQuoteService{quotes: sampleQuotes(), total: 2}
	ctrl := NewAdminQuoteController(svc, zap.NewNop())

	rec := adminRequest(t, ctrl.GetQuotes, "/api/admin/quotes?withPagination=false", "", "")

	body := decodeEnvelope(t, rec)
	list := body["body"].([]interface{})
	assert.Len(t, list, 2)
}

func TestGetQuotes_XLSXExport(t *testing.T) {
	svc := &stubQuoteService{quotes: sampleQuotes(), total: 2}
	ctrl := NewAdminQuoteController(svc, zap.NewNop())

	rec := adminRequest(t, ctrl.GetQuotes, "/api/admin/quotes?format=xlsx", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "quote_requests.xlsx")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "spreadsheetml")
	assert.NotZero(t, rec.Body.Len())
}

func TestFindQuote_Found(t *testing.T) {
	quote := sampleQuotes()[1]
	svc := &stubQuoteService{findResult: &quote}
	ctrl := NewAdminQuoteController(svc, zap.NewNop())

	rec := adminRequest(t, ctrl.FindQuote, "/api/admin/quotes/1", "id", "1")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Alice", body["body"].(map[string]interface{})["client_name"])
}

func TestFindQuote_NotFound(t *testing.T) {
	svc := &stubQuoteService{findErr: apperrors.ErrNotFound}
	ctrl := NewAdminQuoteController(svc, zap.NewNop())

	rec := adminRequest(t, ctrl.FindQuote, "/api/admin/quotes/999", "id", "999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFindQuote_InvalidID(t *testing.T) {
	ctrl := NewAdminQuoteController(&stubQuoteService{}, zap.NewNop())

	rec := adminRequest(t, ctrl.FindQuote, "/api/admin/quotes/abc", "id", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteQuote_Success(t *testing.T) {
	ctrl := NewAdminQuoteController(&stubQuoteService{}, zap.NewNop())

	rec := adminRequest(t, ctrl.DeleteQuote, "/api/admin/quotes/1", "id", "1")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Contains(t, body["message"], "deleted successfully")
}

func TestDeleteQuote_NotFound(t *testing.T) {
	svc := &stubQuoteService{deleteErr: apperrors.ErrNotFound}
	ctrl := NewAdminQuoteController(svc, zap.NewNop())

	rec := adminRequest(t, ctrl.DeleteQuote, "/api/admin/quotes/999", "id", "999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBulkDeleteQuotes(t *testing.T) {
	e := newTestEcho()
	svc := &stubQuoteService{bulkResult: &dto.BulkDeleteResultDTO{Deleted: 2, Requested: 3, Missing: []uint64{9}}}
	ctrl := NewAdminQuoteController(svc, zap.NewNop())

	rec := doJSON(t, e, ctrl.BulkDeleteQuotes, http.MethodPost, "/api/admin/quotes/bulk_delete", `{"ids":[1,2,9]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint64{1, 2, 9}, svc.lastBulkIDs)
	body := decodeEnvelope(t, rec)
	assert.Contains(t, body["message"], "2 quote request(s) deleted")

	result := body["body"].(map[string]interface{})
	assert.Equal(t, float64(2), result["deleted"])
	assert.Equal(t, []interface{}{float64(9)}, result["missing"])
}

func TestBulkDeleteQuotes_EmptyList(t *testing.T) {
	e := newTestEcho()
	ctrl := NewAdminQuoteController(&stubQuoteService{}, zap.NewNop())

	rec := doJSON(t, e, ctrl.BulkDeleteQuotes, http.MethodPost, "/api/admin/quotes/bulk_delete", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
