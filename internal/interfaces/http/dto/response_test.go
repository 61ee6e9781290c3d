package dto

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-cms-api/pkg/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	c, w := newTestContext(t)
	Success(c, gin.H{"name": "demo"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"name":"demo"`)
}

func TestFail(t *testing.T) {
	t.Run("app error keeps its status and code", func(t *testing.T) {
		c, w := newTestContext(t)
		Fail(c, errors.ErrKeyNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, string(errors.CodeKeyNotFound), resp.Code)
		assert.Equal(t, "api key not found", resp.Message)
	})

	t.Run("quota error maps to 429", func(t *testing.T) {
		c, w := newTestContext(t)
		Fail(c, errors.ErrQuotaExceeded)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("plain error hides detail", func(t *testing.T) {
		c, w := newTestContext(t)
		Fail(c, stderrors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "internal server error", resp.Message)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		total      int64
		totalPages int
	}{
		{"exact division", 1, 10, 30, 3},
		{"with remainder", 2, 10, 31, 4},
		{"empty result", 1, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}
