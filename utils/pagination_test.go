package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, query string) *Pagination {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return NewPagination(c)
}

func TestNewPaginationDefaults(t *testing.T) {
	p := paginationFor(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestNewPaginationParsesWindow(t *testing.T) {
	p := paginationFor(t, "page=3&limit=25")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset)
}

func TestNewPaginationRejectsGarbage(t *testing.T) {
	p := paginationFor(t, "page=-2&limit=abc")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestNewPaginationClampsLimit(t *testing.T) {
	p := paginationFor(t, "limit=5000")
	assert.Equal(t, MaxPageSize, p.Limit)
}

func TestSetTotalDerivesLastPage(t *testing.T) {
	p := paginationFor(t, "limit=10")
	p.SetTotal(41)
	assert.Equal(t, int64(41), p.Total)
	assert.Equal(t, 5, p.LastPage)
}
