package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return Parse(c)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		page   int
		limit  int
		offset int
	}{
		{name: "defaults", query: "", page: 1, limit: 20, offset: 0},
		{name: "explicit", query: "page=3&limit=10", page: 3, limit: 10, offset: 20},
		{name: "zero page", query: "page=0", page: 1, limit: 20, offset: 0},
		{name: "negative page", query: "page=-2", page: 1, limit: 20, offset: 0},
		{name: "zero limit", query: "limit=0", page: 1, limit: 20, offset: 0},
		{name: "limit capped", query: "limit=500", page: 1, limit: 100, offset: 0},
		{name: "non-numeric", query: "page=abc&limit=xyz", page: 1, limit: 20, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paramsFor(t, tt.query)
			if got.Page != tt.page || got.Limit != tt.limit || got.Offset != tt.offset {
				t.Errorf("Parse(%q) = %+v, want page=%d limit=%d offset=%d", tt.query, got, tt.page, tt.limit, tt.offset)
			}
		})
	}
}
