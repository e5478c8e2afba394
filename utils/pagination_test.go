package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		limit       int
		total       int64
		totalPages  int
		hasNextPage bool
		hasPrevPage bool
	}{
		{
			name:  "twelve records over three pages, first page",
			page:  1, limit: 5, total: 12,
			totalPages: 3, hasNextPage: true, hasPrevPage: false,
		},
		{
			name:  "twelve records over three pages, middle page",
			page:  2, limit: 5, total: 12,
			totalPages: 3, hasNextPage: true, hasPrevPage: true,
		},
		{
			name:  "twelve records over three pages, last page",
			page:  3, limit: 5, total: 12,
			totalPages: 3, hasNextPage: false, hasPrevPage: true,
		},
		{
			name:  "exact multiple of limit",
			page:  1, limit: 5, total: 10,
			totalPages: 2, hasNextPage: true, hasPrevPage: false,
		},
		{
			name:  "empty listing",
			page:  1, limit: 5, total: 0,
			totalPages: 0, hasNextPage: false, hasPrevPage: false,
		},
		{
			name:  "single partial page",
			page:  1, limit: 50, total: 3,
			totalPages: 1, hasNextPage: false, hasPrevPage: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNextPage, p.HasNextPage)
			assert.Equal(t, tt.hasPrevPage, p.HasPrevPage)
		})
	}
}
