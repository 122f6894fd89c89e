package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name         string
		page, size   string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "", "", 1, 10},
		{"explicit", "3", "25", 3, 25},
		{"non numeric", "abc", "xyz", 1, 10},
		{"zero and negative", "0", "-5", 1, 10},
		{"capped page size", "1", "500", 1, 100},
		{"exact cap", "2", "100", 2, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
			assert.Equal(t, (tt.wantPage-1)*tt.wantPageSize, p.Offset)
		})
	}
}

func TestPaginationSetTotal(t *testing.T) {
	p := ParsePagination("2", "5")
	p.SetTotal(11)
	assert.Equal(t, 3, p.LastPage)
	assert.Equal(t, 5, p.Offset)
	assert.Equal(t, 3, *p.Next())
	assert.Equal(t, 1, *p.Previous())

	p = ParsePagination("3", "5")
	p.SetTotal(11)
	assert.Nil(t, p.Next())
	assert.Equal(t, 2, *p.Previous())
}

func TestPaginationOutOfRangeFallsBackToFirstPage(t *testing.T) {
	p := ParsePagination("9", "10")
	p.SetTotal(11)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 2, *p.Next())
	assert.Nil(t, p.Previous())
}

func TestPaginationEmpty(t *testing.T) {
	p := ParsePagination("4", "10")
	p.SetTotal(0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.LastPage)
	assert.Nil(t, p.Next())
	assert.Nil(t, p.Previous())

	result := NewPageResult([]string{}, p)
	assert.Equal(t, int64(0), result.Count)
	assert.Nil(t, result.Next)
	assert.Nil(t, result.Previous)
}
