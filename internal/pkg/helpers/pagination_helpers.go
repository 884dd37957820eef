package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/serkank/amora/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
	DefaultPage     = 1 // Default page is 1-based
)

// CalculateOffsetLimit converts a 1-based page number into the zero-based
// offset and row limit for SQL queries. The page number itself is never
// clamped: a page beyond the data simply selects nothing.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return uint64((page - 1) * size), size
}

// NewPagination creates the pagination metadata for a windowed result.
// currentPage and pageSize echo the inputs unmodified; an out-of-range page
// is a legitimate request that yields an empty item list.
func NewPagination(totalCount int64, page, size int) dto.Pagination {
	totalPages := 0
	if size > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(size)))
	}
	return dto.Pagination{
		CurrentPage: page,
		PageSize:    size,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
	}
}

// ParsePaginationParams extracts page and pageSize from the request.
// pageSize is capped at MaxPageSize here, before any query is built.
func ParsePaginationParams(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	size, err = strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return page, size
}
