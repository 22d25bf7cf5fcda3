package utils

import (
	"strconv"

	"github.com/Jajanan-pasar/web/internal/config"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds the page window for a listing request.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
	Total  int64
}

// ParsePagination reads the page number from the request and the page size
// from the injected provider.
func ParsePagination(c *fiber.Ctx, pages config.PaginationProvider) Pagination {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit := pages.PageSize()
	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// PaginatedResponse creates a standardized listing payload.
func PaginatedResponse(p Pagination, data interface{}) fiber.Map {
	totalPages := p.Total / int64(p.Limit)
	if p.Total%int64(p.Limit) > 0 {
		totalPages++
	}

	return fiber.Map{
		"data": data,
		"meta": fiber.Map{
			"current_page": p.Page,
			"per_page":     p.Limit,
			"total_items":  p.Total,
			"total_pages":  totalPages,
		},
	}
}
