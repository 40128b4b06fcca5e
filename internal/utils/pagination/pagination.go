package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// DefaultPerPage matches the storefront list views (6 cards per page).
const DefaultPerPage = 6

// Pagination captures the page window requested by a list view.
type Pagination struct {
	Page    int
	PerPage int
	Total   int
}

// ParseFromRequest reads pagination parameters from the Fiber context.
// Out-of-range values fall back to the first page.
func ParseFromRequest(c *fiber.Ctx) Pagination {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultPerPage)))
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return Pagination{Page: page, PerPage: perPage}
}

// TotalPages returns the number of pages needed for totalItems.
func TotalPages(totalItems, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / perPage
	if totalItems%perPage > 0 {
		pages++
	}
	return pages
}

// Slice returns the items visible on the given 1-based page. Pages past
// the end yield an empty slice.
func Slice[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Window lists the page numbers 1..totalPages for the pager strip.
func Window(totalPages int) []int {
	if totalPages < 1 {
		return nil
	}
	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// Response creates a standardized pagination response.
func Response(p Pagination, data interface{}) fiber.Map {
	return fiber.Map{
		"data": data,
		"meta": fiber.Map{
			"current_page": p.Page,
			"per_page":     p.PerPage,
			"total_items":  p.Total,
			"total_pages":  TotalPages(p.Total, p.PerPage),
		},
	}
}
