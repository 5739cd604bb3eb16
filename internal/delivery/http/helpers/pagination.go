package helpers

import (
	"net/http"
	"strconv"

	"eventbooking/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string. Missing or
// invalid values fall back to defaults; page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     positiveInt(q.Get("page"), DefaultPage),
		PageSize: min(positiveInt(q.Get("page_size"), DefaultPageSize), MaxPageSize),
	}
}

func positiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta for params and the total row count.
func NewPaginationMeta(params domain.PaginationParams, total int) PaginationMeta {
	meta := PaginationMeta{Page: params.Page, PageSize: params.PageSize, Total: total}
	if params.PageSize > 0 {
		meta.TotalPages = (total + params.PageSize - 1) / params.PageSize
	}
	return meta
}
