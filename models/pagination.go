package models

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Pagination describes one page of a result set
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
	PageCount int `json:"pageCount"`
}

// PageRequest is a normalized page/pageSize pair
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest applies defaults and bounds to raw page parameters
func NewPageRequest(page, pageSize int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

// Offset returns the number of rows to skip. Pages too far out to address saturate at math.MaxInt.
func (p PageRequest) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// Paginate builds the pagination block for a total count
func (p PageRequest) Paginate(total int) Pagination {
	pageCount := 0
	if total > 0 {
		pageCount = (total + p.PageSize - 1) / p.PageSize
	}
	return Pagination{
		Page:      p.Page,
		PageSize:  p.PageSize,
		Total:     total,
		PageCount: pageCount,
	}
}

// Page is a paginated result set
type Page[T any] struct {
	Results    []T        `json:"results"`
	Pagination Pagination `json:"pagination"`
}
