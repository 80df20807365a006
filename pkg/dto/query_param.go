package dto

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
	MaxPage      = 100000
)

type Filter struct {
	Limit  int    `query:"limit"`
	Page   int    `query:"page"`
	Search string `query:"search"`
}

// Normalize applies the default page and limit and clamps both, so Skip
// stays within int64.
func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

func (f Filter) Skip() int64 {
	return int64(f.Page-1) * int64(f.Limit)
}

type PaginationMetadata struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func NewPaginationMetadata(filter Filter, totalCount int64) PaginationMetadata {
	filter = filter.Normalize()
	totalPages := int(math.Ceil(float64(totalCount) / float64(filter.Limit)))

	return PaginationMetadata{
		CurrentPage: filter.Page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       filter.Limit,
		HasNextPage: filter.Page < totalPages,
		HasPrevPage: filter.Page > 1,
	}
}
