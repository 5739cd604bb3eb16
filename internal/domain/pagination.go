package domain

// PaginationParams selects one page of a list query. Page is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Limit is the page size; 0 means unbounded.
func (p PaginationParams) Limit() int {
	return max(p.PageSize, 0)
}

// Offset is the number of rows before the page, (Page-1)*Limit.
func (p PaginationParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}
