package queries

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	// the offset is an int32 in SQL; past this page every result is empty anyway
	if maxNumber := math.MaxInt32/size + 1; number > maxNumber {
		number = maxNumber
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int32 {
	return int32((p.Number - 1) * p.Size)
}

func (p Page) Limit() int32 {
	return int32(p.Size)
}

type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
	HasNext      bool
	HasPrev      bool
}

func NewPagination(p Page, total int64) Pagination {
	totalPages := int((total + int64(p.Size) - 1) / int64(p.Size))
	return Pagination{
		CurrentPage:  p.Number,
		TotalPages:   totalPages,
		TotalItems:   int(total),
		ItemsPerPage: p.Size,
		HasNext:      int64(p.Number*p.Size) < total,
		HasPrev:      p.Number > 1,
	}
}

type PageResult[T any] struct {
	Items      []T
	Pagination Pagination
}
