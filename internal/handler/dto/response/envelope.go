package response

import (
	"rental-marketplace/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Envelope is the body of every successful response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKWithMessage(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

type PaginationResponse struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

func FromPagination(p queries.Pagination) PaginationResponse {
	return PaginationResponse{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
		HasNext:      p.HasNext,
		HasPrev:      p.HasPrev,
	}
}

var copyOpts = copier.Option{DeepCopy: true}

// mapOne copies a read model into its response shape by field name.
func mapOne[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOpts); err != nil {
		return nil, err
	}
	return &dst, nil
}

func mapAll[T any, S any](src []S) ([]*T, error) {
	dst := make([]*T, 0, len(src))
	for _, s := range src {
		d, err := mapOne[T](s)
		if err != nil {
			return nil, err
		}
		dst = append(dst, d)
	}
	return dst, nil
}
