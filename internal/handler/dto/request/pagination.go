package request

import (
	"rental-marketplace/internal/usecase/queries"
)

// PageQuery binds the page/limit query parameters shared by list endpoints.
type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q PageQuery) ToPage() queries.Page {
	return queries.NewPage(q.Page, q.Limit)
}
