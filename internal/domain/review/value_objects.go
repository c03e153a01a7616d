package review

import (
	"strings"
	"unicode/utf8"

	"rental-marketplace/internal/pkg/errs"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MinCommentLength = 10
	MaxCommentLength = 1000
)

var (
	ErrInvalidRating   = errs.Domain(errs.ErrValidation, "rating must be between 1 and 5")
	ErrCommentTooShort = errs.Domain(errs.ErrValidation, "comment must be at least 10 characters long")
	ErrCommentTooLong  = errs.Domain(errs.ErrValidation, "comment cannot exceed 1000 characters")
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	n := utf8.RuneCountInString(t)
	if n < MinCommentLength {
		return Comment{}, ErrCommentTooShort
	}
	if n > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
