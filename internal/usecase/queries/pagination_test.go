//go:build unit

package queries_test

import (
	"math"
	"testing"

	"rental-marketplace/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name         string
		number, size int
		want         queries.Page
	}{
		{name: "defaults", number: 0, size: 0, want: queries.Page{Number: 1, Size: queries.DefaultPageSize}},
		{name: "negative page", number: -3, size: 5, want: queries.Page{Number: 1, Size: 5}},
		{name: "clamped size", number: 2, size: 500, want: queries.Page{Number: 2, Size: queries.MaxPageSize}},
		{name: "page beyond int32 offsets", number: 300000000, size: 10, want: queries.Page{Number: 214748365, Size: 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, queries.NewPage(tc.number, tc.size)); diff != "" {
				t.Errorf("NewPage mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPage_OffsetNeverWraps(t *testing.T) {
	tests := []struct {
		name         string
		number, size int
		want         int32
	}{
		{name: "first page", number: 1, size: 10, want: 0},
		{name: "third page", number: 3, size: 20, want: 40},
		{name: "huge page", number: 300000000, size: 10, want: 2147483640},
		{name: "max int page", number: math.MaxInt, size: queries.MaxPageSize, want: 2147483600},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := queries.NewPage(tc.number, tc.size).Offset(); got != tc.want {
				t.Errorf("Offset() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  queries.Page
		total int64
		want  queries.Pagination
	}{
		{
			name:  "empty result",
			page:  queries.NewPage(1, 10),
			total: 0,
			want:  queries.Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0, ItemsPerPage: 10},
		},
		{
			name:  "middle page",
			page:  queries.NewPage(2, 10),
			total: 25,
			want:  queries.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 25, ItemsPerPage: 10, HasNext: true, HasPrev: true},
		},
		{
			name:  "exact last page",
			page:  queries.NewPage(2, 10),
			total: 20,
			want:  queries.Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 20, ItemsPerPage: 10, HasPrev: true},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, queries.NewPagination(tc.page, tc.total)); diff != "" {
				t.Errorf("NewPagination mismatch (-want +got):\n%s", diff)
			}
			if got := tc.page.Offset(); got != int32((tc.page.Number-1)*tc.page.Size) {
				t.Errorf("Offset() = %d", got)
			}
		})
	}
}
