package dto

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		totalItems int64
		want       Pagination
	}{
		{
			name: "first of three pages", page: 1, limit: 10, totalItems: 25,
			want: Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 25, Limit: 10, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page", page: 2, limit: 10, totalItems: 25,
			want: Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 25, Limit: 10, HasNext: true, HasPrev: true},
		},
		{
			name: "last page", page: 3, limit: 10, totalItems: 25,
			want: Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25, Limit: 10, HasNext: false, HasPrev: true},
		},
		{
			name: "empty collection", page: 1, limit: 10, totalItems: 0,
			want: Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0, Limit: 10, HasNext: false, HasPrev: false},
		},
		{
			name: "exact multiple", page: 1, limit: 5, totalItems: 10,
			want: Pagination{CurrentPage: 1, TotalPages: 2, TotalItems: 10, Limit: 5, HasNext: true, HasPrev: false},
		},
		{
			name: "zero page and limit fall back", page: 0, limit: 0, totalItems: 7,
			want: Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 7, Limit: 10, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.page, tt.limit, tt.totalItems)
			if got != tt.want {
				t.Errorf("NewPagination(%d, %d, %d) = %+v, want %+v",
					tt.page, tt.limit, tt.totalItems, got, tt.want)
			}
		})
	}
}
