package paginator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/pagination-service/pkg/paginator"
)

func ptr(n int) *int { return &n }

func TestCompute_Scenarios(t *testing.T) {
	cases := []struct {
		name               string
		total, page, limit int
		want               paginator.Result
	}{
		{
			name: "first page", total: 100, page: 1, limit: 10,
			want: paginator.Result{
				CurrentPageNumber: 1, TotalRecords: 100, TotalRecordsRemaining: 90,
				TotalPages: 10, Limit: 10, HasNextPage: true, HasPrevPage: false,
				NextPage: ptr(2), PreviousPage: nil, DisplayPages: []int{1, 2, 3, 4, 5},
			},
		},
		{
			name: "last page", total: 100, page: 10, limit: 10,
			want: paginator.Result{
				CurrentPageNumber: 10, TotalRecords: 100, TotalRecordsRemaining: 0,
				TotalPages: 10, Limit: 10, HasNextPage: false, HasPrevPage: true,
				NextPage: nil, PreviousPage: ptr(9), DisplayPages: []int{6, 7, 8, 9, 10},
			},
		},
		{
			name: "middle page with partial tail", total: 95, page: 5, limit: 10,
			want: paginator.Result{
				CurrentPageNumber: 5, TotalRecords: 95, TotalRecordsRemaining: 45,
				TotalPages: 10, Limit: 10, HasNextPage: true, HasPrevPage: true,
				NextPage: ptr(6), PreviousPage: ptr(4), DisplayPages: []int{3, 4, 5, 6, 7},
			},
		},
		{
			name: "no records", total: 0, page: 1, limit: 10,
			want: paginator.Result{
				CurrentPageNumber: 1, TotalRecords: 0, TotalRecordsRemaining: 0,
				TotalPages: 0, Limit: 10, HasNextPage: false, HasPrevPage: false,
				DisplayPages: []int{},
			},
		},
		{
			name: "remaining clamped to zero", total: 23, page: 3, limit: 10,
			want: paginator.Result{
				CurrentPageNumber: 3, TotalRecords: 23, TotalRecordsRemaining: 0,
				TotalPages: 3, Limit: 10, HasNextPage: false, HasPrevPage: true,
				NextPage: nil, PreviousPage: ptr(2), DisplayPages: []int{1, 2, 3},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := paginator.Compute(tc.total, tc.page, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompute_InvalidLimit(t *testing.T) {
	for _, limit := range []int{0, -1, -50} {
		_, err := paginator.Compute(100, 1, limit)
		assert.ErrorIs(t, err, paginator.ErrInvalidLimit, "limit=%d", limit)

		p, err := paginator.New(100, 1, limit)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, paginator.ErrInvalidLimit)
	}
}

func TestCompute_PermissiveInputs(t *testing.T) {
	t.Run("page beyond total", func(t *testing.T) {
		got, err := paginator.Compute(30, 10, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, got.TotalPages)
		assert.False(t, got.HasNextPage)
		assert.True(t, got.HasPrevPage)
		assert.Equal(t, ptr(9), got.PreviousPage)
		assert.Equal(t, []int{1, 2, 3}, got.DisplayPages)
	})

	t.Run("zero page", func(t *testing.T) {
		got, err := paginator.Compute(50, 0, 10)
		require.NoError(t, err)
		assert.True(t, got.HasNextPage)
		assert.Equal(t, ptr(1), got.NextPage)
		assert.False(t, got.HasPrevPage)
		assert.Equal(t, 50, got.TotalRecordsRemaining)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got.DisplayPages)
	})

	t.Run("negative page", func(t *testing.T) {
		got, err := paginator.Compute(50, -3, 10)
		require.NoError(t, err)
		assert.Equal(t, ptr(-2), got.NextPage)
		assert.Equal(t, 80, got.TotalRecordsRemaining)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got.DisplayPages)
	})

	t.Run("negative total", func(t *testing.T) {
		got, err := paginator.Compute(-15, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, -1, got.TotalPages)
		assert.Equal(t, 0, got.TotalRecordsRemaining)
		assert.False(t, got.HasNextPage)
		assert.Empty(t, got.DisplayPages)
		assert.NotNil(t, got.DisplayPages)
	})
}

func TestTotalPages_RoundsUp(t *testing.T) {
	for total := 0; total <= 250; total++ {
		for _, limit := range []int{1, 3, 7, 10, 25, 100} {
			p, err := paginator.New(total, 1, limit)
			require.NoError(t, err)
			want := total / limit
			if want*limit < total {
				want++
			}
			assert.Equal(t, want, p.TotalPages(), "total=%d limit=%d", total, limit)
		}
	}
}

func TestResult_Properties(t *testing.T) {
	for total := 0; total <= 120; total += 7 {
		for _, limit := range []int{1, 4, 10, 33} {
			for page := -2; page <= 40; page++ {
				got, err := paginator.Compute(total, page, limit)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, got.TotalRecordsRemaining, 0)
				assert.Equal(t, page < got.TotalPages, got.HasNextPage)
				assert.Equal(t, got.HasNextPage, got.NextPage != nil)
				assert.Equal(t, page > 1, got.HasPrevPage)
				assert.Equal(t, got.HasPrevPage, got.PreviousPage != nil)

				pages := got.DisplayPages
				require.LessOrEqual(t, len(pages), 5)
				if got.TotalPages == 0 {
					assert.Empty(t, pages)
				}
				if got.TotalPages >= 5 {
					assert.Len(t, pages, 5)
				}
				for i, n := range pages {
					assert.GreaterOrEqual(t, n, 1)
					assert.LessOrEqual(t, n, got.TotalPages)
					if i > 0 {
						assert.Equal(t, pages[i-1]+1, n)
					}
				}
			}
		}
	}
}

func TestResult_JSON(t *testing.T) {
	got, err := paginator.Compute(0, 1, 10)
	require.NoError(t, err)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"current_page_number": 1,
		"total_records": 0,
		"total_records_remaining": 0,
		"total_pages": 0,
		"limit": 10,
		"has_next_page": false,
		"has_prev_page": false,
		"next_page": null,
		"previous_page": null,
		"display_pages": []
	}`, string(raw))
}
