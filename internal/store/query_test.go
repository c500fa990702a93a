package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestProductQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         ProductQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string
		wantDataNotIn []string
	}{
		{
			name:  "empty query uses defaults",
			query: ProductQuery{},
			wantDataHas: []string{
				"FROM tracked_products",
				"ORDER BY created_at DESC, id",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM tracked_products",
		},
		{
			name:         "owner filter",
			query:        ProductQuery{OwnerID: "user-1"},
			wantDataHas:  []string{"WHERE owner_id = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM tracked_products WHERE owner_id = $1",
			wantArgs:     []any{"user-1"},
		},
		{
			name: "all filters",
			query: ProductQuery{
				OwnerID:  "user-1",
				Platform: "amazon.in",
				Search:   "50%_off",
				MinScore: ptr(70.0),
			},
			wantDataHas: []string{
				"WHERE owner_id = $1 AND platform_domain = $2 AND name ILIKE $3 AND deal_score >= $4",
			},
			wantCountSQL: "SELECT COUNT(*) FROM tracked_products WHERE owner_id = $1 AND platform_domain = $2 AND name ILIKE $3 AND deal_score >= $4",
			wantArgs:     []any{"user-1", "amazon.in", `%50\%\_off%`, 70.0},
		},
		{
			name:        "order by score",
			query:       ProductQuery{OrderBy: "score"},
			wantDataHas: []string{"ORDER BY deal_score DESC, id"},
		},
		{
			name:        "unknown order falls back",
			query:       ProductQuery{OrderBy: "name; DROP TABLE tracked_products"},
			wantDataHas: []string{"ORDER BY created_at DESC, id"},
			wantDataNotIn: []string{
				"DROP TABLE",
			},
		},
		{
			name:        "limit capped and offset floored",
			query:       ProductQuery{Limit: 10000, Offset: -5},
			wantDataHas: []string{"LIMIT 500", "OFFSET 0"},
		},
		{
			name:        "custom paging",
			query:       ProductQuery{Limit: 20, Offset: 40},
			wantDataHas: []string{"LIMIT 20", "OFFSET 40"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s)
			}
			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestProductQuery_PageSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: 50},
		{limit: -3, want: 50},
		{limit: 1, want: 1},
		{limit: 500, want: 500},
		{limit: 501, want: 500},
	}
	for _, tt := range tests {
		q := ProductQuery{Limit: tt.limit}
		assert.Equal(t, tt.want, q.PageSize(), "limit %d", tt.limit)
	}
}
