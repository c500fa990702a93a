package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByUpdated = "updated_at"
	orderByScore   = "score"
	orderByPrice   = "price"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC",
	orderByUpdated: "updated_at DESC",
	orderByScore:   "deal_score DESC",
	orderByPrice:   "current_price ASC",
}

const defaultOrderBy = "created_at DESC"

const baseProductsSelect = "SELECT " + productColumns + " FROM tracked_products"

const countProductsSelect = "SELECT COUNT(*) FROM tracked_products"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a product
// query. It returns the data query, the count query and the positional
// parameters they share.
func (q *ProductQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.OwnerID != "" {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", paramIdx))
		args = append(args, q.OwnerID)
		paramIdx++
	}

	if q.Platform != "" {
		conditions = append(conditions, fmt.Sprintf("platform_domain = $%d", paramIdx))
		args = append(args, q.Platform)
		paramIdx++
	}

	if q.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", paramIdx))
		args = append(args, "%"+escapeLike(q.Search)+"%")
		paramIdx++
	}

	if q.MinScore != nil {
		conditions = append(conditions, fmt.Sprintf("deal_score >= $%d", paramIdx))
		args = append(args, *q.MinScore)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.PageSize()
	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s, id LIMIT %d OFFSET %d",
		baseProductsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countProductsSelect + whereClause

	return dataSQL, countSQL, args
}

// PageSize is the LIMIT ToSQL applies: Limit clamped to [1, 500], with 0
// meaning 50.
func (q *ProductQuery) PageSize() int {
	switch {
	case q.Limit <= 0:
		return defaultLimit
	case q.Limit > maxLimit:
		return maxLimit
	default:
		return q.Limit
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(strings.TrimSpace(s))
}
