package repository

import (
	"fmt"
	"sort"
	"strings"
)

// buildSelect renders q against table. Unknown columns are rejected so that
// caller-supplied filters never reach the SQL text.
func buildSelect(table, columns string, allowed map[string]bool, q Query) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(columns)
	sb.WriteString(" FROM ")
	sb.WriteString(table)

	keys := make([]string, 0, len(q.Filter))
	for k := range q.Filter {
		if !allowed[k] {
			return "", nil, fmt.Errorf("unknown filter column %q for %s", k, table)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, q.Filter[k])
		fmt.Fprintf(&sb, "%s = $%d", k, len(args))
	}

	if q.OrderBy != "" {
		if !allowed[q.OrderBy] {
			return "", nil, fmt.Errorf("unknown order column %q for %s", q.OrderBy, table)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.OrderBy)
		if q.Desc {
			sb.WriteString(" DESC")
		}
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	return sb.String(), args, nil
}
