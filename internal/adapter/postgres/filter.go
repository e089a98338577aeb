package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/thronelight/platform/internal/domain"
)

// FilterWhere turns the common list filter into a WHERE clause.
// Search matches any of searchCols case-insensitively.
func FilterWhere(f domain.ListFilter, searchCols ...string) sq.And {
	where := sq.And{}
	if f.Status != nil && *f.Status != "" {
		where = append(where, sq.Eq{"status": *f.Status})
	}
	if f.Type != nil && *f.Type != "" {
		where = append(where, sq.Eq{"type": *f.Type})
	}
	if f.Search != nil && len(searchCols) > 0 {
		if term := strings.TrimSpace(*f.Search); term != "" {
			pattern := "%" + escapeLike(term) + "%"
			or := sq.Or{}
			for _, col := range searchCols {
				or = append(or, sq.ILike{col: pattern})
			}
			where = append(where, or)
		}
	}
	return where
}

// Page applies the clamped limit and offset of a listing.
func Page(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	return b.Limit(uint64(domain.PageSize(limit))).Offset(uint64(max(offset, 0)))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
