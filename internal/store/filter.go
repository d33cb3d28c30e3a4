package store

import "strings"

// Filter narrows aggregations to a year range, a set of states, and a
// set of seasons. Zero values leave a dimension unbounded.
type Filter struct {
	YearFrom int
	YearTo   int
	States   []string
	Seasons  []string
}

// IsZero reports whether the filter leaves the dataset unrestricted.
func (f Filter) IsZero() bool {
	return f.YearFrom == 0 && f.YearTo == 0 && len(f.States) == 0 && len(f.Seasons) == 0
}

// where compiles the filter plus any extra conditions into a
// parameterized WHERE fragment with a leading space, or an empty
// string when nothing restricts the query.
func (f Filter) where(extra ...string) (string, []any) {
	conds := append([]string{}, extra...)
	var args []any

	if f.YearFrom > 0 {
		conds = append(conds, "fire_year >= ?")
		args = append(args, f.YearFrom)
	}
	if f.YearTo > 0 {
		conds = append(conds, "fire_year <= ?")
		args = append(args, f.YearTo)
	}
	if len(f.States) > 0 {
		conds = append(conds, "state IN ("+placeholders(len(f.States))+")")
		for _, s := range f.States {
			args = append(args, s)
		}
	}
	if len(f.Seasons) > 0 {
		conds = append(conds, "season IN ("+placeholders(len(f.Seasons))+")")
		for _, s := range f.Seasons {
			args = append(args, s)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
