package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Query selects high-proper-motion stars from a source table. The
// projected columns are fixed: the pipeline needs designation, position,
// parallax, proper motion and radial velocity for every row.
type Query struct {
	Table string  // source table, DefaultTable when empty
	MinPM float64 // total proper motion floor in mas/yr
	Limit int     // row cap; 0 means no cap
}

var queryColumns = []string{
	"designation", "ra", "dec", "parallax", "pmra", "pmdec", "radial_velocity",
}

func (q Query) Validate() error {
	if math.IsNaN(q.MinPM) || math.IsInf(q.MinPM, 0) || q.MinPM < 0 {
		return errors.New("catalog: min proper motion must be finite and non-negative")
	}
	if q.Limit < 0 {
		return errors.New("catalog: row limit must not be negative")
	}
	return nil
}

// ADQL renders the query text. Rows missing any kinematic column are
// excluded here rather than downstream; a parallax floor of zero keeps
// distances defined.
func (q Query) ADQL() string {
	table := q.Table
	if table == "" {
		table = DefaultTable
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	if q.Limit > 0 {
		fmt.Fprintf(&b, "TOP %d ", q.Limit)
	}
	b.WriteString(strings.Join(queryColumns, ", "))
	fmt.Fprintf(&b, " FROM %s", table)
	b.WriteString(" WHERE parallax > 0")
	b.WriteString(" AND pmra IS NOT NULL AND pmdec IS NOT NULL AND radial_velocity IS NOT NULL")
	if q.MinPM > 0 {
		fmt.Fprintf(&b, " AND SQRT(pmra*pmra + pmdec*pmdec) >= %g", q.MinPM)
	}
	b.WriteString(" ORDER BY SQRT(pmra*pmra + pmdec*pmdec) DESC")
	return b.String()
}
