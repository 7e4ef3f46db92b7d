package explorer

import (
	"fmt"
	"strings"
)

// Clause is one WHERE condition of a results query.
type Clause interface {
	// Render returns a condition with `?` markers and the values to
	// interpolate into them.
	Render() (string, []interface{})
}

// WhereEqualsClause matches a column exactly.
type WhereEqualsClause struct {
	column string
	value  interface{}
}

func NewWhereEqualsClause(column string, value interface{}) *WhereEqualsClause {
	return &WhereEqualsClause{column: column, value: value}
}

func (w *WhereEqualsClause) Render() (string, []interface{}) {
	return fmt.Sprintf("%s = ?", w.column), []interface{}{w.value}
}

// WhereBetweenClause matches a column within an inclusive range. Equal
// bounds collapse to an equality check.
type WhereBetweenClause struct {
	column   string
	min, max int
}

func NewWhereBetweenClause(column string, min, max int) *WhereBetweenClause {
	return &WhereBetweenClause{column: column, min: min, max: max}
}

func (w *WhereBetweenClause) Render() (string, []interface{}) {
	if w.min == w.max {
		return fmt.Sprintf("%s = ?", w.column), []interface{}{w.min}
	}
	return fmt.Sprintf("%s between ? and ?", w.column), []interface{}{w.min, w.max}
}

// WhereInClause matches a column against any of a set of values.
type WhereInClause struct {
	column string
	values []string
}

func NewWhereInClause(column string, values []string) *WhereInClause {
	return &WhereInClause{column: column, values: values}
}

func (w *WhereInClause) Render() (string, []interface{}) {
	bindParams := make([]interface{}, len(w.values))
	for i, v := range w.values {
		bindParams[i] = v
	}
	if len(w.values) == 1 {
		return fmt.Sprintf("%s = ?", w.column), bindParams
	}
	markers := strings.Repeat("?,", len(w.values))
	return fmt.Sprintf("%s in (%s)", w.column, markers[:len(markers)-1]), bindParams
}

// renderQuery fills template's WHERE and trailing-clause slots. With no
// clauses the WHERE collapses to a tautology so the template stays one
// shape.
func renderQuery(template string, clauses []Clause, tail string) (string, []interface{}) {
	if len(clauses) == 0 {
		return fmt.Sprintf(template, "1=1", tail), nil
	}
	conds := make([]string, 0, len(clauses))
	var bindParams []interface{}
	for _, c := range clauses {
		cond, params := c.Render()
		conds = append(conds, cond)
		bindParams = append(bindParams, params...)
	}
	return fmt.Sprintf(template, strings.Join(conds, " AND "), tail), bindParams
}
