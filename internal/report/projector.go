// Package report turns entity collections into flat, column-defined row
// sets for tabular display and file export. Role scoping is the first and
// non-bypassable projection stage.
package report

import (
	"fmt"
	"strings"

	"github.com/qztech/asset-console/internal/domain"
)

// Row is an entity flattened to field/value pairs.
type Row map[string]any

// Column defines one output column. Transform, when set, maps the raw field
// value (with access to the whole row) to its display value; otherwise the
// raw value passes through.
type Column struct {
	Field     string
	Header    string
	Transform func(value any, row Row) any
}

// Scope carries the caller's role context into projection. CustomerID is
// meaningful for the customer role only.
type Scope struct {
	Role       domain.Role
	CustomerID int
}

// FlatRow holds cell values aligned with the projection's columns.
type FlatRow []any

// Projection is the flat table produced by Project.
type Projection struct {
	Headers []string  `json:"headers"`
	Rows    []FlatRow `json:"rows"`
}

// ScopeRows applies role scoping: customers see only rows whose customerId
// matches their own, other roles see everything. Always runs before any
// other filter or pagination step.
func ScopeRows(rows []Row, scope Scope) []Row {
	if scope.Role != domain.RoleCustomer {
		return rows
	}
	want := fmt.Sprint(scope.CustomerID)
	scoped := make([]Row, 0, len(rows))
	for _, row := range rows {
		if fmt.Sprint(row["customerId"]) == want {
			scoped = append(scoped, row)
		}
	}
	return scoped
}

// SelectRows keeps rows whose id is in the selection set, preserving the
// original relative order. An empty selection means export-all.
func SelectRows(rows []Row, selected []string) []Row {
	if len(selected) == 0 {
		return rows
	}
	wanted := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		wanted[id] = struct{}{}
	}
	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		if _, ok := wanted[fmt.Sprint(row["id"])]; ok {
			kept = append(kept, row)
		}
	}
	return kept
}

// MatchesSearch reports whether the query is empty or any of the named
// fields contains it, case-insensitively.
func MatchesSearch(row Row, query string, fields []string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		v, ok := row[field]
		if !ok || v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(v)), query) {
			return true
		}
	}
	return false
}

// Project maps rows through the column specs after role scoping and
// selection. Missing and nil field values become empty strings so flat
// export formats never render a literal nil.
func Project(rows []Row, cols []Column, scope Scope, selected []string) Projection {
	rows = ScopeRows(rows, scope)
	rows = SelectRows(rows, selected)

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Header
	}

	flat := make([]FlatRow, 0, len(rows))
	for _, row := range rows {
		cells := make(FlatRow, len(cols))
		for i, col := range cols {
			value := row[col.Field]
			if col.Transform != nil {
				value = col.Transform(value, row)
			}
			if value == nil {
				value = ""
			}
			cells[i] = value
		}
		flat = append(flat, cells)
	}
	return Projection{Headers: headers, Rows: flat}
}
