package dataset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
)

// ColumnType classifies a column for screen preconditions and widget choice
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
	TypeString      ColumnType = "string"
)

// numericRatioThreshold is the fraction of parseable cells required to treat
// a column as numeric.
const numericRatioThreshold = 0.8

// Table is an imported dataset: named columns over positional string rows.
// A table is immutable once built; a new import replaces it wholesale.
type Table struct {
	Name    string     `json:"name"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// FieldInfo describes a single column of the table
type FieldInfo struct {
	Name     string     `json:"name"`
	DataType ColumnType `json:"data_type"`
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnIndex returns the positional index of a named column
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.Headers {
		if h == name {
			return i, true
		}
	}
	return -1, false
}

// Column returns the raw string values of a named column
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}

// NumericColumn returns the parseable numeric values of a named column.
// Blank and unparseable cells are skipped.
func (t *Table) NumericColumn(name string) ([]float64, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, len(raw))
	for _, cell := range raw {
		if v, ok := parseCell(cell); ok {
			values = append(values, v)
		}
	}
	return values, nil
}

// PairedNumeric returns row-aligned numeric pairs for two columns, dropping
// any row where either cell fails to parse.
func (t *Table) PairedNumeric(xName, yName string) (xs, ys []float64, err error) {
	xi, ok := t.ColumnIndex(xName)
	if !ok {
		return nil, nil, core.NewColumnNotFoundError(xName)
	}
	yi, ok := t.ColumnIndex(yName)
	if !ok {
		return nil, nil, core.NewColumnNotFoundError(yName)
	}
	for _, row := range t.Rows {
		if xi >= len(row) || yi >= len(row) {
			continue
		}
		x, okX := parseCell(row[xi])
		y, okY := parseCell(row[yi])
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys, nil
}

// NumericColumns returns the headers whose columns parse as numeric
func (t *Table) NumericColumns() []string {
	var numeric []string
	for _, h := range t.Headers {
		if t.InferType(h) == TypeNumeric {
			numeric = append(numeric, h)
		}
	}
	return numeric
}

// InferType classifies a column as numeric, categorical or string.
// Low-cardinality non-numeric columns are treated as categorical.
func (t *Table) InferType(name string) ColumnType {
	raw, err := t.Column(name)
	if err != nil {
		return TypeString
	}
	total := 0
	numeric := 0
	unique := make(map[string]bool)
	for _, cell := range raw {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		total++
		unique[cell] = true
		if _, ok := parseCell(cell); ok {
			numeric++
		}
	}
	if total == 0 {
		return TypeString
	}
	if float64(numeric)/float64(total) >= numericRatioThreshold {
		return TypeNumeric
	}
	if len(unique) <= 20 && float64(len(unique))/float64(total) < 0.5 {
		return TypeCategorical
	}
	return TypeString
}

// Fields returns typed metadata for every column
func (t *Table) Fields() []FieldInfo {
	fields := make([]FieldInfo, len(t.Headers))
	for i, h := range t.Headers {
		fields[i] = FieldInfo{Name: h, DataType: t.InferType(h)}
	}
	return fields
}

// ValueCount is one category and its frequency
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts returns category frequencies for a column, most frequent first.
// Ties break alphabetically so the ordering is deterministic.
func (t *Table) ValueCounts(name string) ([]ValueCount, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, cell := range raw {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		counts[cell]++
	}
	result := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		result = append(result, ValueCount{Value: value, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	return result, nil
}

// Preview returns the first n rows for the import preview
func (t *Table) Preview(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

func parseCell(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
