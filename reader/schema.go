package reader

import (
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Column is one output column of a parquet file.
//
// Name uses dot notation for fields nested in groups (e.g. "address.city").
type Column struct {
	Name string
	path []string
}

// lookup walks a decoded row along the column path.
func (c Column) lookup(row map[string]interface{}) interface{} {
	var current interface{} = row
	for _, part := range c.path {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current = m[part]
	}
	return current
}

// flattenSchema lists the leaf columns of a schema in schema order.
func flattenSchema(schema *parquet.Schema) []Column {
	var columns []Column
	for _, field := range schema.Fields() {
		columns = append(columns, flattenField(field, nil)...)
	}
	return columns
}

// flattenField recurses into non-repeated groups. A repeated field is kept
// as a single column whose cell is the printed list.
func flattenField(field parquet.Field, parent []string) []Column {
	path := append(append([]string{}, parent...), field.Name())

	children := field.Fields()
	if len(children) == 0 || field.Repeated() || isCollection(field) {
		return []Column{{Name: strings.Join(path, "."), path: path}}
	}

	var columns []Column
	for _, child := range children {
		columns = append(columns, flattenField(child, path)...)
	}
	return columns
}

// isCollection reports whether field carries the LIST or MAP logical type.
func isCollection(field parquet.Field) bool {
	if field.Type() == nil {
		return false
	}
	logicalType := field.Type().LogicalType()
	return logicalType != nil && (logicalType.List != nil || logicalType.Map != nil)
}
