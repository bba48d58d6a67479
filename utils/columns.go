package utils

import "reflect"

// ColumnList returns the "db" tagged column names of a db model struct, in
// declaration order. Embedded structs are flattened.
func ColumnList[DBModel any]() []string {
	var model DBModel
	return columnsOf(reflect.TypeOf(model))
}

func columnsOf(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(field.Type)...)
			continue
		}
		if tag, ok := field.Tag.Lookup("db"); ok && tag != "-" {
			columns = append(columns, tag)
		}
	}
	return columns
}
