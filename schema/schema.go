// Package schema bridges an ordered Go struct definition to the ordered
// attribute list layout.NaiveRow/OptimizedRow/PAX expect: a Schema names
// fields in declaration order, and ToPhysicalTypes maps each field's
// FieldType to a physicaltype.PhysicalType so a caller can go directly
// from a Go struct tag to a DataLayout.
package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"code.tczkiot.com/wlw/dbcore/dbcoreerr"
	"code.tczkiot.com/wlw/dbcore/physicaltype"
)

// FieldType names a Go-level field type in terms of the physical types the
// layout package can lay out.
type FieldType int

const (
	_ FieldType = iota
	Int32
	Int64
	Float32
	Float64
	Bool
	Char    // fixed-width string; Field.Len gives its length in bytes
	Date    // time.Time, stored as a 32-bit date
	Decimal // shopspring/decimal, stored as a 128-bit fixed-width value
)

func (t FieldType) String() string {
	switch t {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Date:
		return "date"
	case Decimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Field is one attribute in a Schema.
type Field struct {
	Name    string
	Type    FieldType
	Len     int // byte length for Char fields; ignored otherwise
	Comment string
}

// Schema is an ordered list of attribute fields.
type Schema struct {
	Name   string
	Fields []Field
}

// NewSchema validates and constructs a Schema: name must be non-empty,
// there must be at least one field, and field names must be unique.
func NewSchema(name string, fields []Field) (*Schema, error) {
	if name == "" {
		return nil, dbcoreerr.Newf(dbcoreerr.ErrCodeEmptyTypeList, "schema name cannot be empty")
	}
	if len(fields) == 0 {
		return nil, dbcoreerr.New(dbcoreerr.ErrCodeEmptyTypeList, nil)
	}
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, dbcoreerr.Newf(dbcoreerr.ErrCodeLayoutShape, "field at index %d has empty name", i)
		}
		if seen[f.Name] {
			return nil, dbcoreerr.Newf(dbcoreerr.ErrCodeLayoutShape, "duplicate field name: %s", f.Name)
		}
		seen[f.Name] = true
	}
	return &Schema{Name: name, Fields: fields}, nil
}

// ToPhysicalTypes maps the schema's fields, in declaration order, to the
// physicaltype.PhysicalType list the layout factories consume. The NULL
// bitmap is synthesized by the layout package itself, not here.
func (s *Schema) ToPhysicalTypes() ([]physicaltype.PhysicalType, error) {
	types := make([]physicaltype.PhysicalType, len(s.Fields))
	for i, f := range s.Fields {
		switch f.Type {
		case Int32:
			types[i] = physicaltype.Int32()
		case Int64:
			types[i] = physicaltype.Int64()
		case Float32:
			types[i] = physicaltype.Float32()
		case Float64:
			types[i] = physicaltype.Float64()
		case Bool:
			types[i] = physicaltype.Bool()
		case Date:
			types[i] = physicaltype.Date32()
		case Decimal:
			types[i] = physicaltype.Decimal()
		case Char:
			if f.Len <= 0 {
				return nil, dbcoreerr.Newf(dbcoreerr.ErrCodeLayoutShape, "field %s: char field requires a positive Len", f.Name)
			}
			types[i] = physicaltype.Char(uint64(f.Len))
		default:
			return nil, dbcoreerr.Newf(dbcoreerr.ErrCodeLayoutShape, "field %s: unknown field type %v", f.Name, f.Type)
		}
	}
	return types, nil
}

// StructToFields derives a Field list from an exported Go struct's fields,
// in declaration order. Tag format, on the `dbcore` struct tag:
//
//	`dbcore:"name;len:20;comment:free text"`
//
// The first tag segment is the field name (defaults to the struct field's
// name converted to snake_case); `len:N` is required for string fields;
// `comment:...` is free text. A tag of "-" skips the field.
func StructToFields(v any) ([]Field, error) {
	typ := reflect.TypeOf(v)
	if typ == nil {
		return nil, fmt.Errorf("invalid type: nil")
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct, got %s", typ.Kind())
	}

	var fields []Field
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("dbcore")
		if tag == "-" {
			continue
		}

		name := camelToSnake(sf.Name)
		length := 0
		comment := ""
		if tag != "" {
			for idx, part := range strings.Split(tag, ";") {
				part = strings.TrimSpace(part)
				switch {
				case idx == 0 && part != "":
					name = part
				case strings.HasPrefix(part, "len:"):
					n, err := strconv.Atoi(strings.TrimPrefix(part, "len:"))
					if err != nil {
						return nil, fmt.Errorf("field %s: invalid len tag: %w", sf.Name, err)
					}
					length = n
				case strings.HasPrefix(part, "comment:"):
					comment = strings.TrimPrefix(part, "comment:")
				}
			}
		}

		fieldType, err := goTypeToFieldType(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		fields = append(fields, Field{Name: name, Type: fieldType, Len: length, Comment: comment})
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("no exported fields found in struct")
	}
	return fields, nil
}

func goTypeToFieldType(typ reflect.Type) (FieldType, error) {
	if typ.PkgPath() == "github.com/shopspring/decimal" && typ.Name() == "Decimal" {
		return Decimal, nil
	}
	if typ.PkgPath() == "time" && typ.Name() == "Time" {
		return Date, nil
	}
	switch typ.Kind() {
	case reflect.Int32:
		return Int32, nil
	case reflect.Int, reflect.Int64:
		return Int64, nil
	case reflect.Float32:
		return Float32, nil
	case reflect.Float64:
		return Float64, nil
	case reflect.Bool:
		return Bool, nil
	case reflect.String:
		return Char, nil
	default:
		return 0, fmt.Errorf("unsupported type: %s", typ.Kind())
	}
}

// camelToSnake converts a CamelCase identifier to snake_case, treating a
// run of capitals followed by a lowercase letter as the start of a new
// word (HTTPServer -> http_server).
func camelToSnake(s string) string {
	var result strings.Builder
	result.Grow(len(s) + 5)

	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				prev := rune(s[i-1])
				needUnderscore := false
				switch {
				case prev >= 'a' && prev <= 'z':
					needUnderscore = true
				case prev >= 'A' && prev <= 'Z':
					if i+1 < len(s) {
						next := rune(s[i+1])
						if next >= 'a' && next <= 'z' {
							needUnderscore = true
						}
					}
				default:
					needUnderscore = true
				}
				if needUnderscore {
					result.WriteRune('_')
				}
			}
			result.WriteRune(r + 32)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// GetField returns the named field, or an error if it does not exist.
func (s *Schema) GetField(name string) (*Field, error) {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i], nil
		}
	}
	return nil, dbcoreerr.Newf(dbcoreerr.ErrCodeLayoutShape, "field %s not found", name)
}
