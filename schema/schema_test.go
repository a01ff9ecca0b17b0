package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.tczkiot.com/wlw/dbcore/schema"
)

type demoUser struct {
	ID       int64   `dbcore:"id;comment:primary identifier"`
	Name     string  `dbcore:"name;len:20"`
	Score    float64 `dbcore:"score"`
	IsActive bool    `dbcore:"is_active"`
	Internal string  `dbcore:"-"`
}

type demoProduct struct {
	ProductID   string `dbcore:"product_id;len:16"`
	ProductName string `dbcore:"product_name;len:40"`
	InStock     bool
}

func TestStructToFieldsTagsAndDefaults(t *testing.T) {
	fields, err := schema.StructToFields(demoUser{})
	require.NoError(t, err)
	require.Len(t, fields, 4)
	assert.Equal(t, "id", fields[0].Name)
	assert.Equal(t, schema.Int64, fields[0].Type)
	assert.Equal(t, "primary identifier", fields[0].Comment)
	assert.Equal(t, schema.Char, fields[1].Type)
	assert.Equal(t, 20, fields[1].Len)
	assert.Equal(t, schema.Float64, fields[2].Type)
	assert.Equal(t, schema.Bool, fields[3].Type)
}

func TestStructToFieldsDefaultSnakeCaseNaming(t *testing.T) {
	fields, err := schema.StructToFields(demoProduct{})
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, "product_id", fields[0].Name)
	assert.Equal(t, "product_name", fields[1].Name)
	assert.Equal(t, "in_stock", fields[2].Name)
}

func TestNewSchemaRejectsEmptyNameOrFields(t *testing.T) {
	_, err := schema.NewSchema("", []schema.Field{{Name: "a", Type: schema.Int64}})
	assert.Error(t, err)
	_, err = schema.NewSchema("s", nil)
	assert.Error(t, err)
}

func TestNewSchemaRejectsDuplicateFieldNames(t *testing.T) {
	_, err := schema.NewSchema("s", []schema.Field{
		{Name: "a", Type: schema.Int64},
		{Name: "a", Type: schema.Bool},
	})
	assert.Error(t, err)
}

func TestToPhysicalTypesMapsEveryFieldType(t *testing.T) {
	fields, err := schema.StructToFields(demoUser{})
	require.NoError(t, err)
	s, err := schema.NewSchema("users", fields)
	require.NoError(t, err)

	types, err := s.ToPhysicalTypes()
	require.NoError(t, err)
	require.Len(t, types, 4)
	assert.EqualValues(t, 64, types[0].SizeInBits())
	assert.EqualValues(t, 160, types[1].SizeInBits()) // char(20)
	assert.EqualValues(t, 64, types[2].SizeInBits())
	assert.EqualValues(t, 1, types[3].SizeInBits())
}

func TestToPhysicalTypesRejectsCharWithoutLen(t *testing.T) {
	s, err := schema.NewSchema("bad", []schema.Field{{Name: "x", Type: schema.Char}})
	require.NoError(t, err)
	_, err = s.ToPhysicalTypes()
	assert.Error(t, err)
}
