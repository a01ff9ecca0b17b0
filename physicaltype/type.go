// Package physicaltype implements the host framework's physical type
// descriptors that the layout and btree cores size against: bit-precise
// size and alignment, plus a kind tag. It also carries the one
// domain-specific type the schema layer cares about — a
// decimal.Decimal-backed column — as a fixed-width physical type.
package physicaltype

import "github.com/shopspring/decimal"

// TypeKind distinguishes the physical representations the layout core
// must reason about.
type TypeKind int

const (
	KindInteger TypeKind = iota
	KindFloat
	KindDouble
	KindBool
	KindChar
	KindDate
	KindBitmap
	KindDecimal
)

// PhysicalType is the read-only descriptor consumed by the layout core.
// All sizes and alignments are expressed in bits.
type PhysicalType interface {
	SizeInBits() uint64
	AlignmentInBits() uint64
	Kind() TypeKind

	IsInteger() bool
	IsFloat() bool
	IsDouble() bool
	IsBool() bool
	IsChar() bool
	IsDate() bool
	IsBitmap() bool
}

type baseType struct {
	kind      TypeKind
	size      uint64
	alignment uint64
}

func (t baseType) SizeInBits() uint64      { return t.size }
func (t baseType) AlignmentInBits() uint64 { return t.alignment }
func (t baseType) Kind() TypeKind          { return t.kind }

func (t baseType) IsInteger() bool { return t.kind == KindInteger }
func (t baseType) IsFloat() bool   { return t.kind == KindFloat }
func (t baseType) IsDouble() bool  { return t.kind == KindDouble }
func (t baseType) IsBool() bool    { return t.kind == KindBool }
func (t baseType) IsChar() bool    { return t.kind == KindChar }
func (t baseType) IsDate() bool    { return t.kind == KindDate }
func (t baseType) IsBitmap() bool  { return t.kind == KindBitmap }

// Int32 is a 32-bit signed integer, 32-bit aligned.
func Int32() PhysicalType { return baseType{kind: KindInteger, size: 32, alignment: 32} }

// Int64 is a 64-bit signed integer, 64-bit aligned.
func Int64() PhysicalType { return baseType{kind: KindInteger, size: 64, alignment: 64} }

// Float32 is an IEEE-754 single precision float, 32-bit aligned.
func Float32() PhysicalType { return baseType{kind: KindFloat, size: 32, alignment: 32} }

// Float64 (Double) is an IEEE-754 double precision float, 64-bit aligned.
func Float64() PhysicalType { return baseType{kind: KindDouble, size: 64, alignment: 64} }

// Bool is a single-bit flag, byte aligned (matches the coursework's
// "bool occupies 1 bit, aligned to 1 byte" convention used in Scenario 2).
func Bool() PhysicalType { return baseType{kind: KindBool, size: 1, alignment: 8} }

// Char returns a fixed-width character column of n bytes, byte aligned.
func Char(n uint64) PhysicalType { return baseType{kind: KindChar, size: n * 8, alignment: 8} }

// Date32 is a 32-bit date (days since epoch), 32-bit aligned.
func Date32() PhysicalType { return baseType{kind: KindDate, size: 32, alignment: 32} }

// Bitmap returns the synthetic NULL-bitmap type for n attributes: n bits,
// unaligned (alignment 1 bit), so it packs directly against whatever
// field precedes it instead of padding out to a byte boundary. Tiled with
// a stride of n bits per occurrence when laid out column-wise by the PAX
// factory.
func Bitmap(n uint64) PhysicalType { return baseType{kind: KindBitmap, size: n, alignment: 1} }

// decimalType represents a decimal.Decimal column as two int64 limbs
// (unscaled value high/low halves would be engine-specific; the core only
// needs the storage footprint), matching the
// `decimal.Decimal -> Decimal` struct-tag mapping in schema.StructToFields.
type decimalType struct{ baseType }

// Decimal is a fixed-width physical representation of a shopspring/decimal
// column: 16 bytes (two int64 limbs), 64-bit aligned. The decimal.Decimal
// zero value is used only to anchor the dependency at the type level —
// the layout core treats it as an opaque fixed-size payload.
func Decimal() PhysicalType {
	_ = decimal.Decimal{} // anchors the dependency: this type models decimal.Decimal's storage footprint
	return decimalType{baseType{kind: KindDecimal, size: 128, alignment: 64}}
}
