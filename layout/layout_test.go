package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.tczkiot.com/wlw/dbcore/layout"
	"code.tczkiot.com/wlw/dbcore/physicaltype"
)

// Scenario 1: naive row, single int32.
func TestNaiveRowSingleInt32(t *testing.T) {
	dl, err := layout.NaiveRow([]physicaltype.PhysicalType{physicaltype.Int32()}, 1)
	require.NoError(t, err)
	require.NotNil(t, dl.Root)
	assert.EqualValues(t, 64, dl.Root.StrideInBits)
	require.Len(t, dl.Root.Children, 2)
	assert.EqualValues(t, 0, dl.Root.Children[0].OffsetInBits)
	assert.Equal(t, 0, dl.Root.Children[0].SourceIndex)
	assert.EqualValues(t, 32, dl.Root.Children[1].OffsetInBits)
	assert.Equal(t, 1, dl.Root.Children[1].SourceIndex)
	assert.EqualValues(t, 1, dl.Root.Children[1].Type.SizeInBits())
}

// Scenario 2: optimized row, mixed widths.
func TestOptimizedRowMixedWidths(t *testing.T) {
	types := []physicaltype.PhysicalType{
		physicaltype.Int32(),
		physicaltype.Char(20),
		physicaltype.Date32(),
		physicaltype.Bool(),
		physicaltype.Float64(),
	}
	dl, err := layout.OptimizedRow(types, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 320, dl.Root.StrideInBits)

	byIndex := map[int]layout.Leaf{}
	for _, leaf := range dl.Root.Children {
		byIndex[leaf.SourceIndex] = leaf
	}
	assert.EqualValues(t, 64, byIndex[0].OffsetInBits)  // int32
	assert.EqualValues(t, 128, byIndex[1].OffsetInBits) // char(20)
	assert.EqualValues(t, 96, byIndex[2].OffsetInBits)  // date32
	assert.EqualValues(t, 288, byIndex[3].OffsetInBits) // bool
	assert.EqualValues(t, 0, byIndex[4].OffsetInBits)   // double64
	assert.EqualValues(t, 289, byIndex[5].OffsetInBits) // bitmap(5)
	assert.EqualValues(t, 5, byIndex[5].Type.SizeInBits())
}

// Scenario 3: PAX with int32, 4096 B block.
func TestPAXInt32(t *testing.T) {
	dl, err := layout.PAX([]physicaltype.PhysicalType{physicaltype.Int32()}, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 32768, dl.Root.StrideInBits)
	assert.EqualValues(t, 992, dl.Root.NumTuples)

	byIndex := map[int]layout.Leaf{}
	for _, leaf := range dl.Root.Children {
		byIndex[leaf.SourceIndex] = leaf
	}
	assert.EqualValues(t, 0, byIndex[0].OffsetInBits)
	assert.EqualValues(t, 32, byIndex[0].StrideInBits)
	assert.EqualValues(t, 31744, byIndex[1].OffsetInBits)
	assert.EqualValues(t, 1, byIndex[1].StrideInBits)
}

func TestOptimizedRowPaddingNeverExceedsNaive(t *testing.T) {
	cases := [][]physicaltype.PhysicalType{
		{physicaltype.Int32()},
		{physicaltype.Bool(), physicaltype.Int64(), physicaltype.Char(3)},
		{physicaltype.Float64(), physicaltype.Date32(), physicaltype.Bool(), physicaltype.Int32(), physicaltype.Char(20)},
		{physicaltype.Decimal(), physicaltype.Bool(), physicaltype.Int32()},
	}
	for _, types := range cases {
		naive, err := layout.NaiveRow(types, 1)
		require.NoError(t, err)
		optimized, err := layout.OptimizedRow(types, 1)
		require.NoError(t, err)
		assert.LessOrEqual(t, optimized.Root.StrideInBits, naive.Root.StrideInBits)
	}
}

func TestLayoutCoverageAndAlignmentInvariants(t *testing.T) {
	types := []physicaltype.PhysicalType{
		physicaltype.Int32(), physicaltype.Char(20), physicaltype.Date32(),
		physicaltype.Bool(), physicaltype.Float64(), physicaltype.Decimal(),
	}
	k := len(types)
	for _, make := range []func([]physicaltype.PhysicalType, uint64, ...layout.Option) (*layout.DataLayout, error){
		layout.NaiveRow, layout.OptimizedRow, layout.PAX,
	} {
		dl, err := make(types, 1)
		require.NoError(t, err)
		require.NoError(t, dl.Validate())

		seen := map[int]bool{}
		for _, leaf := range dl.Root.Children {
			assert.False(t, seen[leaf.SourceIndex], "duplicate source index")
			seen[leaf.SourceIndex] = true
			assert.Zero(t, leaf.OffsetInBits%leaf.Type.AlignmentInBits())
		}
		assert.True(t, seen[k], "bitmap leaf must use index k")
		assert.EqualValues(t, k, findLeaf(dl, k).Type.SizeInBits())
	}
}

func TestPAXDensityInvariant(t *testing.T) {
	types := []physicaltype.PhysicalType{physicaltype.Int32(), physicaltype.Float64(), physicaltype.Bool()}
	dl, err := layout.PAX(types, 1)
	require.NoError(t, err)

	var bitsPerTuple uint64
	for _, t := range types {
		bitsPerTuple += t.SizeInBits()
	}
	bitsPerTuple += uint64(len(types)) // bitmap

	n := dl.Root.NumTuples
	assert.LessOrEqual(t, n*bitsPerTuple, dl.Root.StrideInBits)
	assert.Greater(t, (n+1)*bitsPerTuple, dl.Root.StrideInBits)
}

func TestEmptyTypeListRejected(t *testing.T) {
	_, err := layout.NaiveRow(nil, 1)
	assert.Error(t, err)
	_, err = layout.OptimizedRow(nil, 1)
	assert.Error(t, err)
	_, err = layout.PAX(nil, 1)
	assert.Error(t, err)
}

func findLeaf(dl *layout.DataLayout, index int) layout.Leaf {
	for _, leaf := range dl.Root.Children {
		if leaf.SourceIndex == index {
			return leaf
		}
	}
	return layout.Leaf{}
}
