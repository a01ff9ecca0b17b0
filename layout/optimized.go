package layout

import (
	"sort"

	"code.tczkiot.com/wlw/dbcore/dbcoreerr"
	"code.tczkiot.com/wlw/dbcore/physicaltype"
)

type indexedType struct {
	t     physicaltype.PhysicalType
	index int
}

// sortByDescendingAlignment stably sorts types by descending alignment,
// keeping declaration order among ties. Shared by OptimizedRow and PAX so
// the ordering rule lives in exactly one place.
func sortByDescendingAlignment(types []physicaltype.PhysicalType) []indexedType {
	indexed := make([]indexedType, len(types))
	for i, t := range types {
		indexed[i] = indexedType{t: t, index: i}
	}
	sort.SliceStable(indexed, func(i, j int) bool {
		return indexed[i].t.AlignmentInBits() > indexed[j].t.AlignmentInBits()
	})
	return indexed
}

// OptimizedRow lays out the same attributes as NaiveRow, after stably
// sorting the attribute-and-bitmap list by descending alignment to
// minimize padding. Emitted leaves retain the original source index; only
// the emission order (and therefore the offsets) changes.
func OptimizedRow(types []physicaltype.PhysicalType, numTuples uint64, opts ...Option) (*DataLayout, error) {
	o := newOptions(opts)
	if len(types) == 0 {
		return nil, dbcoreerr.New(dbcoreerr.ErrCodeEmptyTypeList, nil)
	}

	k := len(types)
	all := make([]physicaltype.PhysicalType, 0, k+1)
	all = append(all, types...)
	all = append(all, physicaltype.Bitmap(uint64(k)))

	sorted := sortByDescendingAlignment(all)

	offsets := make([]uint64, len(all))
	var offset, maxAlign uint64
	for _, it := range sorted {
		align := it.t.AlignmentInBits()
		if align == 0 {
			return nil, dbcoreerr.New(dbcoreerr.ErrCodeZeroAlignment, nil)
		}
		offset = physicaltype.AlignUp(offset, align)
		offsets[it.index] = offset
		offset += it.t.SizeInBits()
		if align > maxAlign {
			maxAlign = align
		}
	}
	stride := physicaltype.RowStride(offset, maxAlign)

	dl := &DataLayout{}
	row := dl.AddINode(1, stride)
	for _, it := range sorted {
		row.AddLeaf(it.t, it.index, offsets[it.index], 0)
	}
	if err := dl.Validate(); err != nil {
		return nil, err
	}
	o.log().Debug("optimized row layout", "attributes", k, "stride_bits", stride)
	return dl, nil
}
