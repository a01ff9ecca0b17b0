package layout

import (
	"code.tczkiot.com/wlw/dbcore/dbcoreerr"
	"code.tczkiot.com/wlw/dbcore/physicaltype"
)

// NaiveRow emits attributes in declared order, padding each to its type's
// alignment, followed by the synthesized NULL bitmap. numTuples is accepted
// for interface parity with OptimizedRow and PAX but is not used: a row
// template always repeats num_tuples=1 inside its own INode, since one row
// is the unit being laid out, not a block of many.
func NaiveRow(types []physicaltype.PhysicalType, numTuples uint64, opts ...Option) (*DataLayout, error) {
	o := newOptions(opts)
	if len(types) == 0 {
		return nil, dbcoreerr.New(dbcoreerr.ErrCodeEmptyTypeList, nil)
	}

	k := len(types)
	all := make([]physicaltype.PhysicalType, 0, k+1)
	all = append(all, types...)
	all = append(all, physicaltype.Bitmap(uint64(k)))

	offsets := make([]uint64, len(all))
	var offset, maxAlign uint64
	for i, t := range all {
		align := t.AlignmentInBits()
		if align == 0 {
			return nil, dbcoreerr.New(dbcoreerr.ErrCodeZeroAlignment, nil)
		}
		offset = physicaltype.AlignUp(offset, align)
		offsets[i] = offset
		offset += t.SizeInBits()
		if align > maxAlign {
			maxAlign = align
		}
	}
	stride := physicaltype.RowStride(offset, maxAlign)

	dl := &DataLayout{}
	row := dl.AddINode(1, stride)
	for i, t := range all {
		row.AddLeaf(t, i, offsets[i], 0)
	}
	if err := dl.Validate(); err != nil {
		return nil, err
	}
	o.log().Debug("naive row layout", "attributes", k, "stride_bits", stride)
	return dl, nil
}
