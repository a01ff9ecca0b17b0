package layout

import (
	"code.tczkiot.com/wlw/dbcore/dbcoreerr"
	"code.tczkiot.com/wlw/dbcore/physicaltype"
)

// PAX lays out attributes as a hybrid row/column block: attributes are
// reordered by descending alignment (ties keep declaration order) and each
// becomes a contiguous column of N tuples, where
// N = floor(block_bits / bits_per_tuple). The NULL bitmap gets its own
// column; like every column, its stride is its size (k bits for k
// attributes, so 1 bit for a single attribute). Like NaiveRow and OptimizedRow, numTuples is
// accepted for interface parity but ignored: PAX always derives its own
// tuple count from the block size,
//
// Open question: when block_bits/bits_per_tuple isn't an
// integer, the coursework's own reference test data accepts two adjacent
// roundings of N. This implementation always floors, which is the only
// rounding consistent with the PAX density invariant
// (N*bits_per_tuple <= block_bits); ceiling would violate it.
func PAX(types []physicaltype.PhysicalType, numTuples uint64, opts ...Option) (*DataLayout, error) {
	o := newOptions(opts)
	if len(types) == 0 {
		return nil, dbcoreerr.New(dbcoreerr.ErrCodeEmptyTypeList, nil)
	}

	blockBits := o.PAXBlockBits
	if blockBits == 0 {
		blockBits = defaultPAXBlockBits
	}

	k := len(types)
	all := make([]physicaltype.PhysicalType, 0, k+1)
	all = append(all, types...)
	all = append(all, physicaltype.Bitmap(uint64(k)))

	var bitsPerTuple uint64
	for _, t := range all {
		if t.AlignmentInBits() == 0 {
			return nil, dbcoreerr.New(dbcoreerr.ErrCodeZeroAlignment, nil)
		}
		bitsPerTuple += t.SizeInBits()
	}

	n := blockBits / bitsPerTuple
	if n < 1 {
		return nil, dbcoreerr.New(dbcoreerr.ErrCodeBlockTooSmall, nil)
	}

	sorted := sortByDescendingAlignment(all)

	dl := &DataLayout{}
	root := dl.AddINode(n, blockBits)

	var columnBase uint64
	offsets := make([]uint64, len(all))
	strides := make([]uint64, len(all))
	for _, it := range sorted {
		offsets[it.index] = columnBase
		strides[it.index] = it.t.SizeInBits()
		columnBase += it.t.SizeInBits() * n
	}
	for _, it := range sorted {
		root.AddLeaf(it.t, it.index, offsets[it.index], strides[it.index])
	}

	if err := dl.Validate(); err != nil {
		return nil, err
	}
	o.log().Debug("pax layout", "attributes", k, "num_tuples", n, "block_bits", blockBits)
	return dl, nil
}
