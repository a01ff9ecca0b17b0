// Package layout synthesizes physical tuple layouts — row, optimized row,
// and PAX — from an ordered list of physicaltype.PhysicalType attributes.
// It builds the host framework's DataLayout tree (one root, one internal
// node, and leaves); factories are stateless, pure functions from
// (types, num_tuples) to a new DataLayout.
package layout

import (
	"code.tczkiot.com/wlw/dbcore/dbcoreerr"
	"code.tczkiot.com/wlw/dbcore/physicaltype"
)

// Leaf names one typed attribute at a fixed offset inside its parent
// INode. SourceIndex is the attribute's ordinal position in the original
// type list (the NULL bitmap is assigned index len(types)).
type Leaf struct {
	Type         physicaltype.PhysicalType
	SourceIndex  int
	OffsetInBits uint64
	// StrideInBits is the distance between repetitions of this leaf
	// within the node; 0 means the leaf is not repeated (row layouts).
	StrideInBits uint64
}

// INode is the single internal node emitted by every factory in this
// package: num_tuples tuples tiled at strideInBits, each holding the leaves
// in Children at their fixed offsets.
type INode struct {
	NumTuples    uint64
	StrideInBits uint64
	Children     []Leaf
}

// AddLeaf appends a leaf to the node and returns it.
func (n *INode) AddLeaf(t physicaltype.PhysicalType, sourceIndex int, offsetInBits, strideInBits uint64) Leaf {
	leaf := Leaf{Type: t, SourceIndex: sourceIndex, OffsetInBits: offsetInBits, StrideInBits: strideInBits}
	n.Children = append(n.Children, leaf)
	return leaf
}

// DataLayout is the root of the layout tree: it holds a single child INode,
// whose StrideInBits is the layout's stride.
type DataLayout struct {
	Root *INode
}

// AddINode creates the layout's single internal node and returns it.
func (d *DataLayout) AddINode(numTuples, strideInBits uint64) *INode {
	n := &INode{NumTuples: numTuples, StrideInBits: strideInBits}
	d.Root = n
	return n
}

// Validate checks the shape invariants a host DataLayout builder would
// enforce: every leaf's offset is aligned to its type, no leaf overruns
// the node's stride, and no source index appears more than once. It does
// not check that every source index 0..k is present.
func (d *DataLayout) Validate() error {
	if d.Root == nil {
		return dbcoreerr.New(dbcoreerr.ErrCodeLayoutShape, nil)
	}
	seen := map[int]bool{}
	for _, leaf := range d.Root.Children {
		align := leaf.Type.AlignmentInBits()
		if align == 0 {
			return dbcoreerr.New(dbcoreerr.ErrCodeZeroAlignment, nil)
		}
		if leaf.OffsetInBits%align != 0 {
			return dbcoreerr.Newf(dbcoreerr.ErrCodeLayoutShape, "leaf %d offset %d not aligned to %d", leaf.SourceIndex, leaf.OffsetInBits, align)
		}
		end := leaf.OffsetInBits + leaf.Type.SizeInBits()
		if leaf.StrideInBits != 0 {
			// tiled leaf (PAX column): the whole column of NumTuples
			// repetitions must fit within the node.
			end = leaf.OffsetInBits + leaf.StrideInBits*d.Root.NumTuples
		}
		if end > d.Root.StrideInBits {
			return dbcoreerr.Newf(dbcoreerr.ErrCodeLayoutShape, "leaf %d end %d exceeds node stride %d", leaf.SourceIndex, end, d.Root.StrideInBits)
		}
		if seen[leaf.SourceIndex] {
			return dbcoreerr.Newf(dbcoreerr.ErrCodeLayoutShape, "duplicate source index %d", leaf.SourceIndex)
		}
		seen[leaf.SourceIndex] = true
	}
	return nil
}
