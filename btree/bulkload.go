package btree

import (
	"cmp"
	"slices"

	"github.com/flier/goutil/pkg/xiter"

	"code.tczkiot.com/wlw/dbcore/dbcoreerr"
)

// Pair is a single bulkload input element.
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Bulkload builds a fully packed B+-tree, bottom-up, from pairs. Keys must
// be non-decreasing; equal keys are kept in their input (insertion) order.
// An unsorted input is reported as a *dbcoreerr.Error rather than left as
// undefined behavior — cheaper to check than to debug.
//
// Builds leaves first by streaming pairs in, then repeatedly groups
// consecutive runs of fanout_inode+1 nodes into parents until one node
// remains, generalized from a fixed int64 key/disk-offset value to
// arbitrary ordered Key/Value types with no backing file.
func Bulkload[K cmp.Ordered, V any](pairs []Pair[K, V], geom Geometry) (*Tree[K, V], error) {
	sorted := xiter.IsSortedByKey(slices.Values(pairs), func(p Pair[K, V]) K { return p.Key })
	if !sorted {
		return nil, dbcoreerr.Newf(dbcoreerr.ErrCodeUnsortedInput, "bulkload input is not sorted by key")
	}

	if len(pairs) == 0 {
		empty := &leafNode[K, V]{}
		return &Tree[K, V]{
			root: empty, size: 0, height: 0,
			firstLeaf: empty, lastLeaf: empty, lastKeyIdx: 0,
			geom: geom,
		}, nil
	}

	var leaves []*leafNode[K, V]
	var cur *leafNode[K, V]
	for _, p := range pairs {
		if cur == nil || len(cur.keys) >= geom.FanoutLeaf {
			next := &leafNode[K, V]{}
			if cur != nil {
				cur.next = next
			}
			leaves = append(leaves, next)
			cur = next
		}
		cur.keys = append(cur.keys, p.Key)
		cur.values = append(cur.values, p.Value)
	}
	firstLeaf, lastLeaf := leaves[0], leaves[len(leaves)-1]

	level := make([]node[K, V], len(leaves))
	for i, l := range leaves {
		level[i] = l
	}

	height := 0
	for len(level) > 1 {
		height++
		level = buildLevel(level, geom.FanoutInode)
	}

	return &Tree[K, V]{
		root:       level[0],
		size:       len(pairs),
		height:     height,
		firstLeaf:  firstLeaf,
		lastLeaf:   lastLeaf,
		lastKeyIdx: len(lastLeaf.keys) - 1,
		geom:       geom,
	}, nil
}

// buildLevel groups children into consecutive runs of at most
// groupSize (fanoutInode+1) nodes and builds one parent INode per run,
// computing separator keys as the max key of every child but the last. If
// the final run would hold only one node, one node is moved over from the
// previous (full) run instead of concatenating the two runs outright,
// since a straight merge could push the previous run's child count past
// fanoutInode+1; stealing one node keeps every INode within
// [2, fanoutInode+1] children.
func buildLevel[K cmp.Ordered, V any](level []node[K, V], fanoutInode int) []node[K, V] {
	groupSize := fanoutInode + 1
	var groups [][]node[K, V]
	for i := 0; i < len(level); i += groupSize {
		end := min(i+groupSize, len(level))
		groups = append(groups, append([]node[K, V]{}, level[i:end]...))
	}
	if len(groups) >= 2 && len(groups[len(groups)-1]) < 2 {
		prev := groups[len(groups)-2]
		last := groups[len(groups)-1]
		stolen := prev[len(prev)-1]
		groups[len(groups)-2] = prev[:len(prev)-1]
		groups[len(groups)-1] = append([]node[K, V]{stolen}, last...)
	}

	parents := make([]node[K, V], 0, len(groups))
	for _, group := range groups {
		parent := &inodeNode[K, V]{children: append([]node[K, V]{}, group...)}
		for j := 0; j < len(group)-1; j++ {
			parent.seps = append(parent.seps, maxKey(group[j]))
		}
		parents = append(parents, parent)
	}
	return parents
}
