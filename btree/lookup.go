package btree

import "cmp"

// Find returns an iterator at the first occurrence of key, or the done
// iterator if key is absent. Among duplicate keys this is the leftmost
// one, matching EqualRange's lower bound.
func (t *Tree[K, V]) Find(key K) Iterator[K, V] {
	it := t.lowerBound(key)
	if it.Done() || it.Key() != key {
		return Iterator[K, V]{}
	}
	return it
}

// FindRange returns the half-open [first, last) iterator pair spanning
// every key k with lo <= k < hi: first is the lower bound of lo, last is
// the first position at or after first whose key is >= hi (or the done
// iterator). If first is already done or its key is >= hi, the range is
// empty and first == last.
func (t *Tree[K, V]) FindRange(lo, hi K) (first, last Iterator[K, V]) {
	first = t.lowerBound(lo)
	last = first
	for !last.Done() && last.Key() < hi {
		last = last.Next()
	}
	if first.Done() || first.Key() >= hi {
		first = last
	}
	return first, last
}

// EqualRange returns the [first, last) iterator pair spanning every
// occurrence of key, in bulkload-insertion order within the run. Both
// iterators are done when key is absent, and first == last in that case.
func (t *Tree[K, V]) EqualRange(key K) (first, last Iterator[K, V]) {
	first = t.lowerBound(key)
	if first.Done() || first.Key() != key {
		return Iterator[K, V]{}, Iterator[K, V]{}
	}
	last = first
	for !last.Done() && last.Key() == key {
		last = last.Next()
	}
	return first, last
}

// lowerBound returns an iterator at the first key >= target, or the done
// iterator if every key in the tree is less than target.
func (t *Tree[K, V]) lowerBound(target K) Iterator[K, V] {
	if t.size == 0 {
		return Iterator[K, V]{}
	}
	leaf := t.descendToLeaf(target)
	idx := lowerBoundInLeaf(leaf.keys, target)
	for idx == len(leaf.keys) {
		if leaf.next == nil {
			return Iterator[K, V]{}
		}
		leaf = leaf.next
		idx = lowerBoundInLeaf(leaf.keys, target)
	}
	return Iterator[K, V]{leaf: leaf, idx: idx}
}

// lowerBoundInLeaf returns the index of the first key >= target within a
// single leaf's sorted key slice, via binary search.
func lowerBoundInLeaf[K cmp.Ordered](keys []K, target K) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if keys[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
