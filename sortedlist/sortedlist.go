// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sortedlist

import (
	"cmp"
	"io"
	"iter"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/zree/avl"
)

// SortedList - multiset of keys kept in ascending order
type SortedList[K cmp.Ordered] struct {
	tree *avl.Tree[K]
}

// New - create a list holding the given keys
func New[K cmp.Ordered](keys ...K) *SortedList[K] {
	sl := &SortedList[K]{
		tree: avl.New[K](),
	}
	for _, key := range keys {
		sl.tree.Insert(key)
	}
	return sl
}

// FromSeq - create a list from all the keys of a sequence
func FromSeq[K cmp.Ordered](seq iter.Seq[K]) *SortedList[K] {
	sl := New[K]()
	for key := range seq {
		sl.tree.Insert(key)
	}
	return sl
}

// SetLog - trace the underlying tree operations on a logger channel
func (sl *SortedList[K]) SetLog(log *logger.L) *SortedList[K] {
	sl.tree.SetLog(log)
	return sl
}

// Add - insert one more occurrence of key
func (sl *SortedList[K]) Add(key K) *SortedList[K] {
	sl.tree.Insert(key)
	return sl
}

// Remove - delete one occurrence of key
//
// returns fault.ErrKeyNotFound if key is not present
func (sl *SortedList[K]) Remove(key K) error {
	return sl.tree.Delete(key)
}

// Contains - true if key is present
func (sl *SortedList[K]) Contains(key K) bool {
	return sl.tree.Contains(key)
}

// Minimum - lowest key or fault.ErrEmptyCollection
func (sl *SortedList[K]) Minimum() (K, error) {
	return sl.tree.Minimum()
}

// Maximum - highest key or fault.ErrEmptyCollection
func (sl *SortedList[K]) Maximum() (K, error) {
	return sl.tree.Maximum()
}

// Len - number of keys including duplicates
func (sl *SortedList[K]) Len() int {
	return sl.tree.Count()
}

// All - keys in ascending order
func (sl *SortedList[K]) All() iter.Seq[K] {
	return sl.tree.All()
}

// Backward - keys in descending order
func (sl *SortedList[K]) Backward() iter.Seq[K] {
	return sl.tree.Backward()
}

// Iterator - explicit ascending cursor
func (sl *SortedList[K]) Iterator() *avl.Iterator[K] {
	return sl.tree.Iterator()
}

// Equal - true if both lists hold the same keys with the same number
// of occurrences, whatever the shape of the trees
func (sl *SortedList[K]) Equal(other *SortedList[K]) bool {
	if nil == other {
		return false
	}
	if sl == other {
		return true
	}
	if sl.Len() != other.Len() {
		return false
	}

	it := other.tree.Iterator()
	for key := range sl.tree.All() {
		k, ok := it.Next()
		if !ok || 0 != cmp.Compare(key, k) {
			return false
		}
	}
	_, more := it.Next()
	return !more
}

// Height - height of the underlying tree, zero when empty
func (sl *SortedList[K]) Height() int {
	return sl.tree.Height()
}

// Widths - number of keys at each depth of the underlying tree
func (sl *SortedList[K]) Widths() []int {
	return sl.tree.Widths()
}

// Check - verify the ordering and balance of the underlying tree
func (sl *SortedList[K]) Check() error {
	return sl.tree.Check()
}

// String - pre-order dump of the tree
func (sl *SortedList[K]) String() string {
	return sl.tree.String()
}

// Outline - indented outline of the tree
func (sl *SortedList[K]) Outline() string {
	return sl.tree.Outline()
}

// Print - ASCII graphic of the tree, returns its depth
func (sl *SortedList[K]) Print(w io.Writer) int {
	return sl.tree.Print(w)
}
