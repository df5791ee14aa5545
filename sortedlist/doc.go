// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sortedlist - an ordered multiset backed by an AVL tree
//
//	sl := sortedlist.New(5, 0, 10, 3, 7)
//	sl.Add(-4).Add(42)
//	for x := range sl.All() {
//		…
//	}
//
// Add, Remove, Contains, Minimum and Maximum are O(log n), Len is
// O(1) and iteration is O(n).  A list is not thread safe and must not
// be modified while one of its sequences is being ranged over.
package sortedlist
