// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding an ordered multiset of
// keys without parent pointers
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Do not modify a tree while an iterator over it is
//       still in use.
//
// Each node caches its own height (a leaf is zero and a missing
// child counts as -1) and the number of nodes in its sub-tree.  Every
// structural change recomputes these bottom-up and rebalances with
// the classic single and double rotations so that the heights of the
// two children of any node never differ by more than one.
//
// Keys equal to an existing key are inserted to its right.  Deletion
// records the path from the root to the target instead of following
// up pointers and walks that path backwards to rebalance.  A node
// with two children is removed by plucking its in-order predecessor
// or successor into its place, the same primitive that is available
// directly as PluckPredecessor and PluckSuccessor.
package avl
