// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/zree/avl"
	"github.com/bitmark-inc/zree/fault"
)

func keys[K int | string](tree *avl.Tree[K]) []K {
	result := []K{}
	for key := range tree.All() {
		result = append(result, key)
	}
	return result
}

func sameKeys[K int | string](a []K, b []K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPluckSuccessor(t *testing.T) {
	small := build(5, 0, 10, 3, 7)

	key, err := small.PluckSuccessor()
	if nil != err {
		t.Fatalf("pluck error: %s", err)
	}
	if 7 != key || 7 != small.Root().Key() {
		t.Fatalf("plucked: %d  root: %d  expected: 7", key, small.Root().Key())
	}
	if 4 != small.Count() {
		t.Fatalf("count: %d  expected: 4", small.Count())
	}
	if !small.Equal(build(7, 0, 10, 3)) {
		t.Fatalf("shape after pluck:\n%s", small)
	}
	checkTree(t, small, "pluck")

	// root 7 loses its only right node and the left side is rotated up
	small2 := build(7, 0, 10, 3)
	if key, err := small2.PluckSuccessor(); nil != err || 10 != key {
		t.Fatalf("plucked: %d  error: %v", key, err)
	}
	if !small2.Equal(build(3, 0, 10)) {
		t.Fatalf("shape after second pluck:\n%s", small2)
	}

	if key, err := small2.PluckSuccessor(); nil != err || 10 != key {
		t.Fatalf("plucked: %d  error: %v", key, err)
	}
	if 10 != small2.Root().Key() || nil != small2.Root().Right() {
		t.Fatalf("expected 10 on top with no successor:\n%s", small2)
	}

	_, err = small2.PluckSuccessor()
	if fault.ErrNoSuccessor != err {
		t.Fatalf("pluck without successor: %v", err)
	}
	if !strings.Contains(err.Error(), "no successor to pluck") {
		t.Fatalf("error message: %q", err)
	}
	if !small2.Equal(build(10, 0)) || 2 != small2.Count() {
		t.Fatalf("failed pluck modified the tree:\n%s", small2)
	}
}

func TestPluckSuccessorLarge(t *testing.T) {
	bigger := avl.New[int]()
	for i := 0; i < 100; i += 1 {
		bigger.Insert(i)
	}
	bigger2 := avl.New[int]()
	for i := 0; i < 100; i += 1 {
		if 63 != i {
			bigger2.Insert(i)
		}
	}
	if 63 != bigger.Root().Key() {
		t.Fatalf("root: %d  expected: 63", bigger.Root().Key())
	}

	key, err := bigger.PluckSuccessor()
	if nil != err || 64 != key {
		t.Fatalf("plucked: %d  error: %v", key, err)
	}
	checkTree(t, bigger, "large pluck")

	r1 := bigger.Root()
	r2 := bigger2.Root()
	if r1.Key() != r2.Key() || r1.Height() != r2.Height() {
		t.Fatalf("root: %d[%d]  expected: %d[%d]", r1.Key(), r1.Height(), r2.Key(), r2.Height())
	}

	// 63 has gone, which is the only value missing from bigger2
	if !sameKeys(keys(bigger), keys(bigger2)) {
		t.Fatalf("keys differ:\n%v\n%v", keys(bigger), keys(bigger2))
	}
}

func TestPluckPredecessor(t *testing.T) {
	small := build(5, 0, 10, 3, 7)

	key, err := small.PluckPredecessor()
	if nil != err || 3 != key {
		t.Fatalf("plucked: %d  error: %v", key, err)
	}
	if !small.Equal(build(3, 0, 10, 7)) {
		t.Fatalf("shape after pluck:\n%s", small)
	}

	// root loses its left side and becomes right heavy: RL case
	small2 := build(3, 0, 10, 7)
	if key, err := small2.PluckPredecessor(); nil != err || 0 != key {
		t.Fatalf("plucked: %d  error: %v", key, err)
	}
	if !small2.Equal(build(7, 0, 10)) {
		t.Fatalf("shape after second pluck:\n%s", small2)
	}

	if key, err := small2.PluckPredecessor(); nil != err || 0 != key {
		t.Fatalf("plucked: %d  error: %v", key, err)
	}
	if 0 != small2.Root().Key() || nil != small2.Root().Left() {
		t.Fatalf("expected 0 on top with no predecessor:\n%s", small2)
	}

	_, err = small2.PluckPredecessor()
	if fault.ErrNoPredecessor != err {
		t.Fatalf("pluck without predecessor: %v", err)
	}
	if !strings.Contains(err.Error(), "no predecessor to pluck") {
		t.Fatalf("error message: %q", err)
	}
}

// pluck until the root holds the lowest key
func TestPluckPredecessorRepeated(t *testing.T) {
	bigger := avl.New[int]()
	for i := 0; i < 100; i += 1 {
		bigger.Insert(i)
	}

	plucks := 0
	for {
		root := bigger.Root().Key()
		expected := -1
		for key := range bigger.All() {
			if key < root {
				expected = key
			}
		}
		if -1 == expected {
			break
		}

		key, err := bigger.PluckPredecessor()
		if nil != err {
			t.Fatalf("%d: pluck error: %s", plucks, err)
		}
		if expected != key {
			t.Fatalf("%d: plucked: %d  expected: %d", plucks, key, expected)
		}
		plucks += 1
		if 100-plucks != bigger.Count() {
			t.Fatalf("%d: count: %d", plucks, bigger.Count())
		}
		checkTree(t, bigger, "repeated pluck")
	}

	if plucks < 90 {
		t.Errorf("only: %d plucks", plucks)
	}
	if _, err := bigger.PluckPredecessor(); fault.ErrNoPredecessor != err {
		t.Fatalf("final pluck: %v", err)
	}
}

func TestPluckAsRootErrors(t *testing.T) {
	tree := avl.New[int]()
	if _, top, err := tree.PluckSuccessorAsRoot(tree.Root()); fault.ErrNoSuccessor != err || nil != top {
		t.Fatalf("nil node: %v  %v", top, err)
	}

	tree.Insert(1)
	leaf := tree.Root()
	if _, top, err := tree.PluckPredecessorAsRoot(leaf); fault.ErrNoPredecessor != err || leaf != top {
		t.Fatalf("leaf: %v  %v", top, err)
	}
	if _, err := tree.PluckSuccessor(); fault.ErrNoSuccessor != err {
		t.Fatalf("leaf: %v", err)
	}
	if 1 != tree.Count() || leaf != tree.Root() {
		t.Fatal("failed pluck changed the tree")
	}
}

func TestPrint(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7, 8)

	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer)
	if 4 != depth {
		t.Fatalf("depth: %d  expected: 4", depth)
	}
	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	if 8 != len(lines) {
		t.Fatalf("lines: %d\n%s", len(lines), buffer)
	}
	// highest key is printed first
	if !strings.Contains(lines[0], "8 +0/0 [1]") {
		t.Fatalf("first line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[4], "|------+ 4 ") {
		t.Fatalf("root line: %q", lines[4])
	}

	if 0 != avl.New[int]().Print(buffer) {
		t.Fatal("empty tree has depth")
	}
	if "empty tree" != avl.New[string]().String() {
		t.Fatal("empty tree dump")
	}
}

func TestOutline(t *testing.T) {
	tree := build(5, 0, 10, 3, 7)
	s := tree.Outline()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if 5 != len(lines) {
		t.Fatalf("outline lines: %d  expected: 5\n%s", len(lines), s)
	}
	if "5 [ht=2]" != lines[0] {
		t.Fatalf("outline root: %q", lines[0])
	}
	expected := []string{"L 0 [ht=1]", "R 3 [ht=0]", "R 10 [ht=1]", "L 7 [ht=0]"}
	for i, e := range expected {
		if !strings.HasSuffix(lines[i+1], e) {
			t.Fatalf("outline line: %d  %q  expected suffix: %q", i+1, lines[i+1], e)
		}
	}

	if "empty tree\n" != avl.New[int]().Outline() {
		t.Fatalf("empty outline: %q", avl.New[int]().Outline())
	}
}
