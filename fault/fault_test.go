// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/zree/fault"
)

var (
	ErrEmptyOne    = fault.EmptyError("empty one")
	ErrEmptyTwo    = fault.EmptyError("empty two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		empty    bool
		invalid  bool
		notFound bool
	}{
		{ErrEmptyOne, true, false, false},
		{ErrEmptyTwo, true, false, false},
		{ErrInvalidOne, false, true, false},
		{ErrInvalidTwo, false, true, false},
		{ErrNotFoundOne, false, false, true},
		{ErrNotFoundTwo, false, false, true},
		{fault.ErrEmptyCollection, true, false, false},
		{fault.ErrKeyNotFound, false, false, true},
		{fault.ErrNoSuccessor, false, true, false},
		{fault.ErrNoPredecessor, false, true, false},
		{fault.ErrNotFoundConfigFile, false, false, true},
		{fault.GenericError("generic"), false, false, false},
		{fmt.Errorf("%w: key: 3", fault.ErrInvalidStructure), false, true, false},
		{fmt.Errorf("outer: %w", fmt.Errorf("%w: 7", fault.ErrKeyNotFound)), false, false, true},
		{fmt.Errorf("%w", fault.ErrEmptyCollection), true, false, false},
		{fmt.Errorf("not wrapped: %v", fault.ErrInvalidKey), false, false, false},
		{nil, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrEmpty(err) != e.empty {
			t.Errorf("%d: expected 'empty' == %v for err = %v", i, e.empty, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
	}
}

func TestMessages(t *testing.T) {
	if s := fault.ErrNoSuccessor.Error(); "there is no successor to pluck" != s {
		t.Errorf("successor message: %q", s)
	}
	if s := fault.ErrNoPredecessor.Error(); "there is no predecessor to pluck" != s {
		t.Errorf("predecessor message: %q", s)
	}
}
