// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type InvalidError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrEmptyCollection    = EmptyError("empty collection")
	ErrInvalidKey         = InvalidError("key is invalid")
	ErrInvalidKeyType     = InvalidError("key type is invalid")
	ErrInvalidStructure   = InvalidError("tree structure is invalid")
	ErrKeyNotFound        = NotFoundError("key not found")
	ErrMissingKey         = InvalidError("key argument is required")
	ErrNoPredecessor      = InvalidError("there is no predecessor to pluck")
	ErrNoSuccessor        = InvalidError("there is no successor to pluck")
	ErrNotFoundConfigFile = NotFoundError("config file is not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrEmpty(e error) bool    { var t EmptyError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
