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
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalance              = InvariantError("sub-tree heights differ by more than one")
	ErrConfigNotTable       = InvalidError("configuration must return a table")
	ErrCount                = InvariantError("node count does not match tree count")
	ErrHeight               = InvariantError("stored height does not match sub-trees")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidPercentage    = InvalidError("percentage must be in the range 0 to 100")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOrder             = InvariantError("keys are out of order")
	ErrNilComparator        = InvalidError("comparison function is required")
	ErrNilKey               = InvalidError("key is required")
	ErrNotADirectory        = InvalidError("path is not a directory")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundDatabase     = NotFoundError("database is not found")
	ErrOrderMismatch        = ProcessError("tree order differs from source order")
	ErrParentLink           = InvariantError("parent link is inconsistent")
	ErrRequiredConfigFile   = InvalidError("config file is required")
	ErrRequiredDatabase     = InvalidError("database is required")
	ErrTooHigh              = InvariantError("tree height exceeds the AVL bound")
	ErrUnknownCommand       = InvalidError("unknown command")
	ErrWorkloadMismatch     = ProcessError("tree result differs from reference model")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool {
	var t ExistsError
	return errors.As(e, &t)
}

func IsErrInvalid(e error) bool {
	var t InvalidError
	return errors.As(e, &t)
}

func IsErrInvariant(e error) bool {
	var t InvariantError
	return errors.As(e, &t)
}

func IsErrNotFound(e error) bool {
	var t NotFoundError
	return errors.As(e, &t)
}

func IsErrProcess(e error) bool {
	var t ProcessError
	return errors.As(e, &t)
}
