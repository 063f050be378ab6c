// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bitmark-inc/avlmap/fault"
)

var (
	ErrExistsOne    = fault.ExistsError("exists one ")
	ErrExistsTwo    = fault.ExistsError("exists two")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrInvalidTwo   = fault.InvalidError("invalid two")
	ErrInvariantOne = fault.InvariantError("invariant one")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrNotFoundTwo  = fault.NotFoundError("not found two")
	ErrProcessOne   = fault.ProcessError("process one")
	ErrProcessTwo   = fault.ProcessError("process two")
)

// test that the various classes are distinguished, also when wrapped
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		exists    bool
		invalid   bool
		invariant bool
		notFound  bool
		process   bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrInvariantOne, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fault.ErrNilKey, false, true, false, false, false},
		{fault.ErrHeight, false, false, true, false, false},
		{fmt.Errorf("%w: key: 42", fault.ErrBalance), false, false, true, false, false},
		{fmt.Errorf("load: %w", fault.ErrNotFoundDatabase), false, false, false, true, false},
		{errors.New("plain"), false, false, false, false, false},
		{nil, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrInvariant(err) != e.invariant {
			t.Errorf("%d: expected 'invariant' == %v for err = %v", i, e.invariant, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// wrapped errors still match their single instance
func TestWrappedIdentity(t *testing.T) {
	err := fmt.Errorf("%w: key: %v", fault.ErrKeyOrder, "abc")
	if !errors.Is(err, fault.ErrKeyOrder) {
		t.Errorf("wrapped error: %v does not match: %v", err, fault.ErrKeyOrder)
	}
	if errors.Is(err, fault.ErrHeight) {
		t.Errorf("wrapped error: %v matches: %v", err, fault.ErrHeight)
	}
}

func TestPanicIfError(t *testing.T) {
	fault.PanicIfError("no error", nil)

	defer func() {
		r := recover()
		if nil == r {
			t.Fatal("expected a panic")
		}
		expected := "some action failed with error: invalid one"
		if r != expected {
			t.Errorf("panic value: %q  expected: %q", r, expected)
		}
	}()
	fault.PanicIfError("some action", ErrInvalidOne)
}

func TestPanicf(t *testing.T) {
	defer func() {
		r := recover()
		expected := "bad count: 3"
		if r != expected {
			t.Errorf("panic value: %q  expected: %q", r, expected)
		}
	}()
	fault.Panicf("bad count: %d", 3)
}
