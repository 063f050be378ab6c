// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors are
// grouped into classes (exists, invalid, invariant, not found and
// process) and the IsErrXXX functions test for a class even when an
// instance has been wrapped with extra detail using fmt.Errorf("%w").
//
// Also holds a last-chance logger channel for critical messages and
// panics.
package fault
