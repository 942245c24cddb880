// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// AbortError is the one class that is not returned: it is raised by
// Check/Abortf as a panic and unwinds the whole contract invocation
// until storage.Database.Invoke recovers it.
package fault
