// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// hello - run actions of the hello contract against a table database
//
// each write action is one invocation: it is committed when it
// succeeds and leaves the database untouched when it fails.
package main
