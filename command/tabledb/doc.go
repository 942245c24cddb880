// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// tabledb - inspect a contract table database
//
// the database named by the configuration file is opened read-only
// and its tables, rows, secondary index entries and payer usage are
// printed as JSON.  "check" verifies the whole database.
package main
