// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package numeric - fixed width unsigned integers wider than 64 bits
//
// Uint128 and Uint256 are the key types of the 128 and 256 bit
// secondary indexes.  Both compare in natural unsigned order and
// have a big endian byte form so that byte-wise key ordering in the
// database equals numeric ordering.
//
// Float128 is an opaque 16 byte quad precision value, carried only so
// that the reserved floating index type can be represented.
package numeric
