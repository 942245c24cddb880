// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package serializer - binary packing of contract records
//
// Layout of the packed form:
//
//   fixed width integers  - little endian, natural width
//   bool                  - one byte 0x00 or 0x01
//   Uint128               - low 64 bits then high 64 bits, little endian
//   Uint256               - low 128 bits then high 128 bits
//   name                  - uint64
//   bytes / string        - varint length ++ data
//
// The varint is util.Varint64 which for the lengths used here is the
// same as a LEB128 varuint32.
package serializer
