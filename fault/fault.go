// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AbortError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCannotDecodeRecord    = RecordError("cannot decode record")
	ErrDatabaseIsReadOnly    = ProcessError("database is read only")
	ErrDuplicatePrimaryKey   = ExistsError("duplicate primary key")
	ErrDuplicateSecondaryKey = ExistsError("duplicate secondary key for primary")
	ErrIncompatibleVersion   = InvalidError("incompatible database version")
	ErrIndexCountMismatch    = RecordError("index entry count does not match row count")
	ErrIndexValueMismatch    = RecordError("index value does not match record")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidIterator       = InvalidError("invalid iterator")
	ErrInvalidName           = InvalidError("invalid name")
	ErrInvalidNameLength     = LengthError("name is longer than 13 characters")
	ErrInvalidSecondaryType  = InvalidError("invalid secondary index type")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvocationIsOver      = ProcessError("invocation is over")
	ErrMissingPrimaryRow     = RecordError("index entry refers to missing primary row")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrRecordNotFound        = NotFoundError("record not found")
	ErrRecordTruncated       = LengthError("record is truncated")
	ErrSecondaryTypeMismatch = InvalidError("secondary value type does not match index")
	ErrTableNotOwned         = ProcessError("table is not owned by the receiver")
	ErrTooManyIndexes        = LengthError("more than 16 secondary indexes")
	ErrUnsupportedIndexType  = InvalidError("unsupported secondary index type")
	ErrUsageMismatch         = RecordError("payer usage does not match stored rows")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AbortError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrAbort(e error) bool    { _, ok := e.(AbortError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
