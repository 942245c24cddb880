// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for the abort messages
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("abort")
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Check - abort the current invocation when condition is false
func Check(condition bool, message string) {
	if condition {
		return
	}
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) check failed: %s", file, line, message)
	} else {
		internalCriticalf("check failed: %s", message)
	}
	panic(AbortError(message))
}

// Abortf - abort the current invocation with a formatted message
func Abortf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) abort: %s", file, line, message)
	} else {
		internalCriticalf("abort: %s", message)
	}
	panic(AbortError(message))
}

// AbortIfError - abort with an error that is already classified
func AbortIfError(message string, err error) {
	if nil == err {
		return
	}
	Abortf("%s: %s", message, err)
}

// Recovered - convert a recovered panic value into an error
//
// returns nil, false if the value was not raised by an abort
func Recovered(r interface{}) (error, bool) {
	if e, ok := r.(AbortError); ok {
		return e, true
	}
	return nil, false
}

// internal routine to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		return
	}
	log.Criticalf(format, arguments...)
}
