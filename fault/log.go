// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log file to be written before a panic
const panicDelay = 100 * time.Millisecond

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("fault")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Criticalf - log a formatted string prefixed with the location of the caller
func Criticalf(format string, arguments ...interface{}) {
	critical(where(2) + fmt.Sprintf(format, arguments...))
}

// Panicf - log a formatted message then abort
func Panicf(format string, arguments ...interface{}) {
	message := where(2) + fmt.Sprintf(format, arguments...)
	critical(message)
	time.Sleep(panicDelay)
	panic(message)
}

// PanicIfError - abort if the error is not nil
//
// used where storage or socket failures leave the state undefined
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s%s failed with error: %v", where(2), message, err)
	critical(s)
	time.Sleep(panicDelay)
	panic(s)
}

func where(skip int) string {
	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("(%q:%d) ", file, line)
	}
	return ""
}

// handle the case of an uninitialised logger channel
func critical(message string) {
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
}
