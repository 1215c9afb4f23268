// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/bitmark-inc/logger"
)

// the channel for last gasp messages
var (
	m   sync.Mutex
	log *logger.L
)

// Initialise - setup a log channel for last attempt to log something,
// logger.Initialise must already have been called
func Initialise() error {
	m.Lock()
	defer m.Unlock()
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the channel
func Finalise() error {
	m.Lock()
	defer m.Unlock()
	if nil == log {
		return ErrNotInitialised
	}
	log.Flush()
	log = nil
	return nil
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panicf - log the formatted message then panic with it
func Panicf(format string, arguments ...interface{}) {
	s := criticalf(2, format, arguments...)
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := criticalf(2, "%s failed with error: %v", message, err)
	panic(s)
}

// internal: returns the message without the location prefix
func criticalf(skip int, format string, arguments ...interface{}) string {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(skip); ok {
		write("(%q:%d) %s", file, line, message)
	} else {
		write("%s", message)
	}
	return message
}

// internal routine to handle an uninitialised logger channel
func write(format string, arguments ...interface{}) {
	m.Lock()
	defer m.Unlock()
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
