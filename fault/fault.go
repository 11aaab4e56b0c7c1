// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InsufficientError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCanOnlyRenounceForSelf       = PermissionError("can only renounce roles for self")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrEmptyNamespace               = InvalidError("namespace is empty")
	ErrExpiredCredential            = InvalidError("credential timestamp is outside the accepted window")
	ErrInsufficientBalance          = InsufficientError("insufficient balance")
	ErrInvalidConfiguration         = InvalidError("configuration must return a table")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidHexData               = InvalidError("data is not 0x prefixed hex")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidPrivateKeyFile        = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile         = InvalidError("invalid public key file")
	ErrInvalidSignature             = PermissionError("invalid signature")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrLengthMismatch               = InvalidError("ids and amounts length mismatch")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNonexistentToken             = NotFoundError("this token is not existent")
	ErrNotAddress                   = InvalidError("not an account address")
	ErrNotDeployed                  = NotFoundError("no logic module is deployed")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotWord                      = InvalidError("not a 256 bit value")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrReplayedRequest              = ExistsError("request was already accepted")
	ErrRequiredCaller               = InvalidError("caller is required")
	ErrSelfApproval                 = InvalidError("setting approval status for self")
	ErrTransactionInUse             = ProcessError("storage transaction already in use")
	ErrUnauthorised                 = PermissionError("caller is not authorised")
	ErrUnknownEvent                 = NotFoundError("unknown event name")
	ErrUnknownLogicModule           = NotFoundError("logic module is not registered")
	ErrValueOverflow                = InvalidError("value overflows 256 bits")
	ErrValueUnderflow               = InvalidError("value underflows zero")
	ErrZeroAddress                  = InvalidError("zero account is not allowed")
	ErrZeroAmount                   = InvalidError("amount must be greater than zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InsufficientError) Error() string { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e PermissionError) Error() string   { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInsufficient(e error) bool { _, ok := e.(InsufficientError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool   { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
