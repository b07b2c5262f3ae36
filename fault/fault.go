// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrDuplicateKey           = ExistsError("duplicate key")
	ErrInvalidConfiguration   = InvalidError("configuration did not return a table")
	ErrInvalidKey             = InvalidError("invalid key")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidTraversalOrder  = InvalidError("invalid traversal order")
	ErrInvalidTreeKind        = InvalidError("invalid tree kind")
	ErrKeyNotFound            = NotFoundError("key not found")
	ErrMissingKeys            = InvalidError("missing keys")
	ErrNotAscending           = InvalidError("keys are not strictly ascending")
	ErrNotFoundConfigFile     = NotFoundError("configuration file is not found")
	ErrRotationWithoutPivot   = ProcessError("rotation without pivot child")
	ErrTooManyConfigFiles     = InvalidError("too many configuration files")
	ErrUnbalancedTree         = ProcessError("tree is not balanced")
	ErrUnorderedTree          = ProcessError("tree is not ordered")
	ErrUnsupportedTreeCommand = InvalidError("unsupported command")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
