/*
 * errors.go, part of gochem.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	"fmt"

	"go.uber.org/zap"
)

// CError is the error type of the package. It carries the list of functions
// it passed through, and it may wrap a lower-level error (usually from io).
type CError struct {
	msg      string
	deco     []string
	critical bool
	err      error
}

// NewError returns a CError with the given message, wrapping err, which can be nil.
func NewError(msg string, critical bool, err error, deco ...string) *CError {
	return &CError{msg: msg, deco: deco, critical: critical, err: err}
}

func (err *CError) Error() string {
	if err.err != nil {
		return fmt.Sprintf("%s: %s", err.msg, err.err.Error())
	}
	return err.msg
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored.
func (err *CError) Critical() bool { return err.critical }

// Unwrap returns the wrapped error, if any.
func (err *CError) Unwrap() error { return err.err }

// errDecorate is a helper function that, if err is
// a chem.Error, decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return NewError(caller, true, err, caller)
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrAtomOutOfRange    = PanicMsg("goChem: Requested/put atom out of range")
	ErrResidueOutOfRange = PanicMsg("goChem: Requested residue out of range")
)

// LoggerOrNop returns lg, or a no-op logger if lg is nil.
func LoggerOrNop(lg *zap.Logger) *zap.Logger {
	if lg == nil {
		return zap.NewNop()
	}
	return lg
}
