/*
 * errors.go, part of molset.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package molset

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrNotFound               = errors.New("structure not found")
	ErrIndexOutOfRange        = errors.New("database index out of range")
	ErrNoSites                = errors.New("no atom has coordinates")
	ErrAtomNotFound           = errors.New("atom not in record")
	ErrInsufficientStructures = errors.New("insufficient eligible structures")
	ErrBadCount               = errors.New("invalid structure count")
)

//Error is the error type returned by molset operations. It carries a message,
//the wrapped cause, and a decoration slice listing the functions the error
//went through.
type Error struct {
	message  string
	deco     []string
	critical bool
	err      error
}

func newError(err error, critical bool, message string, deco ...string) *Error {
	return &Error{message: message, deco: deco, critical: critical, err: err}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	if err.err == nil {
		return err.message
	}
	return err.message + ": " + err.err.Error()
}

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice. If dec is empty, it just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the operation that produced the error was aborted.
func (err *Error) Critical() bool { return err.critical }

//Unwrap returns the cause, so errors.Is can reach the package sentinels.
func (err *Error) Unwrap() error { return err.err }

//Trace returns the decoration slice as a single string.
func (err *Error) Trace() string {
	return strings.Join(err.deco, " <- ")
}

//decorate decorates err with caller if it is an *Error, and returns it.
func decorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
