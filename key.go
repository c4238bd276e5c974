/*
 * key.go, part of molset.
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
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
)

//Key selects a structure in a Database, either by identifier or by
//zero-based position.
type Key struct {
	id      string
	index   int
	byIndex bool
	//fallback marks an identifier key that may also be read as a position.
	fallback bool
}

//ID returns a Key for the structure with identifier id. A miss is final.
func ID(id string) Key { return Key{id: id} }

//Index returns a Key for the ith entry of the database.
func Index(i int) Key { return Key{index: i, byIndex: true} }

//ParseKey returns an identifier key for s. If s is also an integer, a
//failed identifier lookup falls back to the entry at that position.
func ParseKey(s string) Key {
	k := ID(s)
	if i, err := strconv.Atoi(s); err == nil {
		k.index, k.fallback = i, true
	}
	return k
}

//IDs and Indexes build key slices.
func IDs(ids ...string) []Key {
	ret := make([]Key, len(ids))
	for i, v := range ids {
		ret[i] = ID(v)
	}
	return ret
}

func Indexes(indexes ...int) []Key {
	ret := make([]Key, len(indexes))
	for i, v := range indexes {
		ret[i] = Index(v)
	}
	return ret
}

//IsIndex returns true if the key is positional.
func (k Key) IsIndex() bool { return k.byIndex }

func (k Key) String() string {
	if k.byIndex {
		return fmt.Sprintf("#%d", k.index)
	}
	return strconv.Quote(k.id)
}

//ResolutionKind tells how a Key was resolved.
type ResolutionKind int

const (
	//NotFound means the database has no structure for the key.
	NotFound ResolutionKind = iota
	ByIdentifier
	ByIndex
	//LookupFailed means the database could not answer, e.g. a read or
	//decoding error in the backend.
	LookupFailed
)

func (r ResolutionKind) String() string {
	switch r {
	case ByIdentifier:
		return "ByIdentifier"
	case ByIndex:
		return "ByIndex"
	case LookupFailed:
		return "LookupFailed"
	default:
		return "NotFound"
	}
}

//Resolution is the result of looking up a Key in a Database. Record and
//Identifier are set when OK returns true. Otherwise Err says why.
type Resolution struct {
	Kind       ResolutionKind
	Key        Key
	Identifier string
	Record     Record
	Err        error
}

//OK returns true if a record was obtained.
func (r Resolution) OK() bool {
	return r.Kind == ByIdentifier || r.Kind == ByIndex
}

//Resolve looks k up in db. Identifier keys go to the identifier lookup
//first; keys from ParseKey that miss there are retried as positions.
//Positional keys fetch the entry at that position and then look its
//identifier up.
func Resolve(db Database, k Key) Resolution {
	if !k.byIndex {
		rec, err := db.Molecule(k.id)
		if err == nil {
			return Resolution{Kind: ByIdentifier, Key: k, Identifier: rec.Identifier(), Record: rec}
		}
		if !k.fallback || !errors.Is(err, ErrNotFound) {
			return failed(k, err)
		}
	}
	if n := db.Len(); k.index < 0 || k.index >= n {
		return failed(k, errors.Wrapf(ErrIndexOutOfRange, "index %d, database size %d", k.index, n))
	}
	entry, err := db.Entry(k.index)
	if err != nil {
		return failed(k, err)
	}
	rec, err := db.Molecule(entry.Identifier)
	if err != nil {
		return failed(k, err)
	}
	return Resolution{Kind: ByIndex, Key: k, Identifier: rec.Identifier(), Record: rec}
}

func failed(k Key, err error) Resolution {
	kind := LookupFailed
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrIndexOutOfRange) {
		kind = NotFound
	}
	return Resolution{Kind: kind, Key: k, Err: err}
}
