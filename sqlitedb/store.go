/*
 * store.go, part of molset.
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

//Package sqlitedb implements molset.Database over a SQLite file. Each
//structure is one row, with its atoms stored as zstd-compressed JSON.
package sqlitedb

import (
	"database/sql"
	"encoding/json"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/molset"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const schema = `CREATE TABLE IF NOT EXISTS entries (
	idx        INTEGER PRIMARY KEY,
	identifier TEXT UNIQUE NOT NULL,
	atoms      BLOB NOT NULL
)`

//Store is a structure database in a SQLite file. Lookups materialize a new
//molset.Molecule each time. Store is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
	n    atomic.Int64
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

type atomJSON struct {
	Symbol string    `json:"symbol"`
	Label  string    `json:"label,omitempty"`
	Coords []float64 `json:"coords"`
}

//Open opens (creating it if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create entries table")
	}
	var n int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "count entries")
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "zstd encoder")
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "zstd decoder")
	}
	s := &Store{db: db, path: path, enc: enc, dec: dec}
	s.n.Store(n)
	return s, nil
}

//Close releases the database.
func (s *Store) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}

//Import appends raw structure records after the existing entries, in one
//transaction. Atoms without a complete site are stored without coordinates.
func (s *Store) Import(mols ...*molset.Molecule) (retErr error) {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin import")
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	var n int64
	if err := tx.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return errors.Wrap(err, "count entries")
	}
	stmt, err := tx.Prepare(`INSERT INTO entries (idx, identifier, atoms) VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()
	for i, m := range mols {
		blob, err := s.encode(m.Atoms())
		if err != nil {
			return errors.Wrapf(err, "encode %s", m.ID)
		}
		if _, err := stmt.Exec(n+int64(i), m.ID, blob); err != nil {
			return errors.Wrapf(err, "insert %s", m.ID)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit import")
	}
	s.n.Store(n + int64(len(mols)))
	return nil
}

//Molecule reads the record with identifier id.
func (s *Store) Molecule(id string) (molset.Record, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT atoms FROM entries WHERE identifier = ?`, id).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(molset.ErrNotFound, "sqlitedb: identifier %q", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select %s", id)
	}
	m, err := s.decode(id, blob)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", id)
	}
	return m, nil
}

//Entry returns the ith entry.
func (s *Store) Entry(i int) (molset.Entry, error) {
	var id string
	err := s.db.QueryRow(`SELECT identifier FROM entries WHERE idx = ?`, i).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return molset.Entry{}, errors.Wrapf(molset.ErrIndexOutOfRange, "sqlitedb: index %d", i)
	}
	if err != nil {
		return molset.Entry{}, errors.Wrapf(err, "select entry %d", i)
	}
	return molset.Entry{Index: i, Identifier: id}, nil
}

//Len returns the number of entries.
func (s *Store) Len() int {
	return int(s.n.Load())
}

func (s *Store) encode(atoms []*molset.Atom) ([]byte, error) {
	raw := make([]atomJSON, len(atoms))
	for i, at := range atoms {
		raw[i] = atomJSON{Symbol: at.Symbol, Label: at.Label}
		if at.HasSite() {
			raw[i].Coords = at.Coords
		}
	}
	j, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return s.enc.EncodeAll(j, nil), nil
}

func (s *Store) decode(id string, blob []byte) (*molset.Molecule, error) {
	j, err := s.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, err
	}
	var raw []atomJSON
	if err := json.Unmarshal(j, &raw); err != nil {
		return nil, err
	}
	m := molset.NewMolecule(id, make([]*molset.Atom, 0, len(raw)))
	for _, v := range raw {
		m.AppendAtom(&molset.Atom{Symbol: v.Symbol, Label: v.Label, Coords: v.Coords})
	}
	return m, nil
}
