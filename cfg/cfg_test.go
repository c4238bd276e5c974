/*
 * cfg_test.go, part of molset.
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

package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/molset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func write(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "molset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew(t *testing.T) {
	path := write(t, `
database: structures.db
ids: [AABHTZ, 3, "7", ACANIL]
seed: 12
workers: 4
defer: true
logLevel: debug
`)
	c, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "structures.db", c.Database)
	assert.Equal(t, []molset.Key{molset.ID("AABHTZ"), molset.Index(3), molset.ID("7"), molset.ID("ACANIL")}, c.Keys())
	assert.Equal(t, int64(12), c.SeedOrDefault())
	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, l)

	o := c.Options(nil)
	assert.Equal(t, 4, o.Workers)
	assert.True(t, o.Defer)
	assert.Zero(t, o.MaxAttempts)
}

func TestNewDefaults(t *testing.T) {
	c, err := New(write(t, "database: structures.db\ncount: 10\n"))
	require.NoError(t, err)
	assert.Equal(t, molset.DefaultSeed, c.SeedOrDefault())
	assert.Empty(t, c.Keys())
	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, l)
}

func TestNewErrors(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = New(write(t, "database: structures.db\ncount: 10\nsamples: 3\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = New(write(t, "count: 10\n"))
	assert.ErrorContains(t, err, "database")

	_, err = New(write(t, "database: structures.db\nids: [AABHTZ, 2.5]\n"))
	assert.ErrorContains(t, err, "neither an identifier nor a position")

	_, err = New(write(t, "database: structures.db\nids: [[1, 2]]\n"))
	assert.ErrorContains(t, err, "must be a scalar")
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		name string
		c    Cfg
		err  string
	}{
		{"ids", Cfg{Database: "a.db", IDs: []Key{{molset.ID("X")}}}, ""},
		{"count", Cfg{Database: "a.db", Count: 3}, ""},
		{"no database", Cfg{Count: 3}, "database must be given"},
		{"both", Cfg{Database: "a.db", IDs: []Key{{molset.ID("X")}}, Count: 3}, "mutually exclusive"},
		{"neither", Cfg{Database: "a.db"}, "either ids or a count"},
		{"negative count", Cfg{Database: "a.db", Count: -1}, "either ids or a count"},
		{"negative attempts", Cfg{Database: "a.db", Count: 1, MaxAttempts: -5}, "maxAttempts"},
		{"negative workers", Cfg{Database: "a.db", Count: 1, Workers: -1}, "workers"},
		{"bad level", Cfg{Database: "a.db", Count: 1, LogLevel: "loud"}, "logLevel"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Check()
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.err)
		})
	}
}
