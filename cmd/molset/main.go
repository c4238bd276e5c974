/*
 * main.go, part of molset.
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

//Command molset builds a set of centered structures from a SQLite structure
//database, as given in a YAML configuration file, and writes their
//coordinate tables to the standard output.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rmera/molset"
	"github.com/rmera/molset/cfg"
	"github.com/rmera/molset/sqlitedb"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("The path of the configuration file must be specified in the arguments")
	}
	c, err := cfg.New(os.Args[1])
	if err != nil {
		log.Fatal(errors.Wrap(err, "reading configuration"))
	}
	logger, err := newLogger(c)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	molset.SetLogger(logger)

	if err := run(c, logger); err != nil {
		logger.Fatal("molset failed", zap.Error(err))
	}
}

func newLogger(c *cfg.Cfg) (*zap.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func run(c *cfg.Cfg, logger *zap.Logger) error {
	db, err := sqlitedb.Open(c.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("opened structure database", zap.String("path", c.Database), zap.Int("entries", db.Len()))

	var metrics *molset.Metrics
	if c.Metrics {
		metrics = molset.NewMetrics(prometheus.NewRegistry())
	}
	opts := c.Options(metrics)
	var set *molset.Set
	if len(c.IDs) > 0 {
		set, err = molset.NewSet(db, c.Keys(), opts)
	} else {
		set, err = molset.SampleSet(db, c.Count, molset.NewRand(c.SeedOrDefault()), opts)
	}
	if err != nil {
		return err
	}
	tables := set.XYZ
	if c.Defer {
		tables = set.RawXYZ()
	}
	out := bufio.NewWriter(os.Stdout)
	for _, id := range set.IDs() {
		t := tables[id]
		logger.Info("structure", zap.String("id", id), zap.Int("atoms", t.Len()))
		fmt.Fprint(out, t.String())
	}
	if err := out.Flush(); err != nil {
		return err
	}
	if metrics != nil {
		logger.Info("counters", zap.Any("values", metrics.Snapshot()))
	}
	return nil
}
