/*
 * cfg.go, part of molset.
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

//Package cfg reads the YAML configuration of the molset command.
package cfg

import (
	"bufio"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rmera/molset"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

//Cfg contains the parameters given in the configuration file. It can be
//instanced through New or by hand. If it is instanced by hand, please use
//the Check method to check that it meets the requirements.
type Cfg struct {
	//Database is the SQLite structure database to read.
	Database string `yaml:"database"`

	//IDs are the keys of the structures to take. An integer is a position
	//in the database, a string an identifier ("7" is the identifier 7).
	IDs []Key `yaml:"ids"`

	//Count is the number of fully located structures to sample, when IDs
	//is empty.
	Count int `yaml:"count"`

	//Seed seeds the sampling generator. If absent, molset.DefaultSeed is used.
	Seed *int64 `yaml:"seed"`

	//MaxAttempts bounds the draws made while sampling. 0 means the default.
	MaxAttempts int `yaml:"maxAttempts"`

	//Workers is the number of structures processed at the same time.
	Workers int `yaml:"workers"`

	//Defer skips centering at construction; raw tables are written instead.
	Defer bool `yaml:"defer"`

	//LogLevel is one of debug, info, warn, error. Empty means info.
	LogLevel string `yaml:"logLevel"`

	//Metrics logs the sampling counters at exit.
	Metrics bool `yaml:"metrics"`
}

//New opens and decodes the specified configuration file, then calls Check.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Cfg
	dec := yaml.NewDecoder(bufio.NewReader(f))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if err := c.Check(); err != nil {
		return nil, errors.Wrap(err, "Check")
	}
	return &c, nil
}

//Check returns an error if a field doesn't meet the requirements.
func (c *Cfg) Check() error {
	if c.Database == "" {
		return errors.New("database must be given")
	}
	if len(c.IDs) > 0 && c.Count != 0 {
		return errors.New("ids and count are mutually exclusive")
	}
	if len(c.IDs) == 0 && c.Count <= 0 {
		return errors.New("either ids or a count greater than 0 must be given")
	}
	if c.MaxAttempts < 0 {
		return errors.New("maxAttempts cannot be lower than 0")
	}
	if c.Workers < 0 {
		return errors.New("workers cannot be lower than 0")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

//Keys returns the configured keys.
func (c *Cfg) Keys() []molset.Key {
	keys := make([]molset.Key, len(c.IDs))
	for i, v := range c.IDs {
		keys[i] = v.Key
	}
	return keys
}

//Key is one element of the ids list. The YAML type of the scalar decides
//how it is resolved, not its text.
type Key struct {
	molset.Key
}

//UnmarshalYAML reads an integer scalar as a position and a string scalar
//as an identifier.
func (k *Key) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Newf("line %d: a structure key must be a scalar", n.Line)
	}
	switch n.ShortTag() {
	case "!!int":
		var i int
		if err := n.Decode(&i); err != nil {
			return errors.Wrapf(err, "line %d", n.Line)
		}
		k.Key = molset.Index(i)
	case "!!str":
		k.Key = molset.ID(n.Value)
	default:
		return errors.Newf("line %d: %q is neither an identifier nor a position", n.Line, n.Value)
	}
	return nil
}

//SeedOrDefault returns the configured seed or molset.DefaultSeed.
func (c *Cfg) SeedOrDefault() int64 {
	if c.Seed == nil {
		return molset.DefaultSeed
	}
	return *c.Seed
}

//Level returns the configured log level.
func (c *Cfg) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return l, errors.Wrapf(err, "logLevel %q", c.LogLevel)
	}
	return l, nil
}

//Options returns the set construction options given by c.
func (c *Cfg) Options(m *molset.Metrics) *molset.Options {
	return &molset.Options{Workers: c.Workers, MaxAttempts: c.MaxAttempts, Defer: c.Defer, Metrics: m}
}
