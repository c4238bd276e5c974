/*
 * doc.go, part of molset.
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

/*Package molset builds sets of crystal structures taken from a structure
database, and prepares them for display.

A structure is selected with a Key, which names it either by identifier
or by its position in the database. A Set can be built from explicit keys
(NewSet) or by drawing random positions until enough structures with every
atom located are found (SampleSet). Each member is wrapped in a Mol, which
forwards to the underlying Record and adds centering: atoms without a site
are removed and the molecule is translated so its centroid, rounded to four
decimals, sits at the origin.

The centered coordinates of each member are kept as a Table, which can be
printed in an xyz-like format or marshaled to JSON.

The Database implementations live in the memdb (in memory) and sqlitedb
(SQLite file) packages. Sampling counters can be exported to Prometheus
through Metrics, and the package logs through a zap.Logger set with
SetLogger.
*/
package molset
