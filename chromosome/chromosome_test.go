/* SPDX-License-Identifier: AGPL-3.0-or-later
 *
 * Zymatik Arv - A fast 23andMe raw genome parser for Go.
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as published
 * by the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package chromosome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zymatik-com/arv/chromosome"
)

func TestParse(t *testing.T) {
	c, ok := chromosome.Parse("1")
	assert.True(t, ok)
	assert.Equal(t, chromosome.Chromosome(1), c)

	c, ok = chromosome.Parse("22")
	assert.True(t, ok)
	assert.Equal(t, chromosome.Chromosome(22), c)

	c, ok = chromosome.Parse("X")
	assert.True(t, ok)
	assert.Equal(t, chromosome.X, c)

	c, ok = chromosome.Parse("Y")
	assert.True(t, ok)
	assert.Equal(t, chromosome.Y, c)

	c, ok = chromosome.Parse("MT")
	assert.True(t, ok)
	assert.Equal(t, chromosome.MT, c)

	_, ok = chromosome.Parse("23")
	assert.False(t, ok)

	_, ok = chromosome.Parse("0")
	assert.False(t, ok)

	_, ok = chromosome.Parse("XY")
	assert.False(t, ok)
}

func TestParseChrPrefixed(t *testing.T) {
	c, ok := chromosome.Parse("chr1")
	assert.True(t, ok)
	assert.Equal(t, chromosome.Chromosome(1), c)

	c, ok = chromosome.Parse("chrX")
	assert.True(t, ok)
	assert.Equal(t, chromosome.X, c)

	c, ok = chromosome.Parse("chrM")
	assert.True(t, ok)
	assert.Equal(t, chromosome.MT, c)

	c, ok = chromosome.Parse("M")
	assert.True(t, ok)
	assert.Equal(t, chromosome.MT, c)
}

func TestString(t *testing.T) {
	assert.Equal(t, "1", chromosome.Chromosome(1).String())
	assert.Equal(t, "15", chromosome.Chromosome(15).String())
	assert.Equal(t, "X", chromosome.X.String())
	assert.Equal(t, "Y", chromosome.Y.String())
	assert.Equal(t, "MT", chromosome.MT.String())
}

func TestOrdering(t *testing.T) {
	assert.True(t, chromosome.Chromosome(1).Less(chromosome.Chromosome(2)))
	assert.True(t, chromosome.Chromosome(22).Less(chromosome.X))
	assert.True(t, chromosome.X.Less(chromosome.Y))
	assert.True(t, chromosome.Y.Less(chromosome.MT))
}

func TestValid(t *testing.T) {
	assert.True(t, chromosome.Chromosome(1).Valid())
	assert.True(t, chromosome.MT.Valid())
	assert.False(t, chromosome.Unknown.Valid())
}
