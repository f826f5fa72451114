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

package genome_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zymatik-com/arv/genome"
	"github.com/zymatik-com/arv/match"
)

func loadFixture(t *testing.T) *genome.Genome {
	t.Helper()
	g, err := genome.Load("../testdata/fake_genome.txt")
	require.NoError(t, err)
	return g
}

func TestLoadFixtureLen(t *testing.T) {
	g := loadFixture(t)
	assert.Equal(t, 24, g.Len())
}

func TestGetByStringAndInt(t *testing.T) {
	g := loadFixture(t)

	s, err := g.Get("rs4477212")
	require.NoError(t, err)
	assert.Equal(t, "AT", s.Genotype.String())
	assert.Equal(t, "1", s.Chromosome.String())
	assert.EqualValues(t, 82154, s.Position)

	byInt, err := g.Get(int32(4477212))
	require.NoError(t, err)
	assert.Equal(t, s, byInt)
}

func TestGetNoCallGenotype(t *testing.T) {
	g := loadFixture(t)

	s, err := g.Get("rs28504042")
	require.NoError(t, err)
	assert.Equal(t, "--", s.Genotype.String())
	assert.Equal(t, "MT", s.Chromosome.String())
	assert.EqualValues(t, 1549, s.Position)
}

func TestGetHaploidGenotype(t *testing.T) {
	g := loadFixture(t)

	s, err := g.Get("i3001754")
	require.NoError(t, err)
	assert.Equal(t, "A", s.Genotype.String())
	assert.Equal(t, "MT", s.Chromosome.String())
	assert.EqualValues(t, 16256, s.Position)
}

func TestYChromosome(t *testing.T) {
	g := loadFixture(t)
	assert.True(t, g.YChromosome())
}

func TestUnphasedEyeColor(t *testing.T) {
	g := loadFixture(t)

	s, err := g.Get("rs12913832")
	require.NoError(t, err)

	color, err := match.Unphased(s, match.NewMapping(map[string]string{
		"AA": "brown",
		"AG": "brown or green",
		"GG": "blue",
	}))
	require.NoError(t, err)
	assert.Equal(t, "blue", color)
}

func TestGetMissingKeyFails(t *testing.T) {
	g := loadFixture(t)

	_, err := g.Get("rs9999999")
	assert.ErrorIs(t, err, genome.ErrKeyNotFound)
}

func TestGetFloatKeyFails(t *testing.T) {
	g := loadFixture(t)

	_, err := g.Get(1.0)
	assert.ErrorIs(t, err, genome.ErrKeyType)
}

func TestSetOrientationRejectsOtherValues(t *testing.T) {
	g := loadFixture(t)

	assert.Equal(t, 1, g.Orientation())

	err := g.SetOrientation(-1)
	require.NoError(t, err)
	assert.Equal(t, -1, g.Orientation())

	err = g.SetOrientation(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Orientation())

	err = g.SetOrientation(2)
	assert.ErrorIs(t, err, genome.ErrInvalidOrientation)
	assert.Equal(t, 1, g.Orientation()) // unchanged
}

func TestMetadataDefaults(t *testing.T) {
	g := loadFixture(t)

	assert.Equal(t, "", g.Ethnicity())
	assert.Equal(t, "../testdata/fake_genome.txt", g.Name())

	g.SetEthnicity("european")
	assert.Equal(t, "european", g.Ethnicity())

	g.SetName("foo bar")
	assert.Equal(t, "foo bar", g.Name())
}

func TestLoadFactorInvariant(t *testing.T) {
	g := loadFixture(t)

	lf := g.LoadFactor()
	assert.Greater(t, lf, 0.0)
	assert.Less(t, lf, 1.0)
}

func TestKeysValuesItems(t *testing.T) {
	g := loadFixture(t)

	keys := g.Keys()
	values := g.Values()
	items := g.Items()

	assert.Len(t, keys, g.Len())
	assert.Len(t, values, g.Len())
	assert.Len(t, items, g.Len())

	for i, item := range items {
		assert.Equal(t, keys[i], item.RSID)
		assert.Equal(t, values[i], item.Genotype)

		s, err := g.Get(item.RSID)
		require.NoError(t, err)
		assert.Equal(t, item.Genotype, s.Genotype.String())
	}
}

func TestContains(t *testing.T) {
	g := loadFixture(t)

	assert.True(t, g.Contains("rs4477212"))
	assert.True(t, g.Contains(int32(4477212)))
	assert.False(t, g.Contains("xrs4477212"))
	assert.False(t, g.Contains(int32(-4477212)))
	assert.False(t, g.Contains(1.0))
}

func TestDuplicateRSIDOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dup.txt")
	content := "rs1\t1\t100\tAA\nrs1\t1\t100\tCC\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := genome.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, g.Len())

	s, err := g.Get("rs1")
	require.NoError(t, err)
	assert.Equal(t, "CC", s.Genotype.String())
}

func TestMalformedLinesDoNotPreventGoodLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messy.txt")
	content := "rsbad\t1\t100\tAA\nrs2\t1\t200\tCC\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := genome.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Contains("rs2"))
}

func TestFirstLast(t *testing.T) {
	g := loadFixture(t)

	assert.LessOrEqual(t, g.First(), g.Last())

	for _, k := range g.Keys() {
		assert.GreaterOrEqual(t, k, g.First())
		assert.LessOrEqual(t, k, g.Last())
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := genome.Load("/nonexistent/genome.txt")
	assert.Error(t, err)
}

func TestLoadEmptyFileYieldsEmptyGenome(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	g, err := genome.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

func TestWithEthnicityAndNameOptions(t *testing.T) {
	g, err := genome.Load("../testdata/fake_genome.txt",
		genome.WithEthnicity("european"),
		genome.WithName("custom name"))
	require.NoError(t, err)

	assert.Equal(t, "european", g.Ethnicity())
	assert.Equal(t, "custom name", g.Name())
}
