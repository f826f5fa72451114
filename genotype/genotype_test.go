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

package genotype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zymatik-com/arv/genotype"
	"github.com/zymatik-com/arv/nucleotide"
)

func TestString(t *testing.T) {
	g := genotype.Genotype{First: nucleotide.A, Second: nucleotide.T}
	assert.Equal(t, "AT", g.String())

	haploid := genotype.Genotype{First: nucleotide.A, Second: nucleotide.None}
	assert.Equal(t, "A", haploid.String())

	noCall := genotype.Genotype{First: nucleotide.NoCall, Second: nucleotide.NoCall}
	assert.Equal(t, "--", noCall.String())
}

func TestEqual(t *testing.T) {
	g := genotype.Genotype{First: nucleotide.A, Second: nucleotide.T}

	assert.True(t, g.Equal("AT"))
	assert.True(t, g.Equal(genotype.Genotype{First: nucleotide.A, Second: nucleotide.T}))
	assert.False(t, g.Equal("TA"))
	assert.False(t, g.Equal(1))
}

func TestCompare(t *testing.T) {
	a := genotype.Genotype{First: nucleotide.A, Second: nucleotide.T} // "AT"
	b := genotype.Genotype{First: nucleotide.G, Second: nucleotide.T} // "GT"

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
}
