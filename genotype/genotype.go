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

// Package genotype holds the ordered pair of bases observed at a SNP site.
package genotype

import "github.com/zymatik-com/arv/nucleotide"

// Genotype is the ordered pair of nucleotides read at a site, in the order
// the source file reported them. It is not sorted; "AT" and "TA" are
// distinct Genotype values (see the match package for unphased comparison).
type Genotype struct {
	First  nucleotide.Nucleotide
	Second nucleotide.Nucleotide
}

// String renders the genotype the way a 23andMe file would: two characters
// for a diploid call, one for a haploid call (Y, MT) where Second is None.
func (g Genotype) String() string {
	if g.Second == nucleotide.None {
		return g.First.String()
	}
	return g.First.String() + g.Second.String()
}

// Equal compares g against another Genotype or against its string form,
// e.g. Equal("AT") and Equal(Genotype{A, T}) are both valid.
func (g Genotype) Equal(other any) bool {
	switch v := other.(type) {
	case Genotype:
		return g == v
	case string:
		return g.String() == v
	default:
		return false
	}
}

// Compare orders genotypes lexicographically by their string form,
// matching the total order the original implementation defines over
// genotype strings.
func (g Genotype) Compare(other Genotype) int {
	a, b := g.String(), other.String()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether g sorts before other.
func (g Genotype) Less(other Genotype) bool {
	return g.Compare(other) < 0
}
