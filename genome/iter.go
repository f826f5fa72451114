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

package genome

import (
	"github.com/zymatik-com/arv/snp"
	"github.com/zymatik-com/arv/snpstore"
)

// Item is one (encoded RSID, genotype string) pair yielded by Items/All.
type Item struct {
	RSID     int32
	Genotype string
}

// All calls yield for every SNP in the genome, in the store's arbitrary
// but stable iteration order, stopping early if yield returns false. This
// is the genome's one lazy sequence; Keys, Values and Items are built on
// top of it for callers that just want a slice.
func (g *Genome) All(yield func(snp.SNP) bool) {
	g.store.Iter(func(e snpstore.Entry) bool {
		return yield(snp.FromPacked(e.Key, e.Value))
	})
}

// Keys returns the encoded RSID of every SNP in the genome.
func (g *Genome) Keys() []int32 {
	keys := make([]int32, 0, g.Len())
	g.All(func(s snp.SNP) bool {
		keys = append(keys, s.RSID)
		return true
	})
	return keys
}

// Values returns the genotype string of every SNP in the genome, in the
// same order as Keys.
func (g *Genome) Values() []string {
	values := make([]string, 0, g.Len())
	g.All(func(s snp.SNP) bool {
		values = append(values, s.Genotype.String())
		return true
	})
	return values
}

// Items returns every (encoded RSID, genotype string) pair in the genome,
// in the same order as Keys and Values.
func (g *Genome) Items() []Item {
	items := make([]Item, 0, g.Len())
	g.All(func(s snp.SNP) bool {
		items = append(items, Item{RSID: s.RSID, Genotype: s.Genotype.String()})
		return true
	})
	return items
}
