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

// Package parser is the byte-level 23andMe raw genome file scanner. It
// makes a single pass over the file's bytes with a grammar-specific fast
// path per field (branch on the RSID prefix byte, branch on the
// chromosome's first byte, accumulate decimal digits directly into an
// integer, read one or two nucleotide bytes) and never copies a substring
// or allocates per line. Malformed lines, including lines whose values
// snp.Pack cannot represent, are skipped; the parser never fails.
package parser

import (
	"math"

	"github.com/zymatik-com/arv/chromosome"
	"github.com/zymatik-com/arv/genotype"
	"github.com/zymatik-com/arv/nucleotide"
	"github.com/zymatik-com/arv/snp"
)

// Sink receives one record per accepted data line. chrom is passed
// alongside packed so callers that need it (to track y-chromosome
// presence, for instance) don't have to unpack the value again.
type Sink interface {
	Insert(rsidKey int32, chrom chromosome.Chromosome, packed uint64)
}

// Stats summarizes a single Parse call.
type Stats struct {
	Accepted int
	Skipped  int
}

// Parse scans data (the full contents of a 23andMe raw genome file) and
// calls sink.Insert for every well-formed data line. Comment lines
// (starting with '#') and blank lines are silently discarded. Malformed
// data lines are skipped without aborting the parse.
func Parse(data []byte, sink Sink) Stats {
	var stats Stats

	i, n := 0, len(data)
	for i < n {
		switch data[i] {
		case '#':
			i = skipLine(data, i)
			continue
		case '\n', '\r':
			i++
			continue
		}

		start := i

		rsidKey, ok, next := parseRSID(data, i)
		if !ok {
			stats.Skipped++
			i = skipLine(data, start)
			continue
		}
		i = next

		i, ok = expectTab(data, i)
		if !ok {
			stats.Skipped++
			i = skipLine(data, start)
			continue
		}

		chrom, ok, next := parseChromosome(data, i)
		if !ok {
			stats.Skipped++
			i = skipLine(data, start)
			continue
		}
		i = next

		i, ok = expectTab(data, i)
		if !ok {
			stats.Skipped++
			i = skipLine(data, start)
			continue
		}

		position, ok, next := parseUint32(data, i)
		if !ok {
			stats.Skipped++
			i = skipLine(data, start)
			continue
		}
		i = next

		i, ok = expectTab(data, i)
		if !ok {
			stats.Skipped++
			i = skipLine(data, start)
			continue
		}

		g, ok, next := parseGenotype(data, i)
		if !ok {
			stats.Skipped++
			i = skipLine(data, start)
			continue
		}
		i = next

		if i < n && data[i] != '\n' && data[i] != '\r' {
			// Trailing garbage on the line.
			stats.Skipped++
			i = skipLine(data, start)
			continue
		}

		packed, err := snp.Pack(chrom, position, g)
		if err != nil {
			stats.Skipped++
			i = skipLine(data, start)
			continue
		}

		sink.Insert(rsidKey, chrom, packed)
		stats.Accepted++

		i = skipLine(data, i)
	}

	return stats
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// skipLine advances i past the next '\n' (inclusive), or to EOF if there is
// none. It is used both to discard comment lines and to recover from
// malformed data lines.
func skipLine(data []byte, i int) int {
	n := len(data)
	for i < n && data[i] != '\n' {
		i++
	}
	if i < n {
		i++
	}
	return i
}

func expectTab(data []byte, i int) (int, bool) {
	if i >= len(data) || data[i] != '\t' {
		return i, false
	}
	return i + 1, true
}

// parseRSID recognizes "rs<digits>" (positive) or "i<digits>" (negative),
// branching on the leading byte before doing any digit work.
func parseRSID(data []byte, i int) (int32, bool, int) {
	n := len(data)
	if i >= n {
		return 0, false, i
	}

	var negative bool
	switch {
	case data[i] == 'r' && i+1 < n && data[i+1] == 's':
		i += 2
	case data[i] == 'i':
		i++
		negative = true
	default:
		return 0, false, i
	}

	start := i
	var value uint64
	overflow := false
	for i < n && isDigit(data[i]) {
		value = value*10 + uint64(data[i]-'0')
		if value > math.MaxInt32 {
			overflow = true
		}
		i++
	}
	if i == start || overflow {
		return 0, false, i
	}

	if negative {
		return -int32(value), true, i
	}
	return int32(value), true, i
}

// parseChromosome branches on the first byte: 'X', 'Y', 'M' (for "MT") or a
// decimal digit for an autosome.
func parseChromosome(data []byte, i int) (chromosome.Chromosome, bool, int) {
	n := len(data)
	if i >= n {
		return 0, false, i
	}

	switch data[i] {
	case 'X':
		return chromosome.X, true, i + 1
	case 'Y':
		return chromosome.Y, true, i + 1
	case 'M':
		if i+1 < n && data[i+1] == 'T' {
			return chromosome.MT, true, i + 2
		}
		return 0, false, i
	}

	if !isDigit(data[i]) {
		return 0, false, i
	}

	start := i
	value := 0
	for i < n && isDigit(data[i]) {
		value = value*10 + int(data[i]-'0')
		i++
		if value > 22 {
			return 0, false, i
		}
	}
	if i == start || value < 1 {
		return 0, false, i
	}

	return chromosome.Chromosome(value), true, i
}

// parseUint32 accumulates decimal digits directly into a uint32, with no
// intermediate string allocation.
func parseUint32(data []byte, i int) (uint32, bool, int) {
	n := len(data)
	start := i
	var value uint64
	for i < n && isDigit(data[i]) {
		value = value*10 + uint64(data[i]-'0')
		if value > math.MaxUint32 {
			return 0, false, i
		}
		i++
	}
	if i == start {
		return 0, false, i
	}
	return uint32(value), true, i
}

// parseGenotype reads one or two nucleotide bytes. A second base is
// consumed only if it, too, is a valid nucleotide byte; genotype is always
// the last tab-separated field, so anything else ends the field.
func parseGenotype(data []byte, i int) (genotype.Genotype, bool, int) {
	n := len(data)
	if i >= n {
		return genotype.Genotype{}, false, i
	}

	first, ok := nucleotide.FromByte(data[i])
	if !ok {
		return genotype.Genotype{}, false, i
	}
	i++

	if i < n {
		if second, ok := nucleotide.FromByte(data[i]); ok {
			return genotype.Genotype{First: first, Second: second}, true, i + 1
		}
	}

	return genotype.Genotype{First: first, Second: nucleotide.None}, true, i
}
