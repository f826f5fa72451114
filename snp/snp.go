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

// Package snp defines the SNP value object and its packed, fixed-width
// store representation.
package snp

import (
	"fmt"

	"github.com/zymatik-com/arv/chromosome"
	"github.com/zymatik-com/arv/genotype"
	"github.com/zymatik-com/arv/nucleotide"
	"github.com/zymatik-com/arv/rsid"
)

// SNP is a single parsed record: a genomic site and the genotype observed
// there. Values returned to callers are always by-value copies, never
// references into the store.
type SNP struct {
	RSID       int32
	Chromosome chromosome.Chromosome
	Position   uint32
	Genotype   genotype.Genotype
}

// String renders the SNP as its genotype string, matching the original
// implementation's str(snp) == str(genotype) contract.
func (s SNP) String() string {
	return s.Genotype.String()
}

// Compare orders SNPs by chromosome first (autosomes before X, Y, MT), then
// by position.
func (s SNP) Compare(other SNP) int {
	if s.Chromosome != other.Chromosome {
		if s.Chromosome.Less(other.Chromosome) {
			return -1
		}
		return 1
	}
	switch {
	case s.Position < other.Position:
		return -1
	case s.Position > other.Position:
		return 1
	default:
		return 0
	}
}

// Less reports whether s sorts before other.
func (s SNP) Less(other SNP) bool {
	return s.Compare(other) < 0
}

// RSIDString returns the textual form ("rs123"/"i456") of s.RSID.
func (s SNP) RSIDString() string {
	return rsid.Decode(s.RSID)
}

// Packed widths. Position needs 28 bits to cover GRCh37/38 chromosome 1
// (up to ~249 million bases); chromosome needs 5 bits (0..25); each
// nucleotide needs 3 bits. 5+28+3+3 = 39 bits, which does not fit the 4-byte
// slot a naive reading of the packing suggests, so the store's value slot is
// 8 bytes (a uint64) rather than 4 — see DESIGN.md for the tradeoff. It is
// still a small, fixed, allocation-free representation.
const (
	chromosomeBits = 5
	positionBits   = 28
	nucleotideBits = 3

	chromosomeMask = 1<<chromosomeBits - 1
	positionMask   = 1<<positionBits - 1
	nucleotideMask = 1<<nucleotideBits - 1

	chromosomeShift = 0
	positionShift   = chromosomeShift + chromosomeBits
	firstShift      = positionShift + positionBits
	secondShift     = firstShift + nucleotideBits
)

// MaxPosition is the largest position that can be packed.
const MaxPosition = 1<<positionBits - 1

// Pack encodes chromosome, position and genotype into the store's 8-byte
// value representation. The RSID is not packed; it is the store's key.
func Pack(c chromosome.Chromosome, position uint32, g genotype.Genotype) (uint64, error) {
	if position > MaxPosition {
		return 0, fmt.Errorf("snp: position %d exceeds packed range", position)
	}

	var packed uint64
	packed |= uint64(c&chromosomeMask) << chromosomeShift
	packed |= uint64(position&positionMask) << positionShift
	packed |= uint64(g.First&nucleotideMask) << firstShift
	packed |= uint64(g.Second&nucleotideMask) << secondShift
	return packed, nil
}

// Unpack reconstructs chromosome, position and genotype from a packed
// value produced by Pack. It is lossless for any value Pack returned.
func Unpack(packed uint64) (chromosome.Chromosome, uint32, genotype.Genotype) {
	c := chromosome.Chromosome((packed >> chromosomeShift) & chromosomeMask)
	position := uint32((packed >> positionShift) & positionMask)
	first := nucleotide.Nucleotide((packed >> firstShift) & nucleotideMask)
	second := nucleotide.Nucleotide((packed >> secondShift) & nucleotideMask)
	return c, position, genotype.Genotype{First: first, Second: second}
}

// FromPacked reconstructs a full SNP value from its store key and packed
// value.
func FromPacked(rsidKey int32, packed uint64) SNP {
	c, position, g := Unpack(packed)
	return SNP{RSID: rsidKey, Chromosome: c, Position: position, Genotype: g}
}
