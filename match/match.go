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

// Package match implements the unphased genotype matcher used by
// downstream trait-inference code: "AG" and "GA" denote the same,
// phase-agnostic, genotype.
package match

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned when a genotype has no entry in the Mapping, the
// Mapping's reverse, and no Default was set.
var ErrNoMatch = errors.New("match: no matching entry")

// Mapping is a genotype-to-phenotype lookup table. Default stands in for
// the host language's none-typed key (e.g. Python's None) used by the
// original implementation to express a fallback value.
type Mapping struct {
	Values  map[string]string
	Default *string
}

// NewMapping builds a Mapping from plain values, with no default entry.
func NewMapping(values map[string]string) Mapping {
	return Mapping{Values: values}
}

// WithDefault returns a copy of m with its Default entry set.
func (m Mapping) WithDefault(value string) Mapping {
	m.Default = &value
	return m
}

// reverse swaps the two characters of a genotype string. For single-
// character (haploid) genotypes, reverse is the identity.
func reverse(g string) string {
	if len(g) != 2 {
		return g
	}
	b := []byte(g)
	b[0], b[1] = b[1], b[0]
	return string(b)
}

// stringer is satisfied by both snp.SNP and genotype.Genotype.
type stringer interface {
	String() string
}

// Unphased looks up a genotype (or anything stringifying to one, such as a
// snp.SNP or a genotype.Genotype) in m, disregarding base order: "AG" also
// matches a mapping entry keyed "GA". It falls back to m.Default, and fails
// with ErrNoMatch if nothing matches and no default is set. Matching is
// case-sensitive, as all genotypes the parser produces are upper-case.
func Unphased(value any, m Mapping) (string, error) {
	var genotype string
	switch v := value.(type) {
	case string:
		genotype = v
	case stringer:
		genotype = v.String()
	default:
		return "", fmt.Errorf("match: unsupported value type %T", value)
	}

	if phenotype, ok := m.Values[genotype]; ok {
		return phenotype, nil
	}

	if phenotype, ok := m.Values[reverse(genotype)]; ok {
		return phenotype, nil
	}

	if m.Default != nil {
		return *m.Default, nil
	}

	return "", fmt.Errorf("%w: %q", ErrNoMatch, genotype)
}
