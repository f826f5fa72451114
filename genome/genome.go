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

// Package genome ties the SNP store, the parser and a file source together
// into the Genome facade: load a 23andMe raw file once, then query it
// without ever touching the file again.
package genome

import (
	"errors"
	"fmt"

	"github.com/zymatik-com/arv/chromosome"
	"github.com/zymatik-com/arv/parser"
	"github.com/zymatik-com/arv/rsid"
	"github.com/zymatik-com/arv/snp"
	"github.com/zymatik-com/arv/snpstore"
	"github.com/zymatik-com/arv/source"
)

// Error taxonomy surfaced at the query/mutation boundary. The parser itself
// never fails on file content; these only arise from Load's I/O and
// capacity setup, or from queries against an already-loaded Genome.
var (
	// ErrKeyNotFound is returned by Get when the key (in either its
	// string or encoded integer form) has no entry in the genome.
	ErrKeyNotFound = errors.New("genome: key not found")
	// ErrKeyType is returned by Get when key is not a string or an
	// integer type (e.g. a float).
	ErrKeyType = errors.New("genome: unsupported key type")
	// ErrInvalidOrientation is returned by SetOrientation for any value
	// other than +1 or -1.
	ErrInvalidOrientation = errors.New("genome: orientation must be +1 or -1")
)

// Genome is an immutable-after-load view over a parsed 23andMe raw genome
// file, plus a small amount of mutable metadata (ethnicity, orientation,
// name). Once Load returns, concurrent readers need no locking; only the
// metadata setters require external synchronization if called from
// multiple goroutines.
type Genome struct {
	store *snpstore.Store

	yChromosome bool
	hasEntries  bool
	first, last int32

	ethnicity   string
	orientation int
	name        string

	insertErr error
}

// Option configures Load.
type Option func(*config)

type config struct {
	ethnicity     string
	name          string
	expectedCount int
	maxLoadFactor float64
}

// WithEthnicity sets the Genome's ethnicity tag (default "").
func WithEthnicity(ethnicity string) Option {
	return func(c *config) { c.ethnicity = ethnicity }
}

// WithName overrides the Genome's name (default: the loaded file's path).
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithExpectedCount sizes the SNP store for a specific expected record
// count instead of snpstore.DefaultExpectedCount.
func WithExpectedCount(n int) Option {
	return func(c *config) { c.expectedCount = n }
}

// WithMaxLoadFactor overrides the SNP store's target load factor instead
// of snpstore.DefaultMaxLoadFactor.
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) { c.maxLoadFactor = f }
}

// Load reads and parses the 23andMe raw genome file at path, returning a
// populated, ready-to-query Genome. It fails only on an I/O error opening
// or reading the file, or if the SNP store's configured capacity is
// exceeded (snpstore.ErrFull) — which a realistic expected-count hint
// should never trigger. Malformed lines within the file are silently
// skipped, never surfaced as an error.
func Load(path string, opts ...Option) (*Genome, error) {
	cfg := config{
		name:          path,
		expectedCount: snpstore.DefaultExpectedCount,
		maxLoadFactor: snpstore.DefaultMaxLoadFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	view, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer view.Close()

	g := &Genome{
		store:       snpstore.New(cfg.expectedCount, cfg.maxLoadFactor),
		ethnicity:   cfg.ethnicity,
		orientation: 1,
		name:        cfg.name,
	}

	parser.Parse(view.Bytes(), g)

	if g.insertErr != nil {
		return nil, fmt.Errorf("genome: failed to load %s: %w", path, g.insertErr)
	}

	return g, nil
}

// Insert implements parser.Sink. It is exported only so the parser package
// can call it; callers should use Load.
func (g *Genome) Insert(rsidKey int32, chrom chromosome.Chromosome, packed uint64) {
	if g.insertErr != nil {
		return
	}

	if err := g.store.Insert(rsidKey, packed); err != nil {
		g.insertErr = err
		return
	}

	if chrom == chromosome.Y {
		g.yChromosome = true
	}

	if !g.hasEntries || rsidKey < g.first {
		g.first = rsidKey
	}
	if !g.hasEntries || rsidKey > g.last {
		g.last = rsidKey
	}
	g.hasEntries = true
}

// resolveKey converts a caller-supplied key (string RSID, or any integer
// type) into the store's encoded int32 key form.
func resolveKey(key any) (int32, error) {
	switch v := key.(type) {
	case string:
		k, err := rsid.Encode(v)
		if err != nil {
			return 0, ErrKeyNotFound
		}
		return k, nil
	case int:
		return int32(v), nil
	case int32:
		return v, nil
	case int64:
		return int32(v), nil
	case uint:
		return int32(v), nil
	case uint32:
		return int32(v), nil
	default:
		return 0, ErrKeyType
	}
}

// Get returns the SNP for key, which may be its string form ("rs123",
// "i456") or its encoded integer form. It fails with ErrKeyNotFound if
// absent, or ErrKeyType if key is neither a string nor an integer (e.g. a
// float).
func (g *Genome) Get(key any) (snp.SNP, error) {
	encoded, err := resolveKey(key)
	if err != nil {
		return snp.SNP{}, err
	}

	packed, ok := g.store.Lookup(encoded)
	if !ok {
		return snp.SNP{}, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return snp.FromPacked(encoded, packed), nil
}

// Contains reports whether key has an entry in the genome. Unlike Get, it
// never fails: an unresolvable key (wrong type, unparsable string) simply
// reports false.
func (g *Genome) Contains(key any) bool {
	encoded, err := resolveKey(key)
	if err != nil {
		return false
	}
	return g.store.Contains(encoded)
}

// Len returns the number of SNPs in the genome.
func (g *Genome) Len() int {
	return g.store.Len()
}

// LoadFactor returns the SNP store's current load factor: strictly
// between 0 and 1 for a non-empty genome, and 0 for an empty one.
func (g *Genome) LoadFactor() float64 {
	return g.store.LoadFactor()
}

// YChromosome reports whether any parsed record had chromosome Y.
func (g *Genome) YChromosome() bool {
	return g.yChromosome
}

// First returns the smallest encoded RSID seen, or 0 if the genome is
// empty.
func (g *Genome) First() int32 {
	return g.first
}

// Last returns the largest encoded RSID seen, or 0 if the genome is empty.
func (g *Genome) Last() int32 {
	return g.last
}

// Ethnicity returns the genome's ethnicity tag (default "").
func (g *Genome) Ethnicity() string {
	return g.ethnicity
}

// SetEthnicity sets the genome's ethnicity tag.
func (g *Genome) SetEthnicity(ethnicity string) {
	g.ethnicity = ethnicity
}

// Orientation returns the genome's orientation, +1 or -1 (default +1).
func (g *Genome) Orientation() int {
	return g.orientation
}

// SetOrientation sets the genome's orientation. It fails with
// ErrInvalidOrientation for any value other than +1 or -1.
func (g *Genome) SetOrientation(orientation int) error {
	if orientation != 1 && orientation != -1 {
		return fmt.Errorf("%w: got %d", ErrInvalidOrientation, orientation)
	}
	g.orientation = orientation
	return nil
}

// Name returns the genome's name (default: the loaded file's path).
func (g *Genome) Name() string {
	return g.name
}

// SetName sets the genome's name.
func (g *Genome) SetName(name string) {
	g.name = name
}
