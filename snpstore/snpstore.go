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

// Package snpstore implements the hot data structure of this module: a
// fixed-capacity, open-addressed hash map purpose-built for a 32-bit signed
// integer key (an encoded RSID) and an 8-byte packed SNP value. It is
// write-once during parsing and read-only (and lock-free for concurrent
// readers) afterwards, so unlike a general-purpose hash map it carries no
// tombstones, no resizing and no per-entry heap allocation.
//
// This mirrors the "vanilla linear-probing hashtable" design used for the
// kmer->genelist index in grailbio/bio's fusion package, scaled down from a
// 256-way sharded table to a single flat array sized for ~10^6 entries.
package snpstore

import (
	"encoding/binary"
	"errors"

	farm "github.com/dgryski/go-farm"
)

// emptyKey is the sentinel marking an unoccupied slot. No real RSID encodes
// to 0: "rs0" and "i0" are not issued, so 0 is safe to reserve.
const emptyKey int32 = 0

// ErrFull is returned by Insert when the store has no room left for a new
// key. With capacity sized from a realistic expected-count hint this should
// never trigger in normal operation.
var ErrFull = errors.New("snpstore: store is full")

const (
	// DefaultExpectedCount is sized for a typical 23andMe export (~600k
	// SNPs) with headroom.
	DefaultExpectedCount = 1_000_000
	// DefaultMaxLoadFactor keeps probe sequences short; spec range is
	// 0.5-0.7.
	DefaultMaxLoadFactor = 0.6
)

// Store is a fixed-capacity open-addressed hash map from an encoded RSID to
// a packed SNP value (see package snp).
type Store struct {
	keys   []int32
	values []uint64
	count  int
}

// New allocates a Store sized to hold at least expectedCount entries at
// maxLoadFactor without ever needing to resize. Capacity is rounded up to
// the next power of two, matching the sizing strategy used for grailbio's
// kmer index.
func New(expectedCount int, maxLoadFactor float64) *Store {
	if expectedCount <= 0 {
		expectedCount = DefaultExpectedCount
	}
	if maxLoadFactor <= 0 || maxLoadFactor >= 1 {
		maxLoadFactor = DefaultMaxLoadFactor
	}

	minSize := int(float64(expectedCount)/maxLoadFactor) + 1

	capacity := 1
	for capacity < minSize {
		capacity *= 2
	}

	keys := make([]int32, capacity)
	for i := range keys {
		keys[i] = emptyKey
	}

	return &Store{
		keys:   keys,
		values: make([]uint64, capacity),
	}
}

// hash mixes an encoded RSID (which may be negative) into a bucket index.
// The full 32-bit two's-complement pattern is hashed, so "rsN" and "iN"
// keys of equal magnitude (which differ only in sign) land in very
// different buckets.
func hash(key int32) uint64 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(key))
	return farm.Hash64(buf[:])
}

// bucket returns the starting probe index for key.
func (s *Store) bucket(key int32) int {
	return int(hash(key) % uint64(len(s.keys)))
}

// Insert sets key's value unconditionally, overwriting any existing entry
// for key. It fails with ErrFull if the store has no room for a new key.
func (s *Store) Insert(key int32, value uint64) error {
	capacity := len(s.keys)
	idx := s.bucket(key)

	for i := 0; i < capacity; i++ {
		switch s.keys[idx] {
		case emptyKey:
			s.keys[idx] = key
			s.values[idx] = value
			s.count++
			return nil
		case key:
			s.values[idx] = value
			return nil
		}

		idx++
		if idx == capacity {
			idx = 0
		}
	}

	return ErrFull
}

// Lookup returns the value stored for key, and whether it was found.
func (s *Store) Lookup(key int32) (uint64, bool) {
	if key == emptyKey {
		return 0, false
	}

	capacity := len(s.keys)
	idx := s.bucket(key)

	for i := 0; i < capacity; i++ {
		switch s.keys[idx] {
		case key:
			return s.values[idx], true
		case emptyKey:
			return 0, false
		}

		idx++
		if idx == capacity {
			idx = 0
		}
	}

	return 0, false
}

// Contains reports whether key has an entry in the store.
func (s *Store) Contains(key int32) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Len returns the number of occupied slots.
func (s *Store) Len() int {
	return s.count
}

// Capacity returns the fixed bucket capacity chosen at construction.
func (s *Store) Capacity() int {
	return len(s.keys)
}

// LoadFactor returns Len()/Capacity(), always strictly between 0 and 1 for
// a non-empty, non-full store.
func (s *Store) LoadFactor() float64 {
	if len(s.keys) == 0 {
		return 0
	}
	return float64(s.count) / float64(len(s.keys))
}

// Entry is one occupied (key, value) pair yielded by Iter.
type Entry struct {
	Key   int32
	Value uint64
}

// Iter calls yield for every occupied slot, in array order, which is
// stable across calls but not insertion order. Keys whose probe sequences
// collide occupy slots in the order they were inserted, so their relative
// iteration order depends on insertion order. It stops early if yield
// returns false.
func (s *Store) Iter(yield func(Entry) bool) {
	for i, k := range s.keys {
		if k == emptyKey {
			continue
		}
		if !yield(Entry{Key: k, Value: s.values[i]}) {
			return
		}
	}
}
