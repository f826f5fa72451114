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

// Package source obtains a contiguous, read-only byte view of a 23andMe raw
// genome file for the parser to scan. It prefers memory-mapping the file
// with sequential read-ahead advice, matching how grailbio/bio maps its
// kmer index table, and falls back to slurping the file into a heap buffer
// when mmap isn't available or the file is compressed.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIO wraps any failure to open or read the underlying file.
var ErrIO = errors.New("source: i/o error")

var gzipMagic = []byte{0x1f, 0x8b}

const sniffLen = 6

// View is a read-only byte view of a genome file's contents. It is valid
// until Close is called; the parser must be done with it by then.
type View struct {
	data   []byte
	closer func() error
}

// Bytes returns the file contents. The returned slice must not be
// retained past Close.
func (v *View) Bytes() []byte {
	return v.data
}

// Close releases any resources (mapped memory, open file descriptors)
// backing the view.
func (v *View) Close() error {
	if v.closer == nil {
		return nil
	}
	closer := v.closer
	v.closer = nil
	return closer()
}

// Open obtains a byte view of the file at path. Compressed 23andMe exports
// (a common distribution habit, e.g. "genome_Name_v5_Full_<date>.txt.gz",
// but also seen bzip2- or zstd-wrapped out of archival pipelines) are
// transparently decompressed into a heap buffer; everything else is
// memory-mapped where supported, or slurped otherwise.
func Open(path string) (*View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}

	if info.Size() == 0 {
		return &View{data: nil}, nil
	}

	var magic [sniffLen]byte
	n, _ := f.Read(magic[:])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}

	if format := detectFormat(magic[:n]); format != formatNone {
		return slurpCompressed(f, format)
	}

	if view, ok := tryMmap(f, int(info.Size())); ok {
		return view, nil
	}

	return slurp(f)
}

func slurp(f *os.File) (*View, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}
	return &View{data: data}, nil
}

func slurpCompressed(f *os.File, format compressionFormat) (*View, error) {
	r, err := decompress(format, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}
	return &View{data: data}, nil
}
