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

//go:build linux || darwin

package source

import (
	"os"

	"golang.org/x/sys/unix"
)

// tryMmap memory-maps f read-only and advises the kernel the parser will
// scan it sequentially, mirroring the mmap+madvise setup grailbio/bio uses
// for its kmer index table. It returns ok=false (never an error) so the
// caller can fall back to slurping, e.g. for zero-length files or
// filesystems that don't support mmap.
func tryMmap(f *os.File, size int) (*View, bool) {
	if size <= 0 {
		return nil, false
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, false
	}

	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &View{
		data: data,
		closer: func() error {
			return unix.Munmap(data)
		},
	}, true
}
