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

package source

import (
	"bytes"
	"compress/bzip2"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// compressionFormat identifies the compression envelope, if any, detected
// on a file's leading bytes. 23andMe exports are usually shipped as plain
// text or gzip, but other DTC genotyping services (and archival pipelines)
// commonly wrap the same TSV shape in bzip2, xz, zstd or zlib, so it's
// worth detecting the same envelopes nucleo's own compress package does.
type compressionFormat int

const (
	formatNone compressionFormat = iota
	formatBzip2
	formatGzip
	formatLZ4
	formatXZ
	formatZlib
	formatZstd
)

func detectFormat(buf []byte) compressionFormat {
	switch {
	case bytes.HasPrefix(buf, []byte{0x42, 0x5A, 0x68}):
		return formatBzip2
	case bytes.HasPrefix(buf, gzipMagic):
		return formatGzip
	case bytes.HasPrefix(buf, []byte{0x04, 0x22, 0x4D, 0x18}):
		return formatLZ4
	case bytes.HasPrefix(buf, []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}):
		return formatXZ
	case bytes.HasPrefix(buf, []byte{0x78, 0x01}),
		bytes.HasPrefix(buf, []byte{0x78, 0x9C}),
		bytes.HasPrefix(buf, []byte{0x78, 0xDA}):
		return formatZlib
	case bytes.HasPrefix(buf, []byte{0x28, 0xB5, 0x2F, 0xFD}):
		return formatZstd
	default:
		return formatNone
	}
}

// decompress wraps r in the reader matching format, or returns r unwrapped
// for formatNone.
func decompress(format compressionFormat, r io.Reader) (io.ReadCloser, error) {
	switch format {
	case formatBzip2:
		return io.NopCloser(bzip2.NewReader(r)), nil
	case formatGzip:
		return gzip.NewReader(r)
	case formatLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case formatXZ:
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(xzReader), nil
	case formatZlib:
		return zlib.NewReader(r)
	case formatZstd:
		zstdReader, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{zstdReader}, nil
	default:
		return io.NopCloser(r), nil
	}
}

// zstdReadCloser adapts *zstd.Decoder (whose Close returns nothing) to
// io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}
