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

// Package rsid converts between the textual RSID form used by 23andMe
// ("rs123", "i456") and the single signed 32-bit integer keyspace the SNP
// store is keyed on: "rs" IDs map to positive integers, "i" IDs to negative
// ones, so the two namespaces can never collide.
package rsid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalid is returned when a string is neither a valid "rs" nor "i" RSID.
var ErrInvalid = errors.New("rsid: invalid RSID")

// Encode converts a textual RSID into its signed integer form. "rsN" maps to
// +N, "iN" maps to -N. Encode fails if the prefix is unrecognised, the
// remainder isn't all decimal digits, or N overflows int32.
func Encode(s string) (int32, error) {
	var negative bool
	var digits string

	switch {
	case strings.HasPrefix(s, "rs"):
		digits = s[2:]
	case strings.HasPrefix(s, "i"):
		digits = s[1:]
		negative = true
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalid, s)
	}

	if negative {
		return -int32(n), nil
	}
	return int32(n), nil
}

// Decode converts an encoded RSID back into its textual form: positive
// values become "rsN", negative values become "iN". Decode(0) returns "".
func Decode(key int32) string {
	switch {
	case key > 0:
		return "rs" + strconv.FormatInt(int64(key), 10)
	case key < 0:
		return "i" + strconv.FormatInt(int64(-key), 10)
	default:
		return ""
	}
}
