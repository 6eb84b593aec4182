// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// MaxVarintLength - bytes taken by the largest packed uint64
const MaxVarintLength = 9

// AppendVarint - append the packed form of value to buffer
//
// seven bits per byte, least significant first, with the top bit set
// while more bytes follow; a ninth byte holds the last eight bits whole
// so a uint64 never takes more than MaxVarintLength bytes
func AppendVarint(buffer []byte, value uint64) []byte {
	for n := 1; n < MaxVarintLength; n += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// Varint - decode a packed value from the front of buffer
//
// returns the value and the number of bytes it used, or 0, 0 when the
// buffer ends before the value does
func Varint(buffer []byte) (uint64, int) {
	value := uint64(0)
	for i, b := range buffer {
		shift := 7 * uint(i)
		if MaxVarintLength-1 == i {
			return value | uint64(b)<<shift, i + 1
		}
		value |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return value, i + 1
		}
	}
	return 0, 0
}

// VarintInRange - decode a packed value that must lie in minimum..maximum
//
// a value outside the range or a bad range gives 0, 0 like a truncated
// buffer does
func VarintInRange(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum <= minimum {
		return 0, 0
	}
	value, n := Varint(buffer)
	if 0 == n || value < uint64(minimum) || value > uint64(maximum) {
		return 0, 0
	}
	return int(value), n
}
