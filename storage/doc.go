// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a single staged Transaction which is applied
// as one LevelDB batch on Commit; nothing is visible to other readers
// before that.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. asset id     = UTF-8 bytes of the loan token id (never contains 0x00)
// 4. account      = key variant ++ 32 byte ed25519 public key
// 5. count        = successive index value as big endian uint64 (8 bytes)
// 6. *others*     = byte values of various length
//
// Loan tokens:
//
//   A ++ asset id              - registered loan tokens
//                                data: packed LoanToken record
//
// Audit trail:
//
//   L ++ asset id              - number of transfer records for the token
//                                data: count
//   T ++ asset id ++ 0x00 ++ count
//                              - transfer records in append order
//                                data: packed TransferRecord
//
// Permissions:
//
//   O ++ account               - authorised originators
//                                data: 0x01
//
// Execution:
//
//   K ++ account               - last nonce accepted from the caller
//                                data: nonce as count
//   C ++ "admin"               - admin account bytes
//   C ++ "sequence"            - last ordering sequence
//                                data: count
package storage
