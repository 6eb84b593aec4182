// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for RPC tests
package fixtures

import (
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"

	ledgerfixtures "github.com/bitmark-inc/loanledger/fixtures"
)

// LogCategory - logger channel used by the tests
const LogCategory = ledgerfixtures.LogCategory

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	ledgerfixtures.SetupTestLogger()
}

// TeardownTestLogger - stop logging
func TeardownTestLogger() {
	ledgerfixtures.TeardownTestLogger()
}

// Certificate - a fresh self-signed PEM certificate and key for localhost
func Certificate(t *testing.T) (string, string) {
	validUntil := time.Now().Add(time.Hour)
	cert, key, err := certgen.NewTLSCertPair("loanledger test", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("generate certificate error: %s", err)
	}
	return string(cert), string(key)
}
