// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/loanledger/fault"
	"github.com/bitmark-inc/loanledger/rpc/certificate"
	"github.com/bitmark-inc/loanledger/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key := fixtures.Certificate(t)

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	require.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "invalid PEM accepted")
}

func TestMakeSelfSigned(t *testing.T) {
	dir, err := ioutil.TempDir("", "certificate")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	err = certificate.MakeSelfSigned("test", certificateFile, keyFile, false, nil)
	require.Nil(t, err, "make certificate")

	_, err = tls.LoadX509KeyPair(certificateFile, keyFile)
	assert.Nil(t, err, "generated pair does not load")

	err = certificate.MakeSelfSigned("test", certificateFile, keyFile, false, nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "certificate overwritten")

	require.Nil(t, os.Remove(certificateFile), "remove certificate")
	err = certificate.MakeSelfSigned("test", certificateFile, keyFile, false, nil)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "key overwritten")
}
