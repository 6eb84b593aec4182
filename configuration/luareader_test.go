// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/loanledger/configuration"
)

type database struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type sample struct {
	DataDirectory string            `gluamapper:"data_directory" json:"data_directory"`
	Admin         string            `gluamapper:"admin" json:"admin"`
	Database      database          `gluamapper:"database" json:"database"`
	Broadcast     []string          `gluamapper:"broadcast" json:"broadcast"`
	Bandwidth     float64           `gluamapper:"bandwidth" json:"bandwidth"`
	Levels        map[string]string `gluamapper:"levels" json:"levels"`
}

const source = `
local M = {}
M.data_directory = "/var/lib/loanledger"
M.admin = "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj"
M.database = {
    directory = M.data_directory .. "/data",
    name = "ledger.leveldb",
}
M.broadcast = { "127.0.0.1:2140", "[::1]:2140" }
M.bandwidth = 25e6
M.levels = { DEFAULT = "info", rpc = "debug" }
return M
`

func TestParseString(t *testing.T) {
	var config sample
	err := configuration.ParseConfigurationString("test.conf", source, &config)
	require.Nil(t, err, "parse")

	assert.Equal(t, "/var/lib/loanledger", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "/var/lib/loanledger/data", config.Database.Directory, "wrong database directory")
	assert.Equal(t, "ledger.leveldb", config.Database.Name, "wrong database name")
	assert.Equal(t, []string{"127.0.0.1:2140", "[::1]:2140"}, config.Broadcast, "wrong broadcast")
	assert.Equal(t, 25e6, config.Bandwidth, "wrong bandwidth")
	assert.Equal(t, "debug", config.Levels["rpc"], "wrong level")
}

func TestParseFileSetsArg(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "loanledgerd.conf")
	contents := `return { data_directory = arg[0] }`
	require.Nil(t, ioutil.WriteFile(fileName, []byte(contents), 0600), "write")

	var config sample
	err = configuration.ParseConfigurationFile(fileName, &config)
	require.Nil(t, err, "parse")
	assert.Equal(t, fileName, config.DataDirectory, "arg[0] not the file name")
}

func TestParseErrors(t *testing.T) {
	var config sample

	err := configuration.ParseConfigurationString("bad.conf", `return {`, &config)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationString("bad.conf", `return 42`, &config)
	assert.NotNil(t, err, "non table accepted")

	err = configuration.ParseConfigurationFile("/nonexistent/loanledgerd.conf", &config)
	assert.NotNil(t, err, "missing file accepted")
}
