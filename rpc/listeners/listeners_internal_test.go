// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/loanledger/fault"
)

func TestParseListenAddress(t *testing.T) {
	parsed, err := parseListenAddress([]string{"127.0.0.1:2130", "[::1]:2130", "*:2131"})
	require.Nil(t, err, "parse")

	expected := []address{
		{network: "tcp4", listen: "127.0.0.1:2130"},
		{network: "tcp6", listen: "[::1]:2130"},
		{network: "tcp", listen: "[::]:2131"},
	}
	assert.Equal(t, expected, parsed, "wrong addresses")

	for _, bad := range []string{"localhost:2130", "2130", "127.0.0.1:", ""} {
		_, err := parseListenAddress([]string{bad})
		assert.Equal(t, fault.InvalidIpAddress, err, "accepted: %q", bad)
	}
}
