// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/eqledgerd/configuration"
	"github.com/bitmark-inc/eqledgerd/fault"
)

const sample = `
local M = {}

M.data_directory = "."
M.pidfile = "eqledgerd.pid"

M.database = {
    name = "test.leveldb",
}

M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:" .. (arg.port or "2130") },
    rate_limit = 20,
    rate_burst = 40,
    signature_window = 60,
}

M.publishing = {
    broadcast = { "127.0.0.1:2135" },
}

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func TestGet(t *testing.T) {
	dir, fileName := writeConfiguration(t, sample)
	defer os.RemoveAll(dir)

	c, err := configuration.Get(fileName, map[string]string{"port": "3130"})
	require.Nil(t, err, "configuration error")

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(c.DataDirectory), "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "eqledgerd.pid"), c.PidFile, "wrong pidfile")
	assert.Equal(t, filepath.Join(dir, "data", "test.leveldb"), c.Database.Name, "wrong database")

	assert.Equal(t, uint64(5), c.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, []string{"127.0.0.1:3130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, filepath.Join(dir, configuration.DefaultCertificateFile), c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, configuration.DefaultKeyFile), c.ClientRPC.PrivateKey, "wrong key")
	assert.Equal(t, float64(20), c.ClientRPC.RateLimit, "wrong rate limit")
	assert.Equal(t, 40, c.ClientRPC.RateBurst, "wrong rate burst")
	assert.Equal(t, 60, c.ClientRPC.SignatureWindow, "wrong signature window")

	assert.Equal(t, []string{"127.0.0.1:2135"}, c.Publishing.Broadcast, "wrong broadcast")
	assert.Equal(t, filepath.Join(dir, configuration.DefaultPrivateKeyFile), c.Publishing.PrivateKey, "wrong publish key")

	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, 4096, c.Logging.Size, "wrong log size")

	info, err := os.Stat(filepath.Join(dir, "data"))
	require.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database directory is not a directory")
}

func TestGetInvalid(t *testing.T) {
	items := []string{
		"return { data_directory = \"\" }",
		"return { data_directory = \".\", database = { name = \"a/b.leveldb\" } }",
		"return { data_directory = \"/nonexistent/eqledgerd\" }",
		"this is not lua",
	}

	for i, text := range items {
		dir, fileName := writeConfiguration(t, text)
		_, err := configuration.Get(fileName, nil)
		assert.NotNil(t, err, "%d: expected error", i)
		os.RemoveAll(dir)
	}
}

func TestParseNotTable(t *testing.T) {
	dir, fileName := writeConfiguration(t, "return 42")
	defer os.RemoveAll(dir)

	var c configuration.Configuration
	err := configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "wrong error")

	err = configuration.ParseConfigurationFile(fileName, c, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non pointer")
}
