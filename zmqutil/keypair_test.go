// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/zmqutil"
)

func TestParseKey(t *testing.T) {
	hexKey := strings.Repeat("ab", 32)

	key, private, err := zmqutil.ParseKey("PUBLIC:" + hexKey + "\n")
	assert.Nil(t, err, "public key")
	assert.False(t, private, "public key reported as private")
	assert.Len(t, key, 32, "key length")

	_, private, err = zmqutil.ParseKey("  PRIVATE:" + hexKey)
	assert.Nil(t, err, "private key")
	assert.True(t, private, "private key reported as public")

	_, _, err = zmqutil.ParseKey("PRIVATE:" + hexKey[2:])
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "short private key")
	_, _, err = zmqutil.ParseKey("PUBLIC:zz")
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "bad hex")
	_, _, err = zmqutil.ParseKey(hexKey)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "untagged")
}

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "publisher.public")
	private := filepath.Join(dir, "publisher.private")

	require.Nil(t, zmqutil.MakeKeyPair(public, private), "make key pair")
	assert.Equal(t, fault.ErrKeyFileAlreadyExists, zmqutil.MakeKeyPair(public, private), "overwrite")

	publicKey, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public")
	assert.Len(t, publicKey, 32, "public length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private")
	assert.Len(t, privateKey, 32, "private length")

	_, err = zmqutil.ReadPrivateKeyFile(public)
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "public file read as private")
}
