// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - CURVE key files and publisher sockets
package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	keyLength     = 32
)

// MakeKeyPair - write a new CURVE key pair as tagged hex files
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileAlreadyExists
	}

	// keys are returned in Z85 (ZeroMQ Base-85 Encoding)
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	publicText := taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	privateText := taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	if err := ioutil.WriteFile(publicKeyFileName, []byte(publicText), 0666); nil != err {
		return err
	}
	if err := ioutil.WriteFile(privateKeyFileName, []byte(privateText), 0600); nil != err {
		_ = os.Remove(publicKeyFileName)
		return err
	}
	return nil
}

// ReadPublicKeyFile - binary key from a "PUBLIC:" file
func ReadPublicKeyFile(name string) ([]byte, error) {
	data, err := ioutil.ReadFile(name)
	if nil != err {
		return nil, err
	}
	key, private, err := ParseKey(string(data))
	if nil != err {
		return nil, err
	}
	if private {
		return nil, fault.ErrInvalidPublicKeyFile
	}
	return key, nil
}

// ReadPrivateKeyFile - binary key from a "PRIVATE:" file
func ReadPrivateKeyFile(name string) ([]byte, error) {
	data, err := ioutil.ReadFile(name)
	if nil != err {
		return nil, err
	}
	key, private, err := ParseKey(string(data))
	if nil != err {
		return nil, err
	}
	if !private {
		return nil, fault.ErrInvalidPrivateKeyFile
	}
	return key, nil
}

// ParseKey - decode a tagged key, reporting whether it is private
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	private := false
	switch {
	case strings.HasPrefix(s, taggedPrivate):
		private = true
		s = s[len(taggedPrivate):]
	case strings.HasPrefix(s, taggedPublic):
		s = s[len(taggedPublic):]
	default:
		return nil, false, fault.ErrInvalidPublicKeyFile
	}

	key, err := hex.DecodeString(s)
	if nil != err || keyLength != len(key) {
		if private {
			return nil, true, fault.ErrInvalidPrivateKeyFile
		}
		return nil, false, fault.ErrInvalidPublicKeyFile
	}
	return key, private, nil
}
