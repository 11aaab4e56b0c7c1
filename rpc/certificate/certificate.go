// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS configuration for the listeners
package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Get - TLS configuration and fingerprint of a PEM key pair
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// GetFiles - as Get but reading the PEM files
func GetFiles(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s read certificate: %q  error: %s", name, certificateFileName, err)
		return nil, [32]byte{}, err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s read key: %q  error: %s", name, keyFileName, err)
		return nil, [32]byte{}, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Fingerprint - SHA3-256 of the DER certificate
//
// openssl x509 -outform DER -in eqledgerd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
