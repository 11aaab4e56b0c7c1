// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/word"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func checkRequired(name string, value string) error {
	if "" == value {
		return fmt.Errorf("missing %s", name)
	}
	return nil
}

// empty value gives the fallback
func addressOrDefault(name string, value string, fallback common.Address) (common.Address, error) {
	if "" == value {
		return fallback, nil
	}
	return parseAddress(name, value)
}

func parseAddress(name string, value string) (common.Address, error) {
	if err := checkRequired(name, value); nil != err {
		return account.Zero, err
	}
	a, err := account.Parse(value)
	if nil != err {
		return account.Zero, fmt.Errorf("%s: %q error: %s", name, value, err)
	}
	return a, nil
}

// hex private key, with or without 0x
func parseKey(value string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X"))
	if nil != err {
		return nil, fmt.Errorf("key error: %s", err)
	}
	return key, nil
}

func parseAddresses(name string, value string) ([]common.Address, error) {
	if err := checkRequired(name, value); nil != err {
		return nil, err
	}
	items := strings.Split(value, ",")
	addresses := make([]common.Address, len(items))
	for i, s := range items {
		a, err := parseAddress(name, strings.TrimSpace(s))
		if nil != err {
			return nil, err
		}
		addresses[i] = a
	}
	return addresses, nil
}

func parseWords(name string, value string) ([]common.Hash, error) {
	if err := checkRequired(name, value); nil != err {
		return nil, err
	}
	items := strings.Split(value, ",")
	words := make([]common.Hash, len(items))
	for i, s := range items {
		w, err := word.Parse(strings.TrimSpace(s))
		if nil != err {
			return nil, fmt.Errorf("%s[%d]: %q error: %s", name, i, s, err)
		}
		words[i] = w
	}
	return words, nil
}

// shares are given as PERCENT:SHARE pairs
func parseShares(shares []string) ([]common.Hash, []common.Hash, error) {
	percents := make([]common.Hash, 0, len(shares))
	shareIds := make([]common.Hash, 0, len(shares))
	for _, s := range shares {
		pair := strings.SplitN(s, ":", 2)
		if 2 != len(pair) {
			return nil, nil, fmt.Errorf("share: %q is not PERCENT:SHARE", s)
		}
		p, err := word.Parse(pair[0])
		if nil != err {
			return nil, nil, fmt.Errorf("share: %q percent error: %s", s, err)
		}
		id, err := word.Parse(pair[1])
		if nil != err {
			return nil, nil, fmt.Errorf("share: %q id error: %s", s, err)
		}
		percents = append(percents, p)
		shareIds = append(shareIds, id)
	}
	return percents, shareIds, nil
}
