// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/configuration"
	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/rpc/certificate"
	"github.com/bitmark-inc/eqledgerd/slot"
	"github.com/bitmark-inc/eqledgerd/storage"
	"github.com/bitmark-inc/eqledgerd/tokenid"
	"github.com/bitmark-inc/eqledgerd/word"
	"github.com/bitmark-inc/eqledgerd/zmqutil"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, configuration.DefaultCertificateFile)
		privateKeyFilename := getFilenameWithDirectory(arguments, configuration.DefaultKeyFile)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publisher-key", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, configuration.DefaultPublicKeyFile)
		privateKeyFilename := getFilenameWithDirectory(arguments, configuration.DefaultPrivateKeyFile)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "slot", "s":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing namespace argument")
		}
		for _, namespace := range arguments {
			s, err := slot.New(namespace)
			if nil != err {
				exitwithstatus.Message("error: namespace: %q  error: %s", namespace, err)
			}
			fmt.Printf("%s  %s\n", s, namespace)
		}

	case "token-id", "id":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing originator argument")
		}
		id, err := tokenID(arguments[0], arguments[1:])
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("%s\n", id)

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "info", "i":
		return false // defer processing until database is loaded

	case "balances", "b":
		return false // defer processing until database is loaded

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+configuration.DefaultKeyFile)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+configuration.DefaultCertificateFile)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+configuration.DefaultKeyFile)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+configuration.DefaultCertificateFile)
		fmt.Printf("\n")

		fmt.Printf("  gen-publisher-key [DIR]    (publish) - create private key in: %q\n", "DIR/"+configuration.DefaultPrivateKeyFile)
		fmt.Printf("                                        and the public key in: %q\n", "DIR/"+configuration.DefaultPublicKeyFile)
		fmt.Printf("\n")

		fmt.Printf("  slot NAMESPACE...          (s)      - display the storage slot of each namespace\n")
		fmt.Printf("\n")

		fmt.Printf("  token-id ORIGINATOR [PERCENT:SHARE...]\n")
		fmt.Printf("                             (id)     - display the token id derived from its shares\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  info                       (i)      - display the deployed logic module and height\n")
		fmt.Printf("\n")

		fmt.Printf("  balances [ID]              (b)      - list every non-zero balance, optionally of one token\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

		_, fingerprint, err := certificate.GetFiles(logger.New("config"), "client_rpc", options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			fmt.Printf("rpc certificate error: %s\n", err)
		} else {
			fmt.Printf("rpc fingerprint: %x\n", fingerprint)
		}

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// storage is open and the logic module is restored so these commands
// can read the ledger
func processDataCommand(log *logger.L, arguments []string, region *storage.Region, executor host.Executor) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "info", "i":
		implementation := executor.Implementation()
		logicVersion := uint64(0)
		if "" != implementation {
			err := executor.Query(account.Zero, func(logic host.Logic, _ *call.Context) error {
				logicVersion = logic.Version()
				return nil
			})
			if nil != err {
				exitwithstatus.Message("query error: %s", err)
			}
		}
		log.Infof("info: implementation: %q  version: %d", implementation, logicVersion)
		fmt.Printf("implementation: %q\n", implementation)
		fmt.Printf("logic version:  %d\n", logicVersion)
		fmt.Printf("height:         %d\n", executor.Height())

	case "balances", "b":
		cursor := region.Pools.Balances.NewFetchCursor()
		if len(arguments) > 1 {
			id, err := word.Parse(arguments[1])
			if nil != err {
				exitwithstatus.Message("error: token id: %q  error: %s", arguments[1], err)
			}
			cursor = cursor.Prefix(id[:])
		}
		n, err := dumpBalances(os.Stdout, cursor)
		if nil != err {
			exitwithstatus.Message("balances error: %s", err)
		}
		log.Infof("balances: listed: %d", n)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// shares are given as PERCENT:SHARE pairs
func tokenID(originator string, shares []string) (common.Hash, error) {
	o, err := account.Parse(originator)
	if nil != err {
		return word.Zero, err
	}

	percents := make([]common.Hash, 0, len(shares))
	shareIds := make([]common.Hash, 0, len(shares))
	for _, s := range shares {
		pair := strings.SplitN(s, ":", 2)
		if 2 != len(pair) {
			return word.Zero, fmt.Errorf("share: %q is not PERCENT:SHARE", s)
		}
		p, err := word.Parse(pair[0])
		if nil != err {
			return word.Zero, err
		}
		id, err := word.Parse(pair[1])
		if nil != err {
			return word.Zero, err
		}
		percents = append(percents, p)
		shareIds = append(shareIds, id)
	}
	return tokenid.Derive(percents, shareIds, o), nil
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

// balance keys are: id ++ account
func dumpBalances(w io.Writer, cursor *storage.FetchCursor) (int, error) {
	n := 0
	for {
		elements, err := cursor.Fetch(100)
		if nil != err {
			return n, err
		}
		if 0 == len(elements) {
			return n, nil
		}
		for _, e := range elements {
			if common.HashLength+common.AddressLength != len(e.Key) {
				return n, fmt.Errorf("balance key: %x has wrong length", e.Key)
			}
			id := common.BytesToHash(e.Key[:common.HashLength])
			a := common.BytesToAddress(e.Key[common.HashLength:])
			balance, err := word.FromBytes(e.Value)
			if nil != err {
				return n, err
			}
			fmt.Fprintf(w, "%s  %s  %s\n", id.Hex(), a.Hex(), balance.Big())
			n += 1
		}
	}
}
