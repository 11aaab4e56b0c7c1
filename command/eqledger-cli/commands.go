// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func idFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "id, i",
		Value: "",
		Usage: "*token `ID` as 0x hex or decimal",
	}
}

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "info",
			Usage:  "display eqledgerd status",
			Action: runInfo,
		},
		{
			Name:      "initialise",
			Usage:     "deploy and initialise the logic module",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "module, M",
					Value: "",
					Usage: " logic module `NAME` default is the first version",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*metadata `TEMPLATE` containing {id}",
				},
				cli.StringFlag{
					Name:  "minter, m",
					Value: "",
					Usage: "*initial minter `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "burner, b",
					Value: "",
					Usage: "*initial burner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "admin, A",
					Value: "",
					Usage: "*initial admin `ADDRESS`",
				},
			},
			Action: runInitialise,
		},
		{
			Name:      "generate-id",
			Usage:     "register the token id of a share structure",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "originator, o",
					Value: "",
					Usage: "*originator `ADDRESS`",
				},
				cli.StringSliceFlag{
					Name:  "share, s",
					Usage: " share as `PERCENT:SHARE` (repeatable)",
				},
			},
			Action: runGenerateID,
		},
		{
			Name:      "mint",
			Usage:     "create tokens of one or more ids",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "ids, i",
					Value: "",
					Usage: "*comma separated token `IDS`",
				},
				cli.StringFlag{
					Name:  "amounts, n",
					Value: "",
					Usage: "*comma separated `AMOUNTS`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: " 0x prefixed hex `DATA`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "burn",
			Usage:     "destroy tokens of one or more ids",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*holding `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "ids, i",
					Value: "",
					Usage: "*comma separated token `IDS`",
				},
				cli.StringFlag{
					Name:  "amounts, n",
					Value: "",
					Usage: "*comma separated `AMOUNTS`",
				},
			},
			Action: runBurn,
		},
		{
			Name:      "transfer",
			Usage:     "move tokens of one or more ids",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: " holding `ADDRESS` default is the caller",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "ids, i",
					Value: "",
					Usage: "*comma separated token `IDS`",
				},
				cli.StringFlag{
					Name:  "amounts, n",
					Value: "",
					Usage: "*comma separated `AMOUNTS`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: " 0x prefixed hex `DATA`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "approve",
			Usage:     "approve or disapprove an operator for all of the caller's tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "revoke, r",
					Usage: " remove the approval",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "is-approved",
			Usage:     "display operator approval",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, O",
					Value: "",
					Usage: " owner `ADDRESS` default is the caller",
				},
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator `ADDRESS`",
				},
			},
			Action: runIsApproved,
		},
		{
			Name:      "balance",
			Usage:     "display balances of accounts and ids",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "accounts, A",
					Value: "",
					Usage: " comma separated `ADDRESSES` default is the caller",
				},
				cli.StringFlag{
					Name:  "ids, i",
					Value: "",
					Usage: "*comma separated token `IDS`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "token",
			Usage:     "display existence, supply and metadata of a token id",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag()},
			Action:    runToken,
		},
		{
			Name:      "role",
			Usage:     "grant, revoke or renounce a role",
			ArgsUsage: "grant|revoke|renounce\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "role, r",
					Value: "",
					Usage: "*role `NAME` or 0x hex",
				},
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: " member `ADDRESS` default is the caller",
				},
			},
			Action: runRole,
		},
		{
			Name:      "has-role",
			Usage:     "display role membership and its admin role",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "role, r",
					Value: "",
					Usage: "*role `NAME` or 0x hex",
				},
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: " member `ADDRESS` default is the caller",
				},
			},
			Action: runHasRole,
		},
		{
			Name:   "logic-version",
			Usage:  "display the logic version and emit a Version event",
			Action: runLogicVersion,
		},
		{
			Name:      "upgrade",
			Usage:     "replace the logic module",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "module, M",
					Value: "",
					Usage: "*logic module `NAME`",
				},
			},
			Action: runUpgrade,
		},
		{
			Name:      "token-id",
			Usage:     "compute a token id without connecting",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "originator, o",
					Value: "",
					Usage: "*originator `ADDRESS`",
				},
				cli.StringSliceFlag{
					Name:  "share, s",
					Usage: " share as `PERCENT:SHARE` (repeatable)",
				},
			},
			Action: runTokenID,
		},
		{
			Name:   "key",
			Usage:  "generate a signing key and display its account",
			Action: runKey,
		},
		{
			Name:      "slot",
			Usage:     "display storage slots of namespaces without connecting",
			ArgsUsage: "NAMESPACE...",
			Action:    runSlot,
		},
		{
			Name:  "version",
			Usage: "display eqledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
