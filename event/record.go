// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"

	"github.com/bitmark-inc/eqledgerd/fault"
)

// Record - named form of an event for JSON transport
type Record struct {
	Name string `json:"name"`
	Data Event  `json:"data"`
}

// Records - convert events for transport
func Records(events []Event) []Record {
	records := make([]Record, len(events))
	for i, e := range events {
		records[i] = Record{
			Name: e.Name(),
			Data: e,
		}
	}
	return records
}

// UnmarshalJSON - the name selects the concrete event type
func (r *Record) UnmarshalJSON(s []byte) error {
	var raw struct {
		Name string          `json:"name"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(s, &raw); nil != err {
		return err
	}
	e, err := Decode(raw.Name, raw.Data)
	if nil != err {
		return err
	}
	r.Name = raw.Name
	r.Data = e
	return nil
}

// Decode - JSON data of a named event
func Decode(name string, data []byte) (Event, error) {
	switch name {
	case "TransferSingle":
		e := TransferSingle{}
		err := json.Unmarshal(data, &e)
		return e, err
	case "TransferBatch":
		e := TransferBatch{}
		err := json.Unmarshal(data, &e)
		return e, err
	case "ApprovalForAll":
		e := ApprovalForAll{}
		err := json.Unmarshal(data, &e)
		return e, err
	case "RoleGranted":
		e := RoleGranted{}
		err := json.Unmarshal(data, &e)
		return e, err
	case "RoleRevoked":
		e := RoleRevoked{}
		err := json.Unmarshal(data, &e)
		return e, err
	case "RoleAdminChanged":
		e := RoleAdminChanged{}
		err := json.Unmarshal(data, &e)
		return e, err
	case "Initialized":
		e := Initialized{}
		err := json.Unmarshal(data, &e)
		return e, err
	case "Upgraded":
		e := Upgraded{}
		err := json.Unmarshal(data, &e)
		return e, err
	case "Version":
		e := Version{}
		err := json.Unmarshal(data, &e)
		return e, err
	default:
		return nil, fault.ErrUnknownEvent
	}
}
