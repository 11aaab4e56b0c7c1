// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/eqledgerd/event"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/word"
)

func TestRecordDecode(t *testing.T) {
	events := []event.Event{
		event.TransferSingle{
			Operator: common.Address{1},
			To:       common.Address{2},
			Id:       word.FromUint64(3),
			Value:    word.FromUint64(4),
		},
		event.TransferBatch{
			Operator: common.Address{1},
			From:     common.Address{2},
			Ids:      []common.Hash{word.FromUint64(3)},
			Values:   []common.Hash{word.FromUint64(4)},
		},
		event.RoleAdminChanged{Role: word.FromUint64(5)},
		event.Upgraded{Implementation: "EqTokenV2"},
		event.Version{Value: 2},
	}

	buffer, err := json.Marshal(event.Records(events))
	require.Nil(t, err, "marshal error")

	var records []event.Record
	err = json.Unmarshal(buffer, &records)
	require.Nil(t, err, "unmarshal error")
	require.Equal(t, len(events), len(records), "wrong record count")

	for i, r := range records {
		assert.Equal(t, events[i].Name(), r.Name, "%d: wrong name", i)
		assert.Equal(t, events[i], r.Data, "%d: wrong data", i)
	}
}

func TestRecordUnknown(t *testing.T) {
	var r event.Record
	err := json.Unmarshal([]byte(`{"name":"Mystery","data":{}}`), &r)
	assert.Equal(t, fault.ErrUnknownEvent, err, "wrong error")
}
