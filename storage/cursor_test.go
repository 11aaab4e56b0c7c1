// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorFetch(t *testing.T) {
	r := setupRegion(t)
	defer r.Close()

	trx, _ := r.Begin()
	for _, k := range []string{"a1", "a2", "a3", "b1"} {
		r.Pools.Balances.Put([]byte(k), []byte("v-"+k))
	}
	// a neighbouring field must not leak into the range
	r.Pools.TotalSupply.Put([]byte("a0"), []byte("other"))
	require.Nil(t, trx.Commit(), "commit error")

	cursor := r.Pools.Balances.NewFetchCursor().Prefix([]byte("a"))

	first, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	require.Equal(t, 2, len(first), "wrong first count")
	assert.Equal(t, []byte("a1"), first[0].Key)
	assert.Equal(t, []byte("v-a2"), first[1].Value)

	second, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	require.Equal(t, 1, len(second), "wrong second count")
	assert.Equal(t, []byte("a3"), second[0].Key)

	all := 0
	err = r.Pools.Balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		all += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, 4, all, "wrong map count")

	rest, err := r.Pools.Balances.NewFetchCursor().Seek([]byte("a3")).Fetch(10)
	assert.Nil(t, err, "fetch error")
	require.Equal(t, 2, len(rest), "wrong seek count")
	assert.Equal(t, []byte("a3"), rest[0].Key)
	assert.Equal(t, []byte("b1"), rest[1].Key)

	_, err = cursor.Fetch(0)
	assert.NotNil(t, err, "zero count accepted")
}
