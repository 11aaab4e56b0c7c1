// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadata - the URI template shared by every token
package metadata

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/storage"
)

// IDPlaceholder - replaced by clients with the hex form of an id
const IDPlaceholder = "{id}"

// Resource - single template for all ids
type Resource struct {
	uri storage.Handle
}

// New - bind to the template field
func New(uri storage.Handle) *Resource {
	return &Resource{
		uri: uri,
	}
}

// URI - the template, whatever the id
func (r *Resource) URI(id common.Hash) string {
	return string(r.uri.Get(nil))
}

// SetURI - store the template; only used during initialisation
func (r *Resource) SetURI(uri string) {
	r.uri.Put(nil, []byte(uri))
}

// Expand - substitute the id as 64 lowercase hex digits without prefix
func Expand(template string, id common.Hash) string {
	return strings.Replace(template, IDPlaceholder, hex.EncodeToString(id[:]), -1)
}
