// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package name_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/name"
)

func TestKnownValues(t *testing.T) {
	items := []struct {
		text  string
		value uint64
	}{
		{"", 0},
		{"eosio", 0x5530ea0000000000},
		{"eosio.token", 0x5530ea033482a600},
		{"hello", 0x6aa31a0000000000},
		{"a", 0x3000000000000000},
		{"zzzzzzzzzzzzj", 0xffffffffffffffff},
	}

	for i, item := range items {
		n, err := name.New(item.text)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, item.value, n.Value(), "%d: value of %q", i, item.text)
		assert.Equal(t, item.text, n.String(), "%d: text", i)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"mydata", "alice", "bob.1", "a.b.c", "zz5511", "table12345"} {
		n := name.MustNew(s)
		assert.Equal(t, s, n.String())
		assert.Equal(t, n, name.FromUint64(n.Value()))
	}
}

func TestInvalid(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{"UPPER", fault.ErrInvalidName},
		{"six6", fault.ErrInvalidName},
		{"with space", fault.ErrInvalidName},
		{"aaaaaaaaaaaaz", fault.ErrInvalidName},
		{"aaaaaaaaaaaaaa", fault.ErrInvalidNameLength},
	}

	for i, item := range items {
		_, err := name.New(item.text)
		assert.Equal(t, item.err, err, "%d: %q", i, item.text)
	}
	assert.Panics(t, func() {
		name.MustNew("Bad")
	})
}

func TestJSON(t *testing.T) {
	data := struct {
		Payer name.Name `json:"payer"`
	}{
		Payer: name.MustNew("alice"),
	}
	buffer, err := json.Marshal(data)
	assert.Nil(t, err)
	assert.Equal(t, `{"payer":"alice"}`, string(buffer))

	data.Payer = 0
	err = json.Unmarshal(buffer, &data)
	assert.Nil(t, err)
	assert.Equal(t, name.MustNew("alice"), data.Payer)
}
