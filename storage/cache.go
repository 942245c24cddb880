// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

const (
	tableCacheExpiration = 2 * time.Minute
	tableCacheCleanup    = 1 * time.Minute
)

// metadata of one table as last committed
//
// a deleted entry records that the table no longer exists
type cachedTable struct {
	info    tableInfo
	deleted bool
}

// tableCache - committed table metadata shared by all invocations
type tableCache struct {
	shared *cache.Cache
}

func newTableCache() *tableCache {
	return &tableCache{
		shared: cache.New(tableCacheExpiration, tableCacheCleanup),
	}
}

func (c *tableCache) get(key string) (cachedTable, bool) {
	obj, found := c.shared.Get(key)
	if !found {
		return cachedTable{}, false
	}
	return obj.(cachedTable), true
}

// make the metadata staged by a committed invocation visible
func (c *tableCache) publish(staged map[string]cachedTable) {
	for key, entry := range staged {
		c.shared.Set(key, entry, cache.DefaultExpiration)
	}
}

func (c *tableCache) clear() {
	c.shared.Flush()
}
