// Copyright 2023 The TripleKV Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package store

import (
	"sync"

	"github.com/triplekv/triplekv/proto"
)

const cacheItems = 100000

// readCache holds descriptors fetched from remote peers: one slot per
// stripe, overwritten unconditionally on insert. Staleness cannot occur
// because descriptors are immutable once published.
type readCache struct {
	enabled bool
	items   []cacheItem
}

type cacheItem struct {
	mu sync.Mutex
	v  proto.Vertex
}

func newReadCache(enabled bool) *readCache {
	c := &readCache{enabled: enabled}
	if enabled {
		c.items = make([]cacheItem, cacheItems)
	}
	return c
}

func (c *readCache) lookup(key proto.Key) (proto.Vertex, bool) {
	if !c.enabled {
		return proto.Vertex{}, false
	}
	item := &c.items[key.Hash()%cacheItems]
	item.mu.Lock()
	defer item.mu.Unlock()
	if item.v.Key == key {
		return item.v, true
	}
	return proto.Vertex{}, false
}

func (c *readCache) insert(v proto.Vertex) {
	if !c.enabled {
		return
	}
	item := &c.items[v.Key.Hash()%cacheItems]
	item.mu.Lock()
	item.v = v
	item.mu.Unlock()
}
