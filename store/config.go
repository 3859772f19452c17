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
	"runtime"

	"github.com/cubefs/cubefs/blobstore/util/errors"
	"github.com/triplekv/triplekv/proto"
)

const (
	// associativity is the number of slots per bucket; the last slot of
	// each bucket is reserved as the chain link to an overflow bucket.
	associativity = 8

	// mainRatio is the percentage of buckets placed in the main header;
	// the rest form the overflow header.
	mainRatio = 80

	// numLocks virtualizes the per-chain locks over a fixed array, so
	// lock memory stays constant no matter how many buckets there are.
	// Changing it changes which chains contend, so it is a constant,
	// not configuration.
	numLocks = 1024
)

type Config struct {
	// NumKeysMillion sizes the key region in millions of slots.
	NumKeysMillion uint64 `json:"num_keys_million"`
	// NumSlots overrides NumKeysMillion with an exact slot count, for
	// small deployments and tests.
	NumSlots uint64 `json:"num_slots"`

	// MemstoreSizeGB sizes the whole memory region.
	MemstoreSizeGB uint64 `json:"memstore_size_gb"`
	// MemBytes overrides MemstoreSizeGB with an exact byte count.
	MemBytes uint64 `json:"mem_bytes"`

	NumServers uint64 `json:"num_servers"`
	NumEngines int    `json:"num_engines"`

	EnableCaching bool `json:"enable_caching"`

	// Versatile additionally stores per-vertex predicate sets and the
	// global vertex/predicate sets, at the cost of extra entries.
	Versatile bool `json:"versatile"`

	// MinNormalID is the boundary between predicate/type identifiers
	// and vertex identifiers. Objects below it are type objects.
	MinNormalID uint64 `json:"min_normal_id"`
}

// geometry is the derived sizing of the two regions. It is identical on
// every peer running the same configuration; remote reads depend on that.
type geometry struct {
	numSlots      uint64
	numBuckets    uint64
	numBucketsExt uint64
	numEntries    uint64
	memBytes      uint64
}

func (cfg *Config) applyDefaults() {
	if cfg.NumSlots == 0 {
		cfg.NumSlots = cfg.NumKeysMillion * 1000 * 1000
	}
	if cfg.MemBytes == 0 {
		cfg.MemBytes = cfg.MemstoreSizeGB << 30
	}
	if cfg.NumServers == 0 {
		cfg.NumServers = 1
	}
	if cfg.NumEngines <= 0 {
		cfg.NumEngines = runtime.NumCPU()
	}
	if cfg.MinNormalID == 0 {
		cfg.MinNormalID = proto.MinNormalID
	}
}

func newGeometry(cfg *Config) (geometry, error) {
	g := geometry{numSlots: cfg.NumSlots, memBytes: cfg.MemBytes}

	if g.numSlots == 0 || g.numSlots%associativity != 0 {
		return g, errors.New("num_slots must be a positive multiple of the bucket associativity")
	}
	if cfg.MinNormalID-1 > proto.MaxPid {
		return g, errors.New("min_normal_id exceeds the packed predicate width")
	}

	g.numBuckets = g.numSlots / associativity * mainRatio / 100
	g.numBucketsExt = g.numSlots/associativity - g.numBuckets
	if g.numBuckets == 0 {
		return g, errors.New("key region too small for a main header bucket")
	}

	slotBytes := g.numSlots * proto.VertexSize
	if g.memBytes <= slotBytes {
		return g, proto.ErrMemRegionTooSmall
	}
	g.numEntries = (g.memBytes - slotBytes) / proto.EdgeSize
	if g.numEntries > proto.MaxOff {
		return g, errors.New("entry region exceeds the packed offset width")
	}

	return g, nil
}
