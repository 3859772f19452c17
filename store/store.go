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

// Package store implements the partitioned key-value graph store of one
// peer: a cluster-chaining hash table (the key region) over a single
// pre-allocated memory region, whose values are slices of a
// bump-allocated entry arena (the entry region).
//
// The memory region is the wire format. A remote peer computes slot and
// entry offsets from the shared geometry and reads the region directly
// through the transport, so the layout must be identical on every peer:
//
//	[ vertex[0] .. vertex[numSlots-1] | edge[0] .. edge[numEntries-1] ]
package store

import (
	"context"
	"sync"

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"github.com/cubefs/cubefs/blobstore/util/errors"
	"github.com/cubefs/cubefs/blobstore/util/taskpool"
	"golang.org/x/sync/singleflight"

	"github.com/triplekv/triplekv/metrics"
	"github.com/triplekv/triplekv/proto"
	"github.com/triplekv/triplekv/util"
)

// Transport is the one-sided read facility the store consumes. GetBuffer
// returns a per-thread pinned scratch region; RemoteRead blocks until the
// peer's region bytes [srcOff, srcOff+len(dst)) have been copied into dst.
type Transport interface {
	GetBuffer(tid int) []byte
	RemoteRead(ctx context.Context, tid int, peer uint64, dst []byte, srcOff uint64) error
}

type Store struct {
	cfg Config
	sid uint64
	tr  Transport

	// the pinned region, viewed as 64-bit words; slot i occupies words
	// [2i, 2i+1] and entry j occupies word 2*numSlots+j
	words []uint64

	geometry

	// bump allocation cursors
	lastExt   uint64
	lastEntry uint64

	entryLock sync.Mutex
	extLock   sync.Mutex

	// lock virtualization: a chain's lock is bucketLocks[head%numLocks]
	bucketLocks [numLocks]sync.Mutex

	cache     *readCache
	singleRun singleflight.Group
}

// NewStore allocates the memory region for peer sid and lays the key and
// entry regions over it. The region never grows.
func NewStore(cfg Config, sid uint64, tr Transport) (*Store, error) {
	cfg.applyDefaults()
	g, err := newGeometry(&cfg)
	if err != nil {
		return nil, err
	}
	if sid >= cfg.NumServers {
		return nil, errors.New("server id outside the fleet")
	}

	s := &Store{
		cfg:      cfg,
		sid:      sid,
		tr:       tr,
		geometry: g,
		words:    make([]uint64, g.numSlots*2+g.numEntries),
		cache:    newReadCache(cfg.EnableCaching),
	}
	return s, nil
}

// Init zeroes the key region and resets the allocation cursors, fanning
// the work out over NumEngines workers.
func (s *Store) Init(ctx context.Context) {
	span, _ := trace.StartSpanFromContext(ctx, "")

	pool := taskpool.New(s.cfg.NumEngines, s.cfg.NumEngines)
	defer pool.Close()

	keyWords := s.numSlots * 2
	chunk := (keyWords + uint64(s.cfg.NumEngines) - 1) / uint64(s.cfg.NumEngines)

	var wg sync.WaitGroup
	for lo := uint64(0); lo < keyWords; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > keyWords {
			hi = keyWords
		}
		wg.Add(1)
		pool.Run(func() {
			defer wg.Done()
			part := s.words[lo:hi]
			for i := range part {
				part[i] = 0
			}
		})
	}
	wg.Wait()

	s.entryLock.Lock()
	s.lastEntry = 0
	s.entryLock.Unlock()
	s.extLock.Lock()
	s.lastExt = 0
	s.extLock.Unlock()

	span.Debugf("initialized key region: %d slots", s.numSlots)
}

// entries returns the entry region.
func (s *Store) entries() []proto.Edge {
	return s.words[s.numSlots*2:]
}

// entrySlice resolves a published descriptor to its in-place adjacency
// slice. The slice is borrowed; it stays valid for the store's lifetime.
func (s *Store) entrySlice(ptr proto.Ptr) []proto.Edge {
	off := ptr.Off()
	return s.entries()[off : off+ptr.Size()]
}

// ReadRegion copies region bytes [off, off+len(dst)) into dst. It is the
// serving side of Transport.RemoteRead.
func (s *Store) ReadRegion(dst []byte, off uint64) error {
	size := uint64(len(dst))
	total := uint64(len(s.words)) * 8
	if off > total || size > total-off {
		return errors.Info(proto.ErrRemoteReadFailed, "read beyond region end")
	}
	copy(dst, util.WordsToBytes(s.words)[off:off+size])
	return nil
}

// Ownership returns the peer owning vid.
func (s *Store) Ownership(vid proto.Vid) uint64 {
	return vid % s.cfg.NumServers
}

// Usage is a point-in-time occupancy snapshot of the two regions.
type Usage struct {
	NumSlots      uint64 `json:"num_slots"`
	NumBuckets    uint64 `json:"num_buckets"`
	NumBucketsExt uint64 `json:"num_buckets_ext"`
	NumEntries    uint64 `json:"num_entries"`

	MainUsedSlots uint64 `json:"main_used_slots"`
	ExtUsedSlots  uint64 `json:"ext_used_slots"`
	AllocatedExt  uint64 `json:"allocated_ext_buckets"`
	UsedEntries   uint64 `json:"used_entries"`

	// populated from the versatile index rows when present
	NumVertices   uint64 `json:"num_vertices"`
	NumPredicates uint64 `json:"num_predicates"`
}

// Usage scans the key region headers. It does not alter state.
func (s *Store) Usage() Usage {
	u := Usage{
		NumSlots:      s.numSlots,
		NumBuckets:    s.numBuckets,
		NumBucketsExt: s.numBucketsExt,
		NumEntries:    s.numEntries,
	}

	u.MainUsedSlots = s.countUsedSlots(0, s.numBuckets)
	u.ExtUsedSlots = s.countUsedSlots(s.numBuckets, s.numBuckets+s.numBucketsExt)

	s.extLock.Lock()
	u.AllocatedExt = s.lastExt
	s.extLock.Unlock()

	s.entryLock.Lock()
	u.UsedEntries = s.lastEntry
	s.entryLock.Unlock()

	u.NumVertices = uint64(len(s.GetIndexEdgesLocal(0, proto.TypeID, proto.In)))
	u.NumPredicates = uint64(len(s.GetIndexEdgesLocal(0, proto.TypeID, proto.Out)))
	return u
}

func (s *Store) countUsedSlots(b0, b1 uint64) uint64 {
	used := uint64(0)
	for b := b0; b < b1; b++ {
		slot := b * associativity
		for i := uint64(0); i < associativity-1; i, slot = i+1, slot+1 {
			if !proto.Key(s.words[slot*2]).IsZero() {
				used++
			}
		}
	}
	return used
}

// ReportUsage logs the snapshot and publishes it to the metrics registry.
func (s *Store) ReportUsage(ctx context.Context) Usage {
	span, _ := trace.StartSpanFromContext(ctx, "")
	u := s.Usage()

	mainSlots := u.NumBuckets * associativity
	extSlots := u.NumBucketsExt * associativity
	span.Infof("main header: %d slots, used %.2f%% (%d slots)",
		mainSlots, pct(u.MainUsedSlots, mainSlots), u.MainUsedSlots)
	span.Infof("indirect header: %d slots, alloced %.2f%% (%d buckets), used %.2f%% (%d slots)",
		extSlots, pct(u.AllocatedExt, u.NumBucketsExt), u.AllocatedExt,
		pct(u.ExtUsedSlots, extSlots), u.ExtUsedSlots)
	span.Infof("entry region: %d entries, used %.2f%% (%d entries)",
		u.NumEntries, pct(u.UsedEntries, u.NumEntries), u.UsedEntries)
	span.Infof("vertices: %d, predicates: %d", u.NumVertices, u.NumPredicates)

	metrics.MainHeaderUsedSlots.Set(float64(u.MainUsedSlots))
	metrics.ExtHeaderUsedSlots.Set(float64(u.ExtUsedSlots))
	metrics.ExtHeaderAllocatedBuckets.Set(float64(u.AllocatedExt))
	metrics.EntryRegionUsed.Set(float64(u.UsedEntries))
	return u
}

func pct(part, whole uint64) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
