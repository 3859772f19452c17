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
	"context"
	"sync"
	"time"

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"golang.org/x/sync/errgroup"

	"github.com/triplekv/triplekv/proto"
)

const indexMapShards = 1024

// indexMap accumulates id -> vids under striped per-key exclusion, so
// many scan workers can append concurrently.
type indexMap struct {
	shards [indexMapShards]indexMapShard
}

type indexMapShard struct {
	mu sync.Mutex
	m  map[uint64][]proto.Vid
}

func (im *indexMap) add(id uint64, vid proto.Vid) {
	sh := &im.shards[id%indexMapShards]
	sh.mu.Lock()
	if sh.m == nil {
		sh.m = make(map[uint64][]proto.Vid)
	}
	sh.m[id] = append(sh.m[id], vid)
	sh.mu.Unlock()
}

// indexSet is the striped set counterpart, used in versatile mode.
type indexSet struct {
	shards [indexMapShards]indexSetShard
}

type indexSetShard struct {
	mu sync.Mutex
	m  map[uint64]struct{}
}

func (is *indexSet) add(id uint64) {
	sh := &is.shards[id%indexMapShards]
	sh.mu.Lock()
	if sh.m == nil {
		sh.m = make(map[uint64]struct{})
	}
	sh.m[id] = struct{}{}
	sh.mu.Unlock()
}

// InsertIndex derives the predicate and type indexes from the normal rows
// and publishes them as ordinary rows keyed by vid 0, so index lookups go
// through the unchanged lookup path. It must run exactly once, after all
// peers have finished InsertNormal.
func (s *Store) InsertIndex(ctx context.Context) error {
	span, ctx := trace.StartSpanFromContext(ctx, "")
	start := time.Now()

	var (
		pidxIn  indexMap // vids with an OUT-p row, served under key (0, IN, p)
		pidxOut indexMap // vids with an IN-p row, served under key (0, OUT, p)
		tidx    indexMap // vids per type, served under key (0, IN, t)
		vSet    indexSet // all vertices (versatile)
		pSet    indexSet // all predicates (versatile)
	)

	// scan every bucket of both headers in parallel
	total := s.numBuckets + s.numBucketsExt
	chunk := (total + uint64(s.cfg.NumEngines) - 1) / uint64(s.cfg.NumEngines)
	g, _ := errgroup.WithContext(ctx)
	for lo := uint64(0); lo < total; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > total {
			hi = total
		}
		g.Go(func() error {
			return s.scanBuckets(lo, hi, &pidxIn, &pidxOut, &tidx, &vSet, &pSet)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	span.Infof("prepared index info in %v", time.Since(start))

	start = time.Now()
	if err := s.insertIndexMap(&tidx, proto.In); err != nil {
		return err
	}
	if err := s.insertIndexMap(&pidxIn, proto.In); err != nil {
		return err
	}
	if err := s.insertIndexMap(&pidxOut, proto.Out); err != nil {
		return err
	}
	if s.cfg.Versatile {
		if err := s.insertIndexSet(&vSet, proto.In); err != nil {
			return err
		}
		if err := s.insertIndexSet(&pSet, proto.Out); err != nil {
			return err
		}
	}
	span.Infof("inserted index rows in %v", time.Since(start))
	return nil
}

// scanBuckets classifies every occupied data slot of buckets [b0, b1).
// A vid with an IN-p row is reachable over an OUT-p edge and vice versa,
// hence the direction flip between slot and target map.
func (s *Store) scanBuckets(b0, b1 uint64, pidxIn, pidxOut, tidx *indexMap, vSet, pSet *indexSet) error {
	for b := b0; b < b1; b++ {
		slotID := b * associativity
		for i := uint64(0); i < associativity-1; i, slotID = i+1, slotID+1 {
			key := proto.Key(s.words[slotID*2])
			if key.IsZero() {
				continue
			}
			vid, pid, dir := key.Vid(), key.Pid(), key.Dir()
			ptr := proto.Ptr(s.words[slotID*2+1])

			switch {
			case pid == proto.PredicateID:
				if s.cfg.Versatile {
					vSet.add(vid)
					for _, p := range s.entrySlice(ptr) {
						pSet.add(p)
					}
				}
			case pid == proto.TypeID:
				if dir == proto.In {
					// ingest reclassifies type triples; an (IN, TypeID)
					// row cannot have been produced legitimately
					return proto.ErrCorruptState
				}
				for _, t := range s.entrySlice(ptr) {
					tidx.add(t, vid)
				}
			default:
				if dir == proto.In {
					pidxOut.add(pid, vid)
				} else {
					pidxIn.add(pid, vid)
				}
			}
		}
	}
	return nil
}

func (s *Store) insertIndexMap(im *indexMap, d proto.Dir) error {
	edges := s.entries()
	for si := range im.shards {
		sh := &im.shards[si]
		for id, vids := range sh.m {
			off, err := s.allocEntries(uint64(len(vids)))
			if err != nil {
				return err
			}
			for i, vid := range vids {
				edges[off+uint64(i)] = vid
			}
			if _, err := s.insertKey(proto.NewKey(0, d, id), proto.NewPtr(uint64(len(vids)), off)); err != nil {
				return err
			}
		}
		sh.m = nil
	}
	return nil
}

// insertIndexSet publishes a versatile set as the single row
// (0, d, TypeID).
func (s *Store) insertIndexSet(is *indexSet, d proto.Dir) error {
	size := uint64(0)
	for si := range is.shards {
		size += uint64(len(is.shards[si].m))
	}
	if size == 0 {
		return nil
	}

	off, err := s.allocEntries(size)
	if err != nil {
		return err
	}
	edges := s.entries()
	cur := off
	for si := range is.shards {
		sh := &is.shards[si]
		for id := range sh.m {
			edges[cur] = id
			cur++
		}
		sh.m = nil
	}

	_, err = s.insertKey(proto.NewKey(0, d, proto.TypeID), proto.NewPtr(size, off))
	return err
}
