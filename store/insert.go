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
	"sync/atomic"

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"golang.org/x/sync/errgroup"

	"github.com/triplekv/triplekv/proto"
)

// insertKey places key into a slot of the chain headed by its hash bucket
// and publishes ptr with it, returning the slot id. The descriptor word is
// stored before the key word is release-stored, so a lock-free reader that
// observes the key also observes the descriptor. Callers must have written
// the entries [ptr.Off(), ptr.Off()+ptr.Size()) beforehand.
//
// One virtualized lock covers the whole chain walk; inserts to chains whose
// head buckets map to different locks run in parallel.
func (s *Store) insertKey(key proto.Key, ptr proto.Ptr) (uint64, error) {
	bucketID := key.Hash() % s.numBuckets
	lockID := bucketID % numLocks

	s.bucketLocks[lockID].Lock()
	defer s.bucketLocks[lockID].Unlock()

	for {
		slotID := bucketID * associativity

		// the last slot of each bucket is reserved for the link to an
		// overflow bucket
		for i := uint64(0); i < associativity-1; i, slotID = i+1, slotID+1 {
			k := proto.Key(s.words[slotID*2])
			if k == key {
				return 0, proto.ErrDuplicateKey
			}
			if k.IsZero() {
				s.publishSlot(slotID, key, ptr)
				return slotID, nil
			}
		}

		// bucket full; follow the chain if it already extends
		link := proto.Key(s.words[slotID*2])
		if !link.IsZero() {
			bucketID = link.Vid()
			continue
		}

		// link a fresh overflow bucket. The first slot of the new bucket
		// is published before the link word, so a reader that sees the
		// link finds a consistent downstream bucket.
		ext, err := s.allocExtBucket()
		if err != nil {
			return 0, err
		}
		first := ext * associativity
		s.publishSlot(first, key, ptr)
		atomic.StoreUint64(&s.words[slotID*2], uint64(proto.NewKey(ext, 0, 0)))
		return first, nil
	}
}

func (s *Store) publishSlot(slotID uint64, key proto.Key, ptr proto.Ptr) {
	s.words[slotID*2+1] = uint64(ptr)
	atomic.StoreUint64(&s.words[slotID*2], uint64(key))
}

// isTypeObject reports whether o is a type identifier rather than a
// vertex. Objects of type triples sort below MinNormalID, so they form a
// contiguous prefix of the (o, p, s)-sorted stream.
func (s *Store) isTypeObject(o proto.Vid) bool {
	return o >= proto.TypeID+1 && o < s.cfg.MinNormalID
}

// InsertNormal builds the normal adjacency rows from two sorted triple
// streams: spo sorted by (s, p, o) and ops sorted by (o, p, s). Type
// triples at the head of ops are skipped here; the indexer turns them
// into type-index rows. In versatile mode it additionally emits the
// per-vertex predicate-set rows.
func (s *Store) InsertNormal(ctx context.Context, spo, ops []proto.Triple) error {
	span, ctx := trace.StartSpanFromContext(ctx, "")

	typeTriples := uint64(0)
	for typeTriples < uint64(len(ops)) && s.isTypeObject(ops[typeTriples].O) {
		typeTriples++
	}

	off, err := s.allocEntries(uint64(len(spo)) + uint64(len(ops)) - typeTriples)
	if err != nil {
		return err
	}

	// the two walks write disjoint entry ranges and the chain locks make
	// key insertion safe, so they run concurrently
	var spoGroups, opsGroups uint64
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.insertNormalRows(spo, off, proto.Out)
		spoGroups = n
		return err
	})
	g.Go(func() error {
		n, err := s.insertNormalRows(ops[typeTriples:], off+uint64(len(spo)), proto.In)
		opsGroups = n
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if s.cfg.Versatile {
		poff, err := s.allocEntries(spoGroups + opsGroups)
		if err != nil {
			return err
		}
		if err := s.insertPredicateRows(spo, poff, proto.Out); err != nil {
			return err
		}
		if err := s.insertPredicateRows(ops[typeTriples:], poff+spoGroups, proto.In); err != nil {
			return err
		}
	}

	span.Infof("inserted normal rows: %d spo groups, %d ops groups, %d type triples skipped",
		spoGroups, opsGroups, typeTriples)
	return nil
}

// insertNormalRows walks one sorted stream in groups of equal (vertex,
// predicate), writes each group's opposite endpoints into contiguous
// entries starting at off, and publishes one row per group. Returns the
// number of groups.
func (s *Store) insertNormalRows(ts []proto.Triple, off uint64, d proto.Dir) (uint64, error) {
	edges := s.entries()
	groups := uint64(0)

	this, other := tripleFields(d)

	i := 0
	for i < len(ts) {
		vid, pid := this(ts[i]), ts[i].P
		if err := checkRowIDs(s.cfg.MinNormalID, vid, pid); err != nil {
			return groups, err
		}

		j := i + 1
		for j < len(ts) && this(ts[j]) == vid && ts[j].P == pid {
			j++
		}

		for k := i; k < j; k++ {
			edges[off+uint64(k-i)] = other(ts[k])
		}
		if _, err := s.insertKey(proto.NewKey(vid, d, pid), proto.NewPtr(uint64(j-i), off)); err != nil {
			return groups, err
		}

		off += uint64(j - i)
		groups++
		i = j
	}
	return groups, nil
}

// insertPredicateRows emits, per vertex of the stream, the row
// (vid, d, PredicateID) holding its distinct predicates in first
// appearance order.
func (s *Store) insertPredicateRows(ts []proto.Triple, off uint64, d proto.Dir) error {
	edges := s.entries()
	this, _ := tripleFields(d)

	i := 0
	for i < len(ts) {
		vid := this(ts[i])
		start := off

		j := i
		for j < len(ts) && this(ts[j]) == vid {
			pid := ts[j].P
			edges[off] = pid
			off++
			for j < len(ts) && this(ts[j]) == vid && ts[j].P == pid {
				j++
			}
		}

		if _, err := s.insertKey(proto.NewKey(vid, d, proto.PredicateID), proto.NewPtr(off-start, start)); err != nil {
			return err
		}
		i = j
	}
	return nil
}

// tripleFields selects the keyed endpoint and the stored endpoint of a
// triple for the given direction: subjects key OUT rows, objects key IN
// rows.
func tripleFields(d proto.Dir) (this, other func(proto.Triple) proto.Vid) {
	if d == proto.Out {
		return func(t proto.Triple) proto.Vid { return t.S },
			func(t proto.Triple) proto.Vid { return t.O }
	}
	return func(t proto.Triple) proto.Vid { return t.O },
		func(t proto.Triple) proto.Vid { return t.S }
}

func checkRowIDs(minNormalID uint64, vid proto.Vid, pid proto.Pid) error {
	if vid > proto.MaxVid || pid > proto.MaxPid {
		return proto.ErrKeyOutOfRange
	}
	if vid < minNormalID {
		// a type object past the sorted prefix, or a reserved id used
		// as a vertex
		return proto.ErrInvalidTripleOrder
	}
	return nil
}
