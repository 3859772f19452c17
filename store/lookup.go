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
	"strconv"
	"sync/atomic"

	"github.com/cubefs/cubefs/blobstore/util/errors"

	"github.com/triplekv/triplekv/proto"
	"github.com/triplekv/triplekv/util"
)

// vertexLocal walks the chain headed by the key's hash bucket. It is
// lock-free: the key word is acquire-loaded, and a writer release-stores
// it only after the descriptor word, so a hit always carries a fully
// published descriptor.
func (s *Store) vertexLocal(key proto.Key) (proto.Vertex, bool) {
	bucketID := key.Hash() % s.numBuckets
	for {
		slotID := bucketID * associativity
		for i := uint64(0); i < associativity-1; i, slotID = i+1, slotID+1 {
			k := proto.Key(atomic.LoadUint64(&s.words[slotID*2]))
			if k == key {
				return proto.Vertex{Key: k, Ptr: proto.Ptr(s.words[slotID*2+1])}, true
			}
		}
		link := proto.Key(atomic.LoadUint64(&s.words[slotID*2]))
		if link.IsZero() {
			return proto.Vertex{}, false
		}
		bucketID = link.Vid()
	}
}

// GetEdgesLocal returns the adjacency list of (vid, d, pid) from the
// local regions, or an empty slice when the key is absent. The slice is
// borrowed in place from the entry region and stays valid for the
// store's lifetime.
func (s *Store) GetEdgesLocal(tid int, vid proto.Vid, d proto.Dir, pid proto.Pid) []proto.Edge {
	v, ok := s.vertexLocal(proto.NewKey(vid, d, pid))
	if !ok {
		return nil
	}
	return s.entrySlice(v.Ptr)
}

// GetIndexEdgesLocal returns an index row: the vids grouped under
// (0, d, pid) by the indexer.
func (s *Store) GetIndexEdgesLocal(tid int, pid proto.Pid, d proto.Dir) []proto.Edge {
	return s.GetEdgesLocal(tid, 0, d, pid)
}

// GetEdgesGlobal routes by key ownership: local lookups stay in memory,
// remote ones read the owner's region through the transport. Remote
// results live in the thread's scratch buffer and are valid until the
// next remote read on the same tid.
func (s *Store) GetEdgesGlobal(ctx context.Context, tid int, vid proto.Vid, d proto.Dir, pid proto.Pid) ([]proto.Edge, error) {
	if s.Ownership(vid) == s.sid {
		return s.GetEdgesLocal(tid, vid, d, pid), nil
	}
	return s.getEdgesRemote(ctx, tid, vid, d, pid)
}

// vertexRemote fetches the slot for key from its owning peer, walking
// the remote chain one bucket read at a time. Concurrent fetches of the
// same key collapse onto one walk, and hits feed the read cache.
func (s *Store) vertexRemote(ctx context.Context, tid int, peer uint64, key proto.Key) (proto.Vertex, error) {
	if v, ok := s.cache.lookup(key); ok {
		return v, nil
	}

	ret, err, _ := s.singleRun.Do(strconv.FormatUint(uint64(key), 16), func() (interface{}, error) {
		buf := s.tr.GetBuffer(tid)
		const sz = associativity * proto.VertexSize

		bucketID := key.Hash() % s.numBuckets
		for {
			off := bucketID * associativity * proto.VertexSize
			if err := s.tr.RemoteRead(ctx, tid, peer, buf[:sz], off); err != nil {
				return proto.Vertex{}, errors.Info(proto.ErrRemoteReadFailed, err.Error())
			}
			words := util.BytesToWords(buf[:sz])

			for i := 0; i < associativity-1; i++ {
				if k := proto.Key(words[i*2]); k == key {
					return proto.Vertex{Key: k, Ptr: proto.Ptr(words[i*2+1])}, nil
				}
			}
			link := proto.Key(words[(associativity-1)*2])
			if link.IsZero() {
				return proto.Vertex{}, nil
			}
			bucketID = link.Vid()
		}
	})
	if err != nil {
		return proto.Vertex{}, err
	}

	v := ret.(proto.Vertex)
	if !v.Key.IsZero() {
		s.cache.insert(v)
	}
	return v, nil
}

func (s *Store) getEdgesRemote(ctx context.Context, tid int, vid proto.Vid, d proto.Dir, pid proto.Pid) ([]proto.Edge, error) {
	peer := s.Ownership(vid)
	v, err := s.vertexRemote(ctx, tid, peer, proto.NewKey(vid, d, pid))
	if err != nil {
		return nil, err
	}
	if v.Key.IsZero() {
		return nil, nil
	}

	buf := s.tr.GetBuffer(tid)
	sz := v.Ptr.Size() * proto.EdgeSize
	if sz > uint64(len(buf)) {
		return nil, errors.Info(proto.ErrRemoteReadFailed, "adjacency list exceeds scratch buffer")
	}
	off := s.numSlots*proto.VertexSize + v.Ptr.Off()*proto.EdgeSize
	if err := s.tr.RemoteRead(ctx, tid, peer, buf[:sz], off); err != nil {
		return nil, errors.Info(proto.ErrRemoteReadFailed, err.Error())
	}
	return util.BytesToWords(buf[:sz]), nil
}
