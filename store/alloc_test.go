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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triplekv/triplekv/proto"
)

func TestAllocEntries(t *testing.T) {
	cfg := testConfig()
	cfg.NumSlots = 16
	cfg.MemBytes = 16*proto.VertexSize + 10*proto.EdgeSize
	s := newTestStore(t, cfg)
	require.Equal(t, uint64(10), s.numEntries)

	off, err := s.allocEntries(4)
	require.NoError(t, err)
	require.Equal(t, uint64(0), off)

	off, err = s.allocEntries(6)
	require.NoError(t, err)
	require.Equal(t, uint64(4), off)

	_, err = s.allocEntries(1)
	require.ErrorIs(t, err, proto.ErrOutOfEntrySpace)
}

func TestAllocEntriesDisjoint(t *testing.T) {
	s := newTestStore(t, testConfig())

	const workers = 8
	offs := make([]uint64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			off, err := s.allocEntries(100)
			if err == nil {
				offs[w] = off
			}
		}()
	}
	wg.Wait()

	seen := make(map[uint64]bool)
	for _, off := range offs {
		require.False(t, seen[off])
		require.Equal(t, uint64(0), off%100)
		seen[off] = true
	}
}

func TestAllocExtBucket(t *testing.T) {
	cfg := testConfig()
	cfg.NumSlots = 16 // one main, one overflow
	cfg.MemBytes = 16*proto.VertexSize + 1024
	s := newTestStore(t, cfg)

	id, err := s.allocExtBucket()
	require.NoError(t, err)
	require.Equal(t, s.numBuckets, id)

	_, err = s.allocExtBucket()
	require.ErrorIs(t, err, proto.ErrOutOfOverflowBuckets)
}
