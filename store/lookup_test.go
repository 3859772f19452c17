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
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triplekv/triplekv/proto"
)

// loadFleet partitions the triples by vid ownership and ingests each
// shard into its owning store.
func loadFleet(t *testing.T, stores []*Store, triples []proto.Triple) {
	ctx := context.Background()
	n := uint64(len(stores))
	for sid, s := range stores {
		var spo, ops []proto.Triple
		for _, tr := range triples {
			if tr.S%n == uint64(sid) {
				spo = append(spo, tr)
			}
			if tr.O%n == uint64(sid) {
				ops = append(ops, tr)
			}
		}
		proto.SortSPO(spo)
		proto.SortOPS(ops)
		require.NoError(t, s.InsertNormal(ctx, spo, ops))
	}
	for _, s := range stores {
		require.NoError(t, s.InsertIndex(ctx))
	}
}

func sorted(edges []proto.Edge) []proto.Edge {
	out := append([]proto.Edge(nil), edges...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestGetEdgesGlobalRoundTrip(t *testing.T) {
	ctx := context.Background()
	stores := newTestFleet(t, 2, nil)

	triples := []proto.Triple{
		{S: 100, P: 7, O: 201},
		{S: 100, P: 7, O: 202},
		{S: 101, P: 7, O: 200},
		{S: 101, P: 8, O: 203},
	}
	loadFleet(t, stores, triples)

	for _, tr := range triples {
		owner := stores[tr.S%2]
		local := owner.GetEdgesLocal(0, tr.S, proto.Out, tr.P)
		for sid, s := range stores {
			global, err := s.GetEdgesGlobal(ctx, 0, tr.S, proto.Out, tr.P)
			require.NoError(t, err, "from peer %d", sid)
			require.Equal(t, sorted(local), sorted(global))
		}
	}
}

func TestGetEdgesGlobalRemoteMiss(t *testing.T) {
	ctx := context.Background()
	stores := newTestFleet(t, 2, nil)
	loadFleet(t, stores, []proto.Triple{{S: 100, P: 7, O: 201}})

	// vid 101 is owned by peer 1 and absent everywhere
	edges, err := stores[0].GetEdgesGlobal(ctx, 0, 101, proto.Out, 7)
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestGetEdgesGlobalCaching(t *testing.T) {
	ctx := context.Background()
	stores := newTestFleet(t, 2, func(cfg *Config) { cfg.EnableCaching = true })
	loadFleet(t, stores, []proto.Triple{{S: 101, P: 7, O: 200}})

	// first read goes remote and fills the cache
	edges, err := stores[0].GetEdgesGlobal(ctx, 0, 101, proto.Out, 7)
	require.NoError(t, err)
	require.Equal(t, []proto.Edge{200}, edges)

	v, ok := stores[0].cache.lookup(proto.NewKey(101, proto.Out, 7))
	require.True(t, ok)
	require.Equal(t, uint64(1), v.Ptr.Size())

	// second read is served through the cached descriptor
	edges, err = stores[0].GetEdgesGlobal(ctx, 0, 101, proto.Out, 7)
	require.NoError(t, err)
	require.Equal(t, []proto.Edge{200}, edges)
}

func TestGetEdgesGlobalCachingDisabled(t *testing.T) {
	ctx := context.Background()
	stores := newTestFleet(t, 2, nil)
	loadFleet(t, stores, []proto.Triple{{S: 101, P: 7, O: 200}})

	for i := 0; i < 3; i++ {
		edges, err := stores[0].GetEdgesGlobal(ctx, 0, 101, proto.Out, 7)
		require.NoError(t, err)
		require.Equal(t, []proto.Edge{200}, edges)
	}
	_, ok := stores[0].cache.lookup(proto.NewKey(101, proto.Out, 7))
	require.False(t, ok)
}

func TestGetEdgesGlobalRemoteChain(t *testing.T) {
	ctx := context.Background()

	// a single main bucket on the remote peer forces chain hops over
	// the transport
	stores := newTestFleet(t, 2, func(cfg *Config) {
		cfg.NumSlots = 16
		cfg.MemBytes = 16*proto.VertexSize + 1024
	})

	var triples []proto.Triple
	for vid := uint64(101); vid < 117; vid += 2 { // 8 vids owned by peer 1
		triples = append(triples, proto.Triple{S: vid, P: 7, O: 100})
	}
	spo := append([]proto.Triple(nil), triples...)
	proto.SortSPO(spo)
	require.NoError(t, stores[1].InsertNormal(ctx, spo, nil))

	for _, tr := range triples {
		edges, err := stores[0].GetEdgesGlobal(ctx, 0, tr.S, proto.Out, 7)
		require.NoError(t, err)
		require.Equal(t, []proto.Edge{100}, edges)
	}
}

func TestGetIndexEdgesLocal(t *testing.T) {
	stores := newTestFleet(t, 1, nil)
	loadFleet(t, stores, []proto.Triple{
		{S: 100, P: 7, O: 200},
		{S: 101, P: 7, O: 200},
	})

	in7 := stores[0].GetIndexEdgesLocal(0, 7, proto.In)
	require.Equal(t, []proto.Edge{100, 101}, sorted(in7))
}

func TestLookupAbsent(t *testing.T) {
	s := newTestStore(t, testConfig())
	require.Empty(t, s.GetEdgesLocal(0, 100, proto.Out, 7))
	require.Empty(t, s.GetIndexEdgesLocal(0, 7, proto.In))
}
