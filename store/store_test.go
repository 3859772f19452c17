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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triplekv/triplekv/proto"
	"github.com/triplekv/triplekv/transport"
)

// testConfig keeps the regions tiny and the id boundary low so scenario
// vids stay readable.
func testConfig() Config {
	return Config{
		NumSlots:    1024,
		MemBytes:    1 << 20,
		NumServers:  1,
		NumEngines:  4,
		MinNormalID: 10,
	}
}

func newTestStore(t *testing.T, cfg Config) *Store {
	s, err := NewStore(cfg, 0, nil)
	require.NoError(t, err)
	s.Init(context.Background())
	return s
}

// newTestFleet builds n stores wired together through the in-process
// transport.
func newTestFleet(t *testing.T, n int, mutate func(*Config)) []*Store {
	readers := make([]transport.RegionReader, n)
	tr := transport.NewInMem(readers, 2, 1)
	t.Cleanup(tr.Close)

	stores := make([]*Store, n)
	for i := range stores {
		cfg := testConfig()
		cfg.NumServers = uint64(n)
		if mutate != nil {
			mutate(&cfg)
		}
		s, err := NewStore(cfg, uint64(i), tr)
		require.NoError(t, err)
		s.Init(context.Background())
		stores[i] = s
		readers[i] = s
	}
	return stores
}

func TestNewStoreGeometry(t *testing.T) {
	s := newTestStore(t, testConfig())
	require.Equal(t, uint64(1024), s.numSlots)
	require.Equal(t, uint64(102), s.numBuckets)
	require.Equal(t, uint64(26), s.numBucketsExt)
	require.Equal(t, (uint64(1<<20)-1024*proto.VertexSize)/proto.EdgeSize, s.numEntries)
}

func TestNewStoreConfigErrors(t *testing.T) {
	cfg := testConfig()
	cfg.NumSlots = 10 // not a multiple of the associativity
	_, err := NewStore(cfg, 0, nil)
	require.Error(t, err)

	cfg = testConfig()
	cfg.MemBytes = 1024 * proto.VertexSize // no room for entries
	_, err = NewStore(cfg, 0, nil)
	require.ErrorIs(t, err, proto.ErrMemRegionTooSmall)

	cfg = testConfig()
	_, err = NewStore(cfg, 5, nil) // sid outside the fleet
	require.Error(t, err)
}

func TestInitResets(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testConfig())

	require.NoError(t, s.InsertNormal(ctx, []proto.Triple{{S: 100, P: 7, O: 200}}, nil))
	require.NotEmpty(t, s.GetEdgesLocal(0, 100, proto.Out, 7))

	s.Init(ctx)
	require.Empty(t, s.GetEdgesLocal(0, 100, proto.Out, 7))
	require.Equal(t, uint64(0), s.Usage().UsedEntries)
}

func TestReadRegionBounds(t *testing.T) {
	s := newTestStore(t, testConfig())
	total := uint64(len(s.words)) * 8

	buf := make([]byte, 16)
	require.NoError(t, s.ReadRegion(buf, 0))
	require.NoError(t, s.ReadRegion(buf, total-16))
	require.Error(t, s.ReadRegion(buf, total-8))
	require.Error(t, s.ReadRegion(buf, total+1))
}

func TestUsage(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testConfig())

	spo := []proto.Triple{
		{S: 100, P: 7, O: 200},
		{S: 100, P: 8, O: 300},
	}
	ops := append([]proto.Triple(nil), spo...)
	proto.SortOPS(ops)
	require.NoError(t, s.InsertNormal(ctx, spo, ops))

	u := s.Usage()
	require.Equal(t, uint64(4), u.MainUsedSlots+u.ExtUsedSlots)
	require.Equal(t, uint64(4), u.UsedEntries)
	require.Equal(t, uint64(0), u.NumVertices) // versatile rows absent

	// reporting must not alter state
	u2 := s.ReportUsage(ctx)
	require.Equal(t, u, u2)
}
