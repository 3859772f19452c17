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

package server

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triplekv/triplekv/proto"
	"github.com/triplekv/triplekv/store"
	"github.com/triplekv/triplekv/transport"
	"github.com/triplekv/triplekv/transport/transportpb"
	"github.com/triplekv/triplekv/util/limiter"
)

func testStoreConfig() store.Config {
	return store.Config{
		NumSlots:    1024,
		MemBytes:    1 << 20,
		NumEngines:  2,
		MinNormalID: 10,
	}
}

// newTestFleet starts n peers serving each other over loopback gRPC.
func newTestFleet(t *testing.T, n int) []*Server {
	listeners := make([]net.Listener, n)
	peers := make([]string, n)
	for i := range listeners {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		listeners[i] = lis
		peers[i] = lis.Addr().String()
	}

	servers := make([]*Server, n)
	for i := range servers {
		sv, err := NewServer(&Config{
			ServerID:        uint64(i),
			StoreConfig:     testStoreConfig(),
			TransportConfig: transport.Config{Peers: peers, NumThreads: 2},
		})
		require.NoError(t, err)
		servers[i] = sv

		rs := NewRPCServer(sv)
		lis := listeners[i]
		go rs.grpcServer.Serve(lis)
		t.Cleanup(func() {
			rs.Stop()
			sv.Close()
		})
	}
	return servers
}

func TestFleetEndToEnd(t *testing.T) {
	ctx := context.Background()
	servers := newTestFleet(t, 2)

	triples := []proto.Triple{
		{S: 100, P: 7, O: 201},
		{S: 101, P: 7, O: 200},
		{S: 101, P: 8, O: 202},
	}
	for sid, sv := range servers {
		var spo, ops []proto.Triple
		for _, tr := range triples {
			if tr.S%2 == uint64(sid) {
				spo = append(spo, tr)
			}
			if tr.O%2 == uint64(sid) {
				ops = append(ops, tr)
			}
		}
		proto.SortSPO(spo)
		proto.SortOPS(ops)
		require.NoError(t, sv.InsertNormal(ctx, spo, ops))
	}
	for _, sv := range servers {
		require.NoError(t, sv.InsertIndex(ctx))
	}

	// every peer answers for every vid, remote or not
	for _, tr := range triples {
		for _, sv := range servers {
			edges, err := sv.GetEdgesGlobal(ctx, 0, tr.S, proto.Out, tr.P)
			require.NoError(t, err)
			require.Contains(t, edges, tr.O)

			edges, err = sv.GetEdgesGlobal(ctx, 0, tr.O, proto.In, tr.P)
			require.NoError(t, err)
			require.Contains(t, edges, tr.S)
		}
	}

	// occupancy is visible across the wire
	u, err := servers[0].tr.Usage(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1024), u.NumSlots)
	require.NotZero(t, u.UsedEntries)
}

func TestRPCServerReadValidation(t *testing.T) {
	ctx := context.Background()
	sv, err := NewServer(&Config{
		StoreConfig:     testStoreConfig(),
		TransportConfig: transport.Config{Peers: []string{"127.0.0.1:1"}},
		ReadLimit:       limiter.LimitConfig{ReadConcurrency: 4},
	})
	require.NoError(t, err)
	defer sv.Close()
	rs := NewRPCServer(sv)
	defer rs.Stop()

	_, err = rs.Read(ctx, &transportpb.ReadRequest{Offset: 0, Size_: 0})
	require.Error(t, err)
	_, err = rs.Read(ctx, &transportpb.ReadRequest{Offset: 0, Size_: maxReadSize + 1})
	require.Error(t, err)
	_, err = rs.Read(ctx, &transportpb.ReadRequest{Offset: 1 << 40, Size_: 16})
	require.Error(t, err)

	resp, err := rs.Read(ctx, &transportpb.ReadRequest{Offset: 0, Size_: 128})
	require.NoError(t, err)
	require.Len(t, resp.Data, 128)

	u, err := rs.Usage(ctx, &transportpb.UsageRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(1024), u.NumSlots)
}
