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

	"github.com/triplekv/triplekv/proto"
	"github.com/triplekv/triplekv/store"
	"github.com/triplekv/triplekv/transport"
	"github.com/triplekv/triplekv/util/limiter"
)

type Config struct {
	ServerID uint64 `json:"server_id"`

	StoreConfig     store.Config        `json:"store_config"`
	TransportConfig transport.Config    `json:"transport_config"`
	ReadLimit       limiter.LimitConfig `json:"read_limit"`
}

// Server is one peer of the fleet: the local store plus the transport to
// every other peer. The query layer drives it through the lookup facade;
// the loader drives it through InsertNormal and InsertIndex.
type Server struct {
	cfg     *Config
	store   *store.Store
	tr      *transport.GRPC
	readLim limiter.Limiter
}

func NewServer(cfg *Config) (*Server, error) {
	if len(cfg.TransportConfig.Peers) > 0 {
		cfg.StoreConfig.NumServers = uint64(len(cfg.TransportConfig.Peers))
	}

	tr, err := transport.NewGRPC(cfg.TransportConfig, cfg.ServerID)
	if err != nil {
		return nil, err
	}

	st, err := store.NewStore(cfg.StoreConfig, cfg.ServerID, tr)
	if err != nil {
		tr.Close()
		return nil, err
	}
	st.Init(context.Background())

	return &Server{
		cfg:     cfg,
		store:   st,
		tr:      tr,
		readLim: limiter.NewLimiter(cfg.ReadLimit),
	}, nil
}

func (s *Server) Store() *store.Store {
	return s.store
}

// InsertNormal loads this peer's shard from the two sorted triple
// streams.
func (s *Server) InsertNormal(ctx context.Context, spo, ops []proto.Triple) error {
	return s.store.InsertNormal(ctx, spo, ops)
}

// InsertIndex derives and publishes the predicate/type indexes. Call it
// exactly once, after every peer finished InsertNormal.
func (s *Server) InsertIndex(ctx context.Context) error {
	return s.store.InsertIndex(ctx)
}

func (s *Server) GetEdgesGlobal(ctx context.Context, tid int, vid proto.Vid, d proto.Dir, pid proto.Pid) ([]proto.Edge, error) {
	return s.store.GetEdgesGlobal(ctx, tid, vid, d, pid)
}

func (s *Server) Close() {
	s.tr.Close()
}
