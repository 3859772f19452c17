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

// Package transport moves region bytes between peers. It plays the role
// an RDMA NIC plays in the original design: a caller reads N bytes from
// peer P at offset O, with no involvement of P's storage code beyond
// serving the bytes.
package transport

import (
	"context"

	"github.com/cubefs/cubefs/blobstore/util/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/triplekv/triplekv/transport/transportpb"
	"github.com/triplekv/triplekv/util"
)

const defaultBufferSizeMB = 4

type Config struct {
	// Peers lists the gRPC addresses of every peer, indexed by server
	// id. The entry for the local peer is ignored.
	Peers []string `json:"peers"`

	// NumThreads is the number of scratch buffers, one per worker
	// thread of the query layer.
	NumThreads int `json:"num_threads"`

	// BufferSizeMB caps the largest single remote read.
	BufferSizeMB int `json:"buffer_size_mb"`
}

func (cfg *Config) applyDefaults() {
	if cfg.NumThreads <= 0 {
		cfg.NumThreads = 1
	}
	if cfg.BufferSizeMB <= 0 {
		cfg.BufferSizeMB = defaultBufferSizeMB
	}
}

// buffers is the per-thread scratch pool shared by both transports.
type buffers struct {
	bufs [][]byte
}

func newBuffers(numThreads, sizeMB int) *buffers {
	b := &buffers{bufs: make([][]byte, numThreads)}
	for i := range b.bufs {
		b.bufs[i] = util.GetBuffer(sizeMB << 20)
	}
	return b
}

func (b *buffers) GetBuffer(tid int) []byte {
	return b.bufs[tid%len(b.bufs)]
}

func (b *buffers) free() {
	for _, buf := range b.bufs {
		util.PutBuffer(buf)
	}
	b.bufs = nil
}

// GRPC reads remote regions through each peer's RegionReader service.
type GRPC struct {
	*buffers
	conns   []*grpc.ClientConn
	clients []transportpb.RegionReaderClient
	self    uint64
}

func NewGRPC(cfg Config, self uint64) (*GRPC, error) {
	cfg.applyDefaults()
	t := &GRPC{
		buffers: newBuffers(cfg.NumThreads, cfg.BufferSizeMB),
		conns:   make([]*grpc.ClientConn, len(cfg.Peers)),
		clients: make([]transportpb.RegionReaderClient, len(cfg.Peers)),
		self:    self,
	}
	for i, addr := range cfg.Peers {
		if uint64(i) == self {
			continue
		}
		conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			t.Close()
			return nil, errors.Info(err, "dial peer", addr)
		}
		t.conns[i] = conn
		t.clients[i] = transportpb.NewRegionReaderClient(conn)
	}
	return t, nil
}

func (t *GRPC) RemoteRead(ctx context.Context, tid int, peer uint64, dst []byte, srcOff uint64) error {
	if peer >= uint64(len(t.clients)) || t.clients[peer] == nil {
		return errors.New("no such peer")
	}
	resp, err := t.clients[peer].Read(ctx, &transportpb.ReadRequest{
		Offset: srcOff,
		Size_:  uint64(len(dst)),
	})
	if err != nil {
		return err
	}
	if len(resp.Data) != len(dst) {
		return errors.New("short region read")
	}
	copy(dst, resp.Data)
	return nil
}

// Usage polls the occupancy snapshot of a peer.
func (t *GRPC) Usage(ctx context.Context, peer uint64) (*transportpb.UsageResponse, error) {
	if peer >= uint64(len(t.clients)) || t.clients[peer] == nil {
		return nil, errors.New("no such peer")
	}
	return t.clients[peer].Usage(ctx, &transportpb.UsageRequest{})
}

func (t *GRPC) Close() {
	for _, conn := range t.conns {
		if conn != nil {
			conn.Close()
		}
	}
	t.free()
}

// RegionReader serves the raw bytes of a local region. *store.Store
// implements it.
type RegionReader interface {
	ReadRegion(dst []byte, off uint64) error
}

// InMem wires a fleet of in-process regions together, for tests and
// single-host runs.
type InMem struct {
	*buffers
	peers []RegionReader
}

func NewInMem(peers []RegionReader, numThreads, bufferSizeMB int) *InMem {
	cfg := Config{NumThreads: numThreads, BufferSizeMB: bufferSizeMB}
	cfg.applyDefaults()
	return &InMem{
		buffers: newBuffers(cfg.NumThreads, cfg.BufferSizeMB),
		peers:   peers,
	}
}

func (t *InMem) RemoteRead(ctx context.Context, tid int, peer uint64, dst []byte, srcOff uint64) error {
	if peer >= uint64(len(t.peers)) || t.peers[peer] == nil {
		return errors.New("no such peer")
	}
	return t.peers[peer].ReadRegion(dst, srcOff)
}

func (t *InMem) Close() {
	t.free()
}
