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

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"github.com/cubefs/cubefs/blobstore/util/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/triplekv/triplekv/metrics"
	"github.com/triplekv/triplekv/transport/transportpb"
)

// maxReadSize bounds one served region read; larger requests indicate a
// confused peer, not a bigger adjacency list.
const maxReadSize = 64 << 20

type RPCServer struct {
	*Server

	grpcServer *grpc.Server
}

func NewRPCServer(server *Server) *RPCServer {
	rs := &RPCServer{Server: server}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(metrics.GRPCMetrics.UnaryServerInterceptor()))
	transportpb.RegisterRegionReaderServer(s, rs)
	rs.grpcServer = s
	return rs
}

func (r *RPCServer) Serve(addr string) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("listen on %s failed: %s", addr, err)
	}
	go func() {
		if err := r.grpcServer.Serve(lis); err != nil {
			log.Fatal("grpc server exits:", err)
		}
	}()
	log.Info("grpc server is running at:", addr)
}

func (r *RPCServer) Stop() {
	r.grpcServer.GracefulStop()
}

// Read serves one one-sided region read to a remote peer.
func (r *RPCServer) Read(ctx context.Context, req *transportpb.ReadRequest) (*transportpb.ReadResponse, error) {
	if req.Size_ == 0 || req.Size_ > maxReadSize {
		return nil, status.Errorf(codes.InvalidArgument, "invalid read size %d", req.Size_)
	}

	if err := r.readLim.Acquire(); err != nil {
		return nil, status.Error(codes.ResourceExhausted, err.Error())
	}
	defer r.readLim.Release()
	if err := r.readLim.WaitN(ctx, int(req.Size_)); err != nil {
		return nil, status.Error(codes.Canceled, err.Error())
	}

	data := make([]byte, req.Size_)
	if err := r.store.ReadRegion(data, req.Offset); err != nil {
		span := trace.SpanFromContextSafe(ctx)
		span.Errorf("serve region read [off: %d, size: %d] failed: %s", req.Offset, req.Size_, err)
		return nil, status.Error(codes.OutOfRange, err.Error())
	}

	metrics.RemoteReadsServed.Inc()
	metrics.RemoteReadBytes.Add(float64(req.Size_))
	return &transportpb.ReadResponse{Data: data}, nil
}

// Usage answers the occupancy snapshot of this peer.
func (r *RPCServer) Usage(ctx context.Context, req *transportpb.UsageRequest) (*transportpb.UsageResponse, error) {
	u := r.store.Usage()
	return &transportpb.UsageResponse{
		NumSlots:            u.NumSlots,
		NumBuckets:          u.NumBuckets,
		NumBucketsExt:       u.NumBucketsExt,
		NumEntries:          u.NumEntries,
		MainUsedSlots:       u.MainUsedSlots,
		ExtUsedSlots:        u.ExtUsedSlots,
		AllocatedExtBuckets: u.AllocatedExt,
		UsedEntries:         u.UsedEntries,
		NumVertices:         u.NumVertices,
		NumPredicates:       u.NumPredicates,
	}, nil
}
