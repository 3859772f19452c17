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

// Package limiter bounds the region reads a peer serves to other peers.
// An RDMA NIC caps one-sided reads in hardware; the message-passing
// transport gets the same cap in software.
package limiter

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

type (
	Limiter interface {
		// Acquire claims one serving slot, failing fast when the
		// concurrency cap is reached.
		Acquire() error
		Release()
		// WaitN blocks until n bytes of read bandwidth are available.
		WaitN(ctx context.Context, n int) error
		SetConcurrency(value uint32)
		SetMBPS(mbps int)
		Status() Status
	}

	LimitConfig struct {
		ReadConcurrency int `json:"read_concurrency"`
		ReadMBPS        int `json:"read_mbps"`
	}

	Status struct {
		Config      LimitConfig
		ReadRunning int
		ReadWait    int
	}

	limiter struct {
		config     LimitConfig
		countLimit CountLimit
		rateRead   *rate.Limiter
	}

	CountLimit interface {
		Running() int
		Acquire() error
		Release()
		SetLimit(limit uint32)
	}
)

func NewLimiter(cfg LimitConfig) Limiter {
	mb := 1 << 20
	lim := &limiter{config: cfg}
	if cfg.ReadConcurrency > 0 {
		lim.countLimit = NewCountLimit(cfg.ReadConcurrency)
	}
	if cfg.ReadMBPS > 0 {
		lim.rateRead = rate.NewLimiter(rate.Limit(cfg.ReadMBPS*mb), cfg.ReadMBPS*mb)
	}
	return lim
}

func (lim *limiter) Acquire() error {
	if lim.countLimit != nil {
		return lim.countLimit.Acquire()
	}
	return nil
}

func (lim *limiter) Release() {
	if lim.countLimit != nil {
		lim.countLimit.Release()
	}
}

func (lim *limiter) WaitN(ctx context.Context, n int) error {
	if lim.rateRead != nil {
		return lim.rateRead.WaitN(ctx, n)
	}
	return nil
}

func (lim *limiter) SetConcurrency(value uint32) {
	if lim.countLimit == nil {
		lim.countLimit = NewCountLimit(int(value))
	} else {
		lim.countLimit.SetLimit(value)
	}
	lim.config.ReadConcurrency = int(value)
}

func (lim *limiter) SetMBPS(mbps int) {
	mb := 1 << 20
	if lim.rateRead == nil {
		lim.rateRead = rate.NewLimiter(rate.Limit(mbps*mb), mbps*mb)
	} else {
		lim.rateRead.SetLimit(rate.Limit(mbps * mb))
		lim.rateRead.SetBurst(mbps * mb)
	}
	lim.config.ReadMBPS = mbps
}

func (lim *limiter) Status() Status {
	st := Status{Config: lim.config}
	if lim.countLimit != nil {
		st.ReadRunning = lim.countLimit.Running()
	}
	if lim.rateRead != nil {
		st.ReadWait = rateWait(lim.rateRead)
	}
	return st
}

func rateWait(r *rate.Limiter) int {
	now := time.Now()
	reserve := r.ReserveN(now, int(r.Limit())/2)
	duration := reserve.DelayFrom(now)
	reserve.Cancel()
	return int(duration.Milliseconds())
}

const minusOne = ^uint32(0)

type countLimit struct {
	limit   uint32
	current uint32
}

// NewCountLimit returns limiter with concurrent n
func NewCountLimit(n int) CountLimit {
	return &countLimit{limit: uint32(n)}
}

func (l *countLimit) Running() int {
	return int(atomic.LoadUint32(&l.current))
}

func (l *countLimit) Acquire() error {
	if atomic.AddUint32(&l.current, 1) > atomic.LoadUint32(&l.limit) {
		atomic.AddUint32(&l.current, minusOne)
		return errors.New("limit exceeded")
	}
	return nil
}

func (l *countLimit) Release() {
	atomic.AddUint32(&l.current, minusOne)
}

func (l *countLimit) SetLimit(limit uint32) {
	atomic.StoreUint32(&l.limit, limit)
}
