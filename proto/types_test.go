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

package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyPacking(t *testing.T) {
	k := NewKey(MinNormalID+42, Out, 7)
	require.Equal(t, MinNormalID+42, k.Vid())
	require.Equal(t, Out, k.Dir())
	require.Equal(t, uint64(7), k.Pid())
	require.False(t, k.IsZero())

	k = NewKey(MaxVid, In, MaxPid)
	require.Equal(t, MaxVid, k.Vid())
	require.Equal(t, In, k.Dir())
	require.Equal(t, MaxPid, k.Pid())
}

func TestKeySentinel(t *testing.T) {
	require.True(t, Key(0).IsZero())
	require.True(t, NewKey(0, In, PredicateID).IsZero())

	// every other combination of the reserved ids stays distinguishable
	require.False(t, NewKey(0, Out, PredicateID).IsZero())
	require.False(t, NewKey(0, In, TypeID).IsZero())
	require.False(t, NewKey(1, In, PredicateID).IsZero())
}

func TestKeyHash(t *testing.T) {
	k := NewKey(MinNormalID+1, Out, 3)
	require.Equal(t, k.Hash(), k.Hash())

	// adjacent keys should not collide in the low bits the bucket
	// index is taken from
	buckets := make(map[uint64]struct{})
	for vid := uint64(0); vid < 1000; vid++ {
		h := NewKey(MinNormalID+vid, Out, 3).Hash()
		buckets[h%1024] = struct{}{}
	}
	require.Greater(t, len(buckets), 500)
}

func TestPtrPacking(t *testing.T) {
	p := NewPtr(3, 12345)
	require.Equal(t, uint64(3), p.Size())
	require.Equal(t, uint64(12345), p.Off())

	p = NewPtr(MaxSize, MaxOff)
	require.Equal(t, MaxSize, p.Size())
	require.Equal(t, MaxOff, p.Off())
}

func TestSortTriples(t *testing.T) {
	ts := []Triple{
		{S: 300, P: 2, O: 100},
		{S: 100, P: 1, O: 5},
		{S: 100, P: 3, O: 200},
		{S: 100, P: 1, O: 300},
	}

	SortSPO(ts)
	require.Equal(t, []Triple{
		{S: 100, P: 1, O: 5},
		{S: 100, P: 1, O: 300},
		{S: 100, P: 3, O: 200},
		{S: 300, P: 2, O: 100},
	}, ts)

	SortOPS(ts)
	require.Equal(t, Triple{S: 100, P: 1, O: 5}, ts[0])
	require.Equal(t, uint64(100), ts[1].O)
}
