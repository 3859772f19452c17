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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triplekv/triplekv/proto"
)

func TestReadCache(t *testing.T) {
	c := newReadCache(true)

	k := proto.NewKey(100, proto.Out, 7)
	_, ok := c.lookup(k)
	require.False(t, ok)

	c.insert(proto.Vertex{Key: k, Ptr: proto.NewPtr(3, 10)})
	v, ok := c.lookup(k)
	require.True(t, ok)
	require.Equal(t, k, v.Key)
	require.Equal(t, uint64(3), v.Ptr.Size())

	// insertion overwrites unconditionally
	c.insert(proto.Vertex{Key: k, Ptr: proto.NewPtr(5, 20)})
	v, _ = c.lookup(k)
	require.Equal(t, uint64(20), v.Ptr.Off())

	// a different key misses even if it shares the stripe
	_, ok = c.lookup(proto.NewKey(101, proto.Out, 7))
	require.False(t, ok)
}

func TestReadCacheDisabled(t *testing.T) {
	c := newReadCache(false)

	k := proto.NewKey(100, proto.Out, 7)
	c.insert(proto.Vertex{Key: k, Ptr: proto.NewPtr(1, 0)})
	_, ok := c.lookup(k)
	require.False(t, ok)
}
