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
	"github.com/triplekv/triplekv/proto"
)

// allocEntries claims n contiguous entry slots and returns the offset of
// the first. Ranges handed out are disjoint and never reclaimed.
func (s *Store) allocEntries(n uint64) (uint64, error) {
	s.entryLock.Lock()
	defer s.entryLock.Unlock()

	if n > s.numEntries-s.lastEntry {
		return 0, proto.ErrOutOfEntrySpace
	}
	off := s.lastEntry
	s.lastEntry += n
	return off, nil
}

// allocExtBucket claims the next unused overflow bucket and returns its
// bucket id.
func (s *Store) allocExtBucket() (uint64, error) {
	s.extLock.Lock()
	defer s.extLock.Unlock()

	if s.lastExt >= s.numBucketsExt {
		return 0, proto.ErrOutOfOverflowBuckets
	}
	id := s.numBuckets + s.lastExt
	s.lastExt++
	return id, nil
}
