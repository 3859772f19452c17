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

import "errors"

var (
	ErrDuplicateKey = errors.New("duplicate key in key region")

	ErrOutOfEntrySpace      = errors.New("entry region exhausted")
	ErrOutOfOverflowBuckets = errors.New("overflow header exhausted")

	ErrMemRegionTooSmall = errors.New("memory region too small for key region")

	ErrCorruptState = errors.New("corrupt key region state")

	ErrRemoteReadFailed = errors.New("remote region read failed")

	ErrInvalidTripleOrder = errors.New("triple stream not sorted as expected")

	ErrKeyOutOfRange = errors.New("identifier exceeds key field width")
)
