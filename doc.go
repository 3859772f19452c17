/*
 *
 * Copyright 2023 The TripleKV Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

/*

# TripleKV: a partitioned in-memory key-value store for RDF graphs

TripleKV is the storage core of a distributed RDF graph store. Triples are
partitioned across a fleet of peers; each peer keeps its shard in one
pre-allocated memory region that remote peers read by offset; the owning
peer serves the raw region bytes without interpreting them.

## Data Model

* A triple (s, p, o) is decomposed into adjacency rows keyed by
  (vid, direction, pid).

* Rows live in a cluster-chaining hash table (the key region) whose values
  are slices of a bump-allocated arena (the entry region).

* Predicate and type indexes are derived after ingest and published through
  the same hash table, so index lookups reuse the normal lookup path.

## Architecture

Every peer runs the same process:

* store - the in-memory key/entry regions, ingest, indexing, and lookups

* transport - one-sided region reads between peers, served over gRPC

* server - the gRPC region service plus HTTP diagnostics

The fleet is static: data is loaded once and then served read-only.

## Building Blocks

* gRPC
* Prometheus

*/

package triplekv
