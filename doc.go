/*
Package art implements an Adaptive Radix Tree used as a dictionary-encoding
index for a main-memory column store.

The tree ingests string keys paired with row identifiers and supports three
operations: inserting many (key, row-id) pairs where the same key may repeat,
an ordered traversal that emits each unique key together with the row-ids
that produced it, and a structural merge of two independently built trees
that share a single row-id arena.

Node layouts

Four node variants trade space for lookup speed depending on occupancy:
Node4 and Node16 hold parallel sorted key/child arrays (Node16 additionally
offers a masked lookup in node16_vectorized.go, with a linear-scan fallback
in node16_scalar.go selected by the art_scalar_v16 build tag), Node48 maps
key bytes into a small child array through a 256-entry index, and Node256
addresses children directly by key byte. A node grows into the next variant
once its current capacity is exhausted; growth is transparent to callers.

Arenas

Each tree owns a suffix arena: an append-only byte buffer holding the
compressed edge labels ("prefixes") referenced by nodes as (position,
length) pairs. Trees produced by Split share a single row-id arena: a dense
uint32 vector used as intrusive storage for per-key duplicate chains and for
the tree's null-key chain. Sharing the row-id arena lets a Join fold a
donor's entries into a recipient without touching any row-id.

This package trusts its inputs, per the scope of the structure it indexes:
it is not safe for concurrent mutation, it has no notion of deleting a
single key, and it does not persist itself. See SPEC_FULL.md in the module
root for the full operational contract.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package art

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
