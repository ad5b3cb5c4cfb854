// {{{ Copyright (c) Paul R. Tagliamonte <paultag@gmail.com> 2020-2021
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE. }}}

package shmring

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// sharedCounter aliases a 64-bit position counter (W or R) living in a
// mapped shared-memory region. Go's sync/atomic load/store primitives
// are sequentially consistent on every platform this package targets,
// which is strictly stronger than the acquire/release pairing the
// protocol needs, so a single pair of operations covers both the
// acquire/release loads and the relaxed, hint-only ones.
type sharedCounter struct {
	ptr *uint64
}

// newSharedCounter aliases the first 8 bytes of region as a uint64. The
// caller owns region's lifetime; sharedCounter does not copy it.
func newSharedCounter(region []byte) (*sharedCounter, error) {
	if len(region) < 8 {
		return nil, fmt.Errorf("shmring: counter region is %d bytes, need 8", len(region))
	}
	return &sharedCounter{ptr: (*uint64)(unsafe.Pointer(&region[0]))}, nil
}

// load serves both an acquire load (the start of a write or read
// transaction, pairing with the peer's release store) and a relaxed,
// hint-only load (AvailableToRead/AvailableToWrite, and the
// non-suspending re-read of a counter this side alone owns).
func (c *sharedCounter) load() uint64 { return atomic.LoadUint64(c.ptr) }

// store is a release store: the commit step of a write or read
// transaction, publishing the new position to the peer.
func (c *sharedCounter) store(v uint64) { atomic.StoreUint64(c.ptr, v) }
