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

// ReadN copies count records (count*Q bytes) out of the ring into dst,
// starting at the reader's current tail, wrapping once if the read
// crosses the ring boundary. It neither blocks nor spins: if fewer than
// count*Q bytes are available, it returns false without touching dst or
// either counter. dst must have room for at least count*Q bytes.
//
// ReadN acquire-loads W (pairing with the writer's release-store of W,
// so the bytes about to be copied out are guaranteed visible) and
// relaxed-loads R, since the reader is this transaction's sole owner of
// R. It release-stores the new R at the end, making the consumed region
// safe for the writer to overwrite once it next acquire-loads R.
func (e *RingEndpoint) ReadN(dst []byte, count uint64) bool {
	if !e.valid {
		return false
	}
	n := count * e.quantum
	if n == 0 {
		return true
	}
	if uint64(len(dst)) < n {
		return false
	}

	w := e.writeCounter.load() // acquire: see the writer's published bytes
	r := e.readCounter.load()
	if w-r < n {
		return false
	}

	txn := splitTransaction(e.dataRegion.data, e.capacity, r, n)
	txn.copyFrom(dst[:n])

	e.readCounter.store(r + n) // release: free the consumed bytes
	return true
}

// Read reads a single record (Q bytes) from the ring.
func (e *RingEndpoint) Read(dst []byte) bool {
	return e.ReadN(dst, 1)
}
