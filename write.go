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

// WriteN copies count records (count*Q bytes) from data into the ring,
// starting at the writer's current head, wrapping once if the write
// crosses the ring boundary. It neither blocks nor spins: if fewer than
// count*Q bytes are free, it returns false without touching data or
// either counter. data must hold at least count*Q bytes.
//
// WriteN acquire-loads R (pairing with the reader's most recent
// release-store of R, so bytes the reader has finished consuming are
// safe to overwrite) and relaxed-loads W, since the writer is this
// transaction's sole owner of W. It release-stores the new W at the
// end, making the bytes just copied visible to a reader that observes
// it via an acquire load.
func (e *RingEndpoint) WriteN(data []byte, count uint64) bool {
	if !e.valid {
		return false
	}
	n := count * e.quantum
	if n == 0 {
		return true
	}
	if uint64(len(data)) < n {
		return false
	}

	r := e.readCounter.load() // acquire: see the reader's freed bytes
	w := e.writeCounter.load()
	if e.capacity-(w-r) < n {
		return false
	}

	txn := splitTransaction(e.dataRegion.data, e.capacity, w, n)
	txn.copyInto(data[:n])

	e.writeCounter.store(w + n) // release: publish the new bytes
	return true
}

// Write writes a single record (Q bytes) to the ring.
func (e *RingEndpoint) Write(data []byte) bool {
	return e.WriteN(data, 1)
}
