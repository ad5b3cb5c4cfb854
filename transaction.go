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

// transaction names the (at most two) contiguous byte runs a write or
// read of n bytes touches, starting at a stream position pos into a ring
// of the given capacity. first is always non-nil once n > 0; second is
// empty unless the request wraps past the end of the ring.
type transaction struct {
	first  []byte
	second []byte
}

// splitTransaction computes the contiguous-run split for a write or read
// of n bytes starting at stream position pos in a ring of the given
// capacity, wrapping once past the end if necessary. ring must be
// exactly capacity bytes long.
func splitTransaction(ring []byte, capacity, pos, n uint64) transaction {
	offset := pos % capacity
	headRun := n
	if room := capacity - offset; room < headRun {
		headRun = room
	}
	tailRun := n - headRun
	return transaction{
		first:  ring[offset : offset+headRun],
		second: ring[:tailRun],
	}
}

// copyInto copies n bytes from src into the transaction's runs, head run
// first, and returns the number of bytes copied (always n, for a src at
// least n bytes long).
func (t transaction) copyInto(src []byte) int {
	m := copy(t.first, src)
	m += copy(t.second, src[m:])
	return m
}

// copyFrom copies the transaction's runs, head run first, into dst and
// returns the number of bytes copied.
func (t transaction) copyFrom(dst []byte) int {
	m := copy(dst, t.first)
	m += copy(dst[m:], t.second)
	return m
}
