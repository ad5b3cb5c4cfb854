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

import "unsafe"

// Ring is a typed view over a RingEndpoint: it binds the record type T to
// the byte-oriented core, checking that the descriptor's quantum equals
// T's in-memory width before any region is mapped — a mismatched
// quantum is a bind-time precondition failure, not a runtime error.
//
// Callers pass contiguous []T slices; Ring reinterprets them as the raw
// bytes the core copies, so T should be a fixed-layout struct (no
// pointers, no padding you don't intend to share) if the bytes are meant
// to be read back meaningfully by the peer.
type Ring[T any] struct {
	endpoint *RingEndpoint
}

// recordWidth returns the in-memory byte width of T.
func recordWidth[T any]() uint64 {
	var zero T
	return uint64(unsafe.Sizeof(zero))
}

// NewRing binds a Ring[T] to d. If d's quantum does not equal
// unsafe.Sizeof(T), the returned Ring is Invalid and no mapping is
// attempted, exactly as for any other malformed descriptor.
func NewRing[T any](d Descriptor) *Ring[T] {
	return &Ring[T]{endpoint: bindEndpoint(d, recordWidth[T]())}
}

// IsValid reports whether the underlying endpoint is bound and usable.
func (r *Ring[T]) IsValid() bool { return r.endpoint.IsValid() }

// GetQuantumSize returns sizeof(T) in bytes.
func (r *Ring[T]) GetQuantumSize() uint64 { return r.endpoint.GetQuantumSize() }

// GetQuantumCount returns the ring's capacity in records.
func (r *Ring[T]) GetQuantumCount() uint64 { return r.endpoint.GetQuantumCount() }

// GetDescriptor returns a read-only view of the bound descriptor.
func (r *Ring[T]) GetDescriptor() Descriptor { return r.endpoint.GetDescriptor() }

// AvailableToRead returns the number of bytes available to read.
func (r *Ring[T]) AvailableToRead() uint64 { return r.endpoint.AvailableToRead() }

// AvailableToWrite returns the number of bytes available to write.
func (r *Ring[T]) AvailableToWrite() uint64 { return r.endpoint.AvailableToWrite() }

// Close unmaps the underlying endpoint's regions.
func (r *Ring[T]) Close() error { return r.endpoint.Close() }

// asBytes reinterprets recs as a flat byte slice of len(recs)*sizeof(T)
// bytes, without copying.
func asBytes[T any](recs []T) []byte {
	if len(recs) == 0 {
		return nil
	}
	width := recordWidth[T]()
	return unsafe.Slice((*byte)(unsafe.Pointer(&recs[0])), uint64(len(recs))*width)
}

// WriteN writes the first count records of recs to the ring.
func (r *Ring[T]) WriteN(recs []T, count uint64) bool {
	if uint64(len(recs)) < count {
		return false
	}
	return r.endpoint.WriteN(asBytes(recs), count)
}

// WriteOne writes a single record to the ring.
func (r *Ring[T]) WriteOne(rec *T) bool {
	return r.WriteN(unsafe.Slice(rec, 1), 1)
}

// ReadN reads count records from the ring into dst, which must have
// length at least count.
func (r *Ring[T]) ReadN(dst []T, count uint64) bool {
	if uint64(len(dst)) < count {
		return false
	}
	return r.endpoint.ReadN(asBytes(dst), count)
}

// ReadOne reads a single record from the ring into dst.
func (r *Ring[T]) ReadOne(dst *T) bool {
	return r.ReadN(unsafe.Slice(dst, 1), 1)
}
