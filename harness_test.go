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
	"testing"

	"golang.org/x/sys/unix"
)

// newMemfd creates an anonymous shared-memory file descriptor of size
// bytes, standing in for the out-of-band descriptor construction this
// package doesn't itself perform.
func newMemfd(t *testing.T, name string, size uint64) int {
	t.Helper()
	fd, err := unix.MemfdCreate(name, 0)
	if err != nil {
		t.Fatalf("memfd_create: %v", err)
	}
	t.Cleanup(func() { unix.Close(fd) })
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		t.Fatalf("ftruncate: %v", err)
	}
	return fd
}

// newTestDescriptor builds a valid Descriptor backed by three freshly
// allocated memfds (one per grantor), with capacity and quantum as
// given. Each grantor is given its own fd at offset 0, so page-alignment
// padding in the Region Mapper is exercised with pad == 0 here; a
// non-zero pad is exercised by calling mapGrantor directly in
// mapper_test.go.
func newTestDescriptor(t *testing.T, capacity, quantum uint64) Descriptor {
	t.Helper()

	readFD := newMemfd(t, "shmring-read", 8)
	writeFD := newMemfd(t, "shmring-write", 8)
	dataFD := newMemfd(t, "shmring-data", capacity)

	return NewDescriptor(capacity, quantum, []Grantor{
		ReadPointerGrantor:  {FDIndex: 0, Offset: 0, Extent: 8},
		WritePointerGrantor: {FDIndex: 1, Offset: 0, Extent: 8},
		DataRingGrantor:     {FDIndex: 2, Offset: 0, Extent: capacity},
	}, NativeHandle{FDs: []int{readFD, writeFD, dataFD}})
}
