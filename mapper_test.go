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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// mapGrantor must pad a non-page-aligned grantor offset down to the
// previous page boundary and hand back only the requested extent.
func TestMapGrantor_PageAlignsOffset(t *testing.T) {
	pageSize := uint64(unix.Getpagesize())
	fd := newMemfd(t, "shmring-mapper", 2*pageSize)

	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	atOffset := pageSize + 17 // intentionally not page-aligned
	_, err := unix.Pwrite(fd, want, int64(atOffset))
	require.NoError(t, err)

	region, err := mapGrantor([]int{fd}, Grantor{FDIndex: 0, Offset: atOffset, Extent: uint64(len(want))})
	require.NoError(t, err)
	defer region.unmap()

	assert.Equal(t, want, region.data[:len(want)])
	assert.Len(t, region.data, len(want))
}

func TestMapGrantor_UnknownFDIndex(t *testing.T) {
	_, err := mapGrantor([]int{}, Grantor{FDIndex: 0, Offset: 0, Extent: 8})
	assert.Error(t, err)
}

// A mapping failure on a required grantor is fatal: BindRaw reports it
// through onMapFailure rather than returning an error, and the
// resulting endpoint stays Invalid.
func TestBind_MapFailureIsFatalAndLeavesEndpointInvalid(t *testing.T) {
	var reported error
	orig := onMapFailure
	onMapFailure = func(msg string, err error) { reported = err }
	defer func() { onMapFailure = orig }()

	d := NewDescriptor(16, 1, []Grantor{
		ReadPointerGrantor:  {FDIndex: 0, Offset: 0, Extent: 8},
		WritePointerGrantor: {FDIndex: 1, Offset: 0, Extent: 8},
		DataRingGrantor:     {FDIndex: 2, Offset: 0, Extent: 16},
	}, NativeHandle{FDs: []int{-1, -1, -1}}) // invalid fds: every mmap fails

	e := BindRaw(d)
	assert.False(t, e.IsValid())
	assert.Error(t, reported)
}
