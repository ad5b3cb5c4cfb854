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

	"golang.org/x/sys/unix"
)

// mappedRegion is one grantor's process-local view: full is the
// page-aligned mapping munmap needs back in full, data is the slice into
// full at the grantor's intra-page offset, of exactly Extent bytes.
type mappedRegion struct {
	full []byte
	data []byte
}

// mapGrantor maps grantor g, indexing fds by g.FDIndex. Shared memory
// mappings require a page-aligned file offset, but a grantor addresses
// an arbitrary intra-object byte range, so we pad the mapping down to
// the previous page boundary and slice the pad back off before handing
// the caller its bytes.
func mapGrantor(fds []int, g Grantor) (*mappedRegion, error) {
	if int(g.FDIndex) >= len(fds) {
		return nil, fmt.Errorf("shmring: grantor references fd index %d, handle has %d", g.FDIndex, len(fds))
	}
	fd := fds[g.FDIndex]

	pageSize := int64(unix.Getpagesize())
	offset := int64(g.Offset)
	alignedOffset := (offset / pageSize) * pageSize
	pad := offset - alignedOffset
	length := pad + int64(g.Extent)

	full, err := unix.Mmap(fd, alignedOffset, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("shmring: mmap fd %d at offset %d length %d: %w", fd, alignedOffset, length, err)
	}
	return &mappedRegion{
		full: full,
		data: full[pad : pad+int64(g.Extent)],
	}, nil
}

// unmap releases the region's page-aligned mapping. It is a no-op on a
// nil or already-unmapped region so callers may call it unconditionally
// while unwinding a partially constructed endpoint.
func (m *mappedRegion) unmap() error {
	if m == nil || m.full == nil {
		return nil
	}
	full := m.full
	m.full, m.data = nil, nil
	return unix.Munmap(full)
}
