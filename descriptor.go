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

// Grantor positions within a Descriptor's grantor table. The core only
// ever reads these three; any grantors beyond DataRingGrantor (event-flag
// regions for a future wait/wake layer, say) are carried but ignored.
const (
	ReadPointerGrantor  = 0
	WritePointerGrantor = 1
	DataRingGrantor     = 2

	// MinGrantors is the smallest grantor table the core will bind to.
	MinGrantors = 3
)

// NativeHandle carries the file descriptors a Descriptor's grantors index
// into. Construction and transport of the handle (duplication across a
// process boundary, handshake framing) happen outside this package.
type NativeHandle struct {
	FDs []int
}

// Grantor names one logical region of a Descriptor: FDIndex selects an
// entry in the owning Descriptor's NativeHandle, and Offset/Extent name a
// byte range within that file descriptor.
type Grantor struct {
	FDIndex uint32
	Offset  uint64
	Extent  uint64
}

// Descriptor is the immutable, out-of-band metadata naming the shared
// memory regions that make up one ring. It is produced and transported by
// a collaborator outside this package (an IPC handshake, typically) and
// consumed, never constructed, by BindRaw/NewRing.
type Descriptor struct {
	size     uint64
	quantum  uint64
	grantors []Grantor
	handle   NativeHandle

	// handleValid mirrors isHandleValid() on the original descriptor
	// contract; a zero-value Descriptor is invalid by construction.
	handleValid bool
}

// NewDescriptor builds a valid Descriptor over the given capacity,
// quantum, grantor table and native handle. Callers outside this package
// are expected to have already validated the handle (duplicated the fds,
// completed the handshake) before calling this.
func NewDescriptor(size, quantum uint64, grantors []Grantor, handle NativeHandle) Descriptor {
	return Descriptor{
		size:        size,
		quantum:     quantum,
		grantors:    grantors,
		handle:      handle,
		handleValid: true,
	}
}

// GetSize returns the data ring's capacity in bytes.
func (d Descriptor) GetSize() uint64 { return d.size }

// GetQuantum returns the fixed byte width of one record.
func (d Descriptor) GetQuantum() uint64 { return d.quantum }

// CountGrantors returns the number of entries in the grantor table.
func (d Descriptor) CountGrantors() int { return len(d.grantors) }

// GetGrantors returns the descriptor's ordered grantor table.
func (d Descriptor) GetGrantors() []Grantor { return d.grantors }

// GetNativeHandle returns the descriptor's file-descriptor handle.
func (d Descriptor) GetNativeHandle() NativeHandle { return d.handle }

// IsHandleValid reports whether the native handle is usable. A
// zero-value Descriptor (as produced by a failed or skipped handshake)
// always reports false here.
func (d Descriptor) IsHandleValid() bool { return d.handleValid }
