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

// RingEndpoint is one process's byte-oriented handle to a ring, bound to
// a Descriptor. It is the core, untyped surface; Ring[T] wraps it with a
// record type.
//
// A RingEndpoint is non-copyable in spirit: its zero value is an Invalid
// endpoint, and its mapped regions must be unmapped exactly once, so
// callers should hold it by pointer and never duplicate the struct
// holding live mappings.
type RingEndpoint struct {
	descriptor Descriptor
	valid      bool

	readRegion  *mappedRegion
	writeRegion *mappedRegion
	dataRegion  *mappedRegion

	readCounter  *sharedCounter // R, mutated only by the reader
	writeCounter *sharedCounter // W, mutated only by the writer

	quantum  uint64
	capacity uint64
}

// BindRaw binds a byte-oriented endpoint to d, trusting d's own declared
// quantum as the record width (the byte-level core has no notion of a
// "record type" to check it against; see Ring[T] for that check).
//
// Binding unconditionally zeros both position counters once mapping
// succeeds: this is correct only when exactly one endpoint binds before
// either side begins I/O, or both bind while quiescent. Binding a second
// endpoint to an already-active queue resets the stream; a peer-based
// "join existing queue" handshake is outside this core.
func BindRaw(d Descriptor) *RingEndpoint {
	return bindEndpoint(d, d.GetQuantum())
}

// bindEndpoint implements the construction state machine shared by
// BindRaw and NewRing. recordWidth is compared against d.GetQuantum(); a
// mismatch, an invalid handle, or too few grantors sends the endpoint
// directly to Invalid with no mapping attempted. Once precondition
// checks pass, mapping failures are fatal (onMapFailure), not returned.
func bindEndpoint(d Descriptor, recordWidth uint64) *RingEndpoint {
	e := &RingEndpoint{descriptor: d}

	if !d.IsHandleValid() {
		return e
	}
	if d.CountGrantors() < MinGrantors {
		return e
	}
	quantum := d.GetQuantum()
	if quantum == 0 || quantum != recordWidth {
		return e
	}
	capacity := d.GetSize()
	if capacity == 0 || capacity%quantum != 0 {
		return e
	}

	grantors := d.GetGrantors()
	fds := d.GetNativeHandle().FDs

	readRegion, err := mapGrantor(fds, grantors[ReadPointerGrantor])
	if err != nil {
		onMapFailure("shmring: failed to map read-pointer region", err)
		return e
	}
	writeRegion, err := mapGrantor(fds, grantors[WritePointerGrantor])
	if err != nil {
		readRegion.unmap()
		onMapFailure("shmring: failed to map write-pointer region", err)
		return e
	}
	dataRegion, err := mapGrantor(fds, grantors[DataRingGrantor])
	if err != nil {
		readRegion.unmap()
		writeRegion.unmap()
		onMapFailure("shmring: failed to map data-ring region", err)
		return e
	}

	readCounter, err := newSharedCounter(readRegion.data)
	if err != nil {
		readRegion.unmap()
		writeRegion.unmap()
		dataRegion.unmap()
		onMapFailure("shmring: read-pointer region too small for a counter", err)
		return e
	}
	writeCounter, err := newSharedCounter(writeRegion.data)
	if err != nil {
		readRegion.unmap()
		writeRegion.unmap()
		dataRegion.unmap()
		onMapFailure("shmring: write-pointer region too small for a counter", err)
		return e
	}

	readCounter.store(0)
	writeCounter.store(0)

	e.readRegion, e.writeRegion, e.dataRegion = readRegion, writeRegion, dataRegion
	e.readCounter, e.writeCounter = readCounter, writeCounter
	e.quantum, e.capacity = quantum, capacity
	e.valid = true
	return e
}

// IsValid reports whether all three regions are mapped and the endpoint
// may be used for I/O.
func (e *RingEndpoint) IsValid() bool { return e.valid }

// GetQuantumSize returns the fixed byte width of one record (Q).
func (e *RingEndpoint) GetQuantumSize() uint64 { return e.quantum }

// GetQuantumCount returns the ring's capacity in records (C / Q).
func (e *RingEndpoint) GetQuantumCount() uint64 {
	if e.quantum == 0 {
		return 0
	}
	return e.capacity / e.quantum
}

// GetDescriptor returns a read-only view of the descriptor this endpoint
// was bound to, for rebroadcasting to a peer.
func (e *RingEndpoint) GetDescriptor() Descriptor { return e.descriptor }

// AvailableToRead returns the number of bytes the reader may consume
// (W - R), using relaxed loads of both counters: this is a hint only,
// since WriteN/ReadN perform their own acquire load before acting on it.
func (e *RingEndpoint) AvailableToRead() uint64 {
	if !e.valid {
		return 0
	}
	w := e.writeCounter.load()
	r := e.readCounter.load()
	return w - r // unsigned subtraction: survives counter wraparound
}

// AvailableToWrite returns the number of bytes the writer may produce
// (C - (W - R)).
func (e *RingEndpoint) AvailableToWrite() uint64 {
	if !e.valid {
		return 0
	}
	return e.capacity - e.AvailableToRead()
}

// Close unmaps all three regions. It is idempotent: calling it on an
// already-closed or never-valid endpoint is a no-op. Backing
// shared-memory lifetime belongs to whoever created the descriptor, not
// to the endpoint.
func (e *RingEndpoint) Close() error {
	if !e.valid {
		return nil
	}
	e.valid = false

	var first error
	for _, r := range [...]*mappedRegion{e.readRegion, e.writeRegion, e.dataRegion} {
		if err := r.unmap(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
