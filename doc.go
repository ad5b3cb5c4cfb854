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

// Package shmring implements a single-producer / single-reader byte ring
// buffer mapped over shared memory, for zero-copy message passing between
// two cooperating processes on the same host.
//
// An endpoint binds to a Descriptor supplied out-of-band (typically during
// an IPC handshake performed elsewhere); the descriptor names the shared
// memory regions backing the data ring and the two 64-bit position
// counters. One endpoint writes fixed-size records and the peer reads
// them, both in FIFO order, without entering the kernel on the fast path.
//
// This package does not construct or transport descriptors, does not
// detect peer liveness, and supports exactly one writer and one reader
// per ring.
package shmring

// vim: foldmethod=marker
