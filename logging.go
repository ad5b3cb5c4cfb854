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

import "go.uber.org/zap"

// logger receives the single class of diagnostic this package emits: a
// fatal mapping failure. It defaults to a no-op so importing this
// package doesn't impose zap's output format on a caller that never
// installs one.
var logger *zap.Logger = zap.NewNop()

// SetLogger installs l as the logger mapping failures are reported
// through before the process aborts. Passing nil restores the no-op
// default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// onMapFailure is called when mapping a required grantor fails during
// BindRaw or NewRing. A required-region mapping failure is a programming or
// environment error, not a runtime condition the core can recover from
// (the descriptor asserted the region is mappable) — so this aborts the
// process rather than returning an error.
//
// It is a package variable rather than a direct zap.Logger.Fatal call so
// tests can exercise the mapping-failure path without exiting the test
// binary.
var onMapFailure = func(msg string, err error) {
	logger.Fatal(msg, zap.Error(err))
}
