// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "code.hybscloud.com/iox"

// ErrWouldBlock is returned by [Shared.TryUnwrap] while other owners
// still reference the resource. The call is retryable.
var ErrWouldBlock = iox.ErrWouldBlock

// Panic messages for ownership contract violations.
const (
	errNilDeleter    = "own: nil deleter"
	errRefUnderflow  = "own: reference count dropped below zero"
	errRetainRelease = "own: retain on a released control block"
)
