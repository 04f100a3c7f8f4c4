// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "code.hybscloud.com/atomix"

// Serial identifies the control block behind a Shared value. Clones and
// moves carry it along; [Shared.Owner] reports it and [Shared.SameOwner]
// compares the blocks themselves.
//
// Zero is reserved for "no owner", so the counter is 64 bits wide: it
// cannot wrap back to zero within a process lifetime.
type Serial = uint64

// serials hands out control block serials, starting at 1.
var serials atomix.Uint64

func nextSerial() Serial {
	return serials.Add(1)
}
