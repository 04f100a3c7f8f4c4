// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package own provides generic exclusive and shared ownership handles
// with deterministic release.
//
// A handle owns a *T and releases it exactly once through a [Deleter].
// [DefaultDeleter] closes resources implementing io.Closer and leaves
// everything else to the garbage collector.
//
// # Handles
//
//   - Exclusive: [Unique] has at most one owner. Ownership moves with [Unique.Move] and [Unique.MoveFrom]; [Unique.Release] hands it back to the caller.
//   - Shared: [Shared] counts its owners atomically via [code.hybscloud.com/atomix]. [Shared.Clone] and [Shared.CopyFrom] add an owner; the last [Shared.Close] or [Shared.Reset] releases.
//   - Conversion: [Share] turns a Unique into a Shared. [Shared.TryUnwrap] goes back when the caller is the sole owner and returns [ErrWouldBlock] otherwise.
//
// # Copying
//
// Handles must not be copied by value; go vet reports such copies. All
// constructors return pointers, and every transfer of ownership is an
// explicit method call. Self-assignment through MoveFrom or CopyFrom is
// always a no-op.
//
// # Concurrency
//
// Only the use count is synchronized. Distinct Shared values that refer
// to the same resource may be cloned, moved and closed from different
// goroutines; a single handle, and the pointee, need external
// synchronization.
//
// # Example
//
//	f, _ := os.Open("data.bin")
//	s := own.NewShared(f)
//	defer s.Close()
//	go func(c *own.Shared[os.File]) {
//		defer c.Close()
//		// read through c.Get()
//	}(s.Clone())
package own
