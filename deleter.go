// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "io"

// Deleter releases a resource once its last owner lets go of it.
// It is invoked exactly once per owned pointer and never with nil.
type Deleter[T any] func(p *T) error

// DefaultDeleter closes p when *T implements io.Closer.
// Any other resource is left to the garbage collector.
func DefaultDeleter[T any](p *T) error {
	if c, ok := any(p).(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// noCopy marks a handle as non-copyable for go vet's copylocks check.
// Handles own their resource; a by-value copy would duplicate ownership
// without touching the count.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
