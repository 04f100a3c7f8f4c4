// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "code.hybscloud.com/atomix"

// control is the block shared by every Shared value that references
// the same resource. refs counts those values; the one decrement that
// observes zero runs del.
type control[T any] struct {
	refs   atomix.Int64
	serial Serial
	ptr    *T
	del    Deleter[T]
}

// newControl allocates a control block owning p with a count of one.
func newControl[T any](p *T, del Deleter[T]) *control[T] {
	c := &control[T]{serial: nextSerial(), del: del}
	c.refs.Add(1)
	c.ptr = p
	return c
}

// retain adds one reference. The caller must already hold one.
func (c *control[T]) retain() {
	if c.refs.Add(1) <= 1 {
		panic(errRetainRelease)
	}
}

// drop removes one reference and releases the resource when it was
// the last. A nil control block is a no-op.
func (c *control[T]) drop() error {
	if c == nil {
		return nil
	}
	n := c.refs.Add(-1)
	if n > 0 {
		return nil
	}
	if n < 0 {
		panic(errRefUnderflow)
	}
	p, del := c.ptr, c.del
	c.ptr, c.del = nil, nil
	return release(p, del)
}

// inlineControl colocates a control block with the value it owns.
type inlineControl[T any] struct {
	control[T]
	value T
}

// Shared is a reference-counted owner of a single *T.
//
// The zero value is an empty handle with a use count of zero. A Shared
// must not be copied by value; [Shared.Clone] and [Shared.CopyFrom]
// add an owner, [Shared.Move] and [Shared.MoveFrom] transfer one. The
// resource is released when the last owner is closed or reset.
//
// The count is atomic, so distinct Shared values referencing the same
// resource may be cloned and closed from different goroutines. The
// pointee itself is not synchronized.
type Shared[T any] struct {
	_   noCopy
	ptr *T
	ctl *control[T]
}

// NewShared takes shared ownership of p with [DefaultDeleter].
// A nil p yields an empty handle.
func NewShared[T any](p *T) *Shared[T] {
	return NewSharedFunc(p, DefaultDeleter[T])
}

// NewSharedFunc takes shared ownership of p, releasing it with del once
// the last owner lets go. The control block is allocated before p is
// recorded as owned.
func NewSharedFunc[T any](p *T, del Deleter[T]) *Shared[T] {
	if del == nil {
		panic(errNilDeleter)
	}
	if p == nil {
		return &Shared[T]{}
	}
	c := newControl(p, del)
	return &Shared[T]{ptr: p, ctl: c}
}

// MakeShared allocates v and its control block together and returns
// the first owner.
func MakeShared[T any](v T) *Shared[T] {
	b := &inlineControl[T]{value: v}
	b.serial = nextSerial()
	b.refs.Add(1)
	b.ptr = &b.value
	b.del = DefaultDeleter[T]
	return &Shared[T]{ptr: b.ptr, ctl: &b.control}
}

// Get returns the held pointer without affecting ownership.
func (s *Shared[T]) Get() *T {
	return s.ptr
}

// Value returns the held value. It panics on an empty handle.
func (s *Shared[T]) Value() T {
	return *s.ptr
}

// Valid reports whether s holds a resource.
func (s *Shared[T]) Valid() bool {
	return s.ptr != nil
}

// UseCount returns the number of live owners of the resource held by s,
// or zero if s is empty. The value is loaded atomically on every call.
func (s *Shared[T]) UseCount() int64 {
	if s.ctl == nil {
		return 0
	}
	return s.ctl.refs.Load()
}

// Unique reports whether s is the only owner of its resource.
func (s *Shared[T]) Unique() bool {
	return s.UseCount() == 1
}

// Owner returns the serial of the control block s references,
// or zero if s is empty.
func (s *Shared[T]) Owner() Serial {
	if s.ctl == nil {
		return 0
	}
	return s.ctl.serial
}

// SameOwner reports whether s and o share a control block.
// Two empty handles do not.
func (s *Shared[T]) SameOwner(o *Shared[T]) bool {
	return s.ctl != nil && s.ctl == o.ctl
}

// Clone returns a new owner of the resource held by s.
// Cloning an empty handle returns an empty handle.
func (s *Shared[T]) Clone() *Shared[T] {
	if s.ctl != nil {
		s.ctl.retain()
	}
	return &Shared[T]{ptr: s.ptr, ctl: s.ctl}
}

// CopyFrom makes s another owner of src's resource and returns s.
// The new reference is taken before s lets go of its previous resource,
// and that release is the last step. Copying from s itself, or from a
// handle already sharing s's control block, changes nothing.
func (s *Shared[T]) CopyFrom(src *Shared[T]) (*Shared[T], error) {
	if s == src || s.ctl == src.ctl {
		return s, nil
	}
	if src.ctl != nil {
		src.ctl.retain()
	}
	old := s.ctl
	s.ptr, s.ctl = src.ptr, src.ctl
	return s, old.drop()
}

// Move transfers the ownership held by s into a new handle and empties s.
// The use count is unchanged.
func (s *Shared[T]) Move() *Shared[T] {
	dst := &Shared[T]{ptr: s.ptr, ctl: s.ctl}
	s.ptr, s.ctl = nil, nil
	return dst
}

// MoveFrom transfers src's ownership into s without touching src's
// count, empties src, then lets go of s's previous resource. Moving s
// into itself changes nothing. It returns s so assignments chain.
func (s *Shared[T]) MoveFrom(src *Shared[T]) (*Shared[T], error) {
	if s == src {
		return s, nil
	}
	old := s.ctl
	s.ptr, s.ctl = src.ptr, src.ctl
	src.ptr, src.ctl = nil, nil
	return s, old.drop()
}

// Reset lets go of the resource held by s and empties it. The resource
// is released if s was its last owner.
func (s *Shared[T]) Reset() error {
	old := s.ctl
	s.ptr, s.ctl = nil, nil
	return old.drop()
}

// Close is Reset, so a Shared can be deferred or passed as an io.Closer.
func (s *Shared[T]) Close() error {
	return s.Reset()
}

// Swap exchanges the ownership held by s and o. Counts are unchanged.
func (s *Shared[T]) Swap(o *Shared[T]) {
	s.ptr, o.ptr = o.ptr, s.ptr
	s.ctl, o.ctl = o.ctl, s.ctl
}
