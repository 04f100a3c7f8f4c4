// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Unique is the exclusive owner of a single *T.
//
// The zero value is an empty handle. A Unique must not be copied after
// first use; ownership moves only through [Unique.Move] and
// [Unique.MoveFrom], which leave the source empty. Close releases the
// held resource through its deleter.
type Unique[T any] struct {
	_   noCopy
	ptr *T
	del Deleter[T]
}

// NewUnique takes ownership of p with [DefaultDeleter].
// A nil p yields an empty handle.
func NewUnique[T any](p *T) *Unique[T] {
	return NewUniqueFunc(p, DefaultDeleter[T])
}

// NewUniqueFunc takes ownership of p, releasing it with del.
// Passing a pointer already owned elsewhere is a caller error that
// cannot be detected.
func NewUniqueFunc[T any](p *T, del Deleter[T]) *Unique[T] {
	if del == nil {
		panic(errNilDeleter)
	}
	return &Unique[T]{ptr: p, del: del}
}

// MakeUnique allocates a copy of v and owns it.
func MakeUnique[T any](v T) *Unique[T] {
	return NewUnique(&v)
}

// Get returns the held pointer without transferring ownership.
func (u *Unique[T]) Get() *T {
	return u.ptr
}

// Value returns the held value. It panics on an empty handle.
func (u *Unique[T]) Value() T {
	return *u.ptr
}

// Valid reports whether u holds a resource.
func (u *Unique[T]) Valid() bool {
	return u.ptr != nil
}

// Release hands the held pointer to the caller and empties u.
// The deleter is not run; the caller becomes responsible for p.
func (u *Unique[T]) Release() *T {
	p := u.ptr
	u.ptr = nil
	return p
}

// Reset releases the held resource, if any, and empties u.
func (u *Unique[T]) Reset() error {
	p, del := u.ptr, u.del
	u.ptr = nil
	return release(p, del)
}

// ResetTo releases the held resource and takes ownership of p.
// Resetting to the pointer already held is a no-op.
func (u *Unique[T]) ResetTo(p *T) error {
	if p == u.ptr {
		return nil
	}
	old, del := u.ptr, u.del
	u.ptr = p
	if u.del == nil {
		u.del = DefaultDeleter[T]
	}
	return release(old, del)
}

// Close releases the held resource. Closing an empty handle is a no-op.
func (u *Unique[T]) Close() error {
	return u.Reset()
}

// Move transfers the resource into a new handle and empties u.
func (u *Unique[T]) Move() *Unique[T] {
	dst := &Unique[T]{ptr: u.ptr, del: u.del}
	u.ptr = nil
	return dst
}

// MoveFrom releases the resource held by u, then takes src's resource
// and deleter, leaving src empty. It returns u so assignments chain.
// Moving a handle into itself leaves it untouched.
// The returned error comes from releasing u's previous resource;
// the transfer has happened regardless.
func (u *Unique[T]) MoveFrom(src *Unique[T]) (*Unique[T], error) {
	if u == src {
		return u, nil
	}
	old, oldDel := u.ptr, u.del
	u.ptr, u.del = src.ptr, src.del
	src.ptr = nil
	return u, release(old, oldDel)
}

// Swap exchanges the resources held by u and o.
func (u *Unique[T]) Swap(o *Unique[T]) {
	u.ptr, o.ptr = o.ptr, u.ptr
	u.del, o.del = o.del, u.del
}

// release runs del on p. A nil p is a no-op; a nil del means the handle
// was never given one and falls back to DefaultDeleter.
func release[T any](p *T, del Deleter[T]) error {
	if p == nil {
		return nil
	}
	if del == nil {
		return DefaultDeleter(p)
	}
	return del(p)
}
